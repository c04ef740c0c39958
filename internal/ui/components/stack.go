package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/vaultkit/internal/ui"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along one axis. Main-axis alignment only has an
// effect when the main axis is bounded by a max width (horizontal) or max
// height (vertical) constraint.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	direction   Direction
	gap         int
	mainAlign   MainAxisAlignment
	crossAlign  CrossAxisAlignment
	constraints Constraints
	fill        uitheme.ColorToken
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		mainAlign:     MainStart,
		crossAlign:    CrossStart,
		constraints:   Unconstrained(),
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children, the gaps between them and any free
// main-axis space distributed by the main alignment.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	bounds := s.mergeConstraints(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(bounds))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		var view string
		if contextual, ok := child.(ContextualRenderable); ok {
			view = contextual.ViewWithContext(childCtx)
		} else {
			view = child.View()
		}
		if view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	content := s.join(ctx, views, s.freeSpace(views, bounds))
	if bounds.MaxWidth > 0 {
		style = style.MaxWidth(bounds.MaxWidth)
	}
	if bounds.MaxHeight > 0 {
		style = style.MaxHeight(bounds.MaxHeight)
	}
	return style.Render(content)
}

// freeSpace is the unused main-axis length once children and gaps are laid
// out, or 0 when the axis is unbounded.
func (s *Stack) freeSpace(views []string, bounds Constraints) int {
	limit, measure := bounds.MaxHeight, lipgloss.Height
	if s.direction == DirectionHorizontal {
		limit, measure = bounds.MaxWidth, lipgloss.Width
	}
	if limit <= 0 {
		return 0
	}
	used := s.gap * (len(views) - 1)
	for _, v := range views {
		used += measure(v)
	}
	return max(limit-used, 0)
}

func (s *Stack) join(ctx RenderContext, views []string, free int) string {
	lead, between := distribute(s.mainAlign, free, len(views))

	parts := make([]string, 0, len(views)*2+1)
	if lead > 0 {
		parts = append(parts, s.spacer(ctx, lead))
	}
	for i, view := range views {
		if i > 0 {
			if gap := s.gap + between[i-1]; gap > 0 {
				parts = append(parts, s.spacer(ctx, gap))
			}
		}
		parts = append(parts, view)
	}

	pos := s.crossAlign.toLipglossPosition()
	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(pos, parts...)
	}
	return lipgloss.JoinVertical(pos, parts...)
}

func (s *Stack) spacer(ctx RenderContext, length int) string {
	sp := VerticalSpacer(length)
	if s.direction == DirectionHorizontal {
		sp = HorizontalSpacer(length)
	}
	return sp.WithFill(s.fill).ViewWithContext(ctx)
}

// distribute splits free space into a leading offset and the extra space
// added to each of the n-1 gaps.
func distribute(align MainAxisAlignment, free, n int) (int, []int) {
	between := make([]int, max(n-1, 0))
	if free <= 0 || n == 0 {
		return 0, between
	}

	spread := func(total int) {
		for i := range between {
			between[i] = total / len(between)
			if i < total%len(between) {
				between[i]++
			}
		}
	}

	switch align {
	case MainCenter:
		return free / 2, between
	case MainEnd:
		return free, between
	case MainSpaceBetween:
		if n == 1 {
			return 0, between
		}
		spread(free)
		return 0, between
	case MainSpaceAround:
		per := free / n
		if n > 1 {
			spread(per * (n - 1))
		}
		return per / 2, between
	case MainSpaceEvenly:
		per := free / (n + 1)
		for i := range between {
			between[i] = per
		}
		return per, between
	}
	return 0, between
}

// mergeConstraints keeps the more restrictive of the stack's own and the
// parent's constraints.
func (s *Stack) mergeConstraints(parent Constraints) Constraints {
	result := parent
	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	result.MinWidth = max(result.MinWidth, s.constraints.MinWidth)
	result.MinHeight = max(result.MinHeight, s.constraints.MinHeight)
	return result
}

// deriveChildConstraints gives each child of a bounded horizontal stack an
// equal share of the width left after gaps. Vertical stacks pass the width
// through unchanged.
func (s *Stack) deriveChildConstraints(parent Constraints) Constraints {
	child := parent
	if s.direction == DirectionHorizontal && parent.MaxWidth > 0 && len(s.children) > 0 {
		available := parent.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			child.MaxWidth = available / len(s.children)
		}
	}
	return child
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = max(gap, 0)
	return s
}

// WithMainAlign sets the main axis alignment.
func (s *Stack) WithMainAlign(align MainAxisAlignment) *Stack {
	s.mainAlign = align
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithFill paints gaps and alignment space with token.
func (s *Stack) WithFill(token uitheme.ColorToken) *Stack {
	s.fill = token
	return s
}

// WithStyle sets the container style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(constraints Constraints) *Stack {
	s.constraints = constraints
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
