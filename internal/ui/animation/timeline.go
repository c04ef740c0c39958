// Package animation drives normalised progress values over time. Components
// set a target and the timeline interpolates it on bubbletea frame ticks.
package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

const (
	framesPerSecond = 60
	frameInterval   = time.Second / framesPerSecond
	settleEpsilon   = 1e-3
)

// Easing selects how a timeline approaches its target.
type Easing int

const (
	EasingLinear Easing = iota
	EasingSpring
)

// ParseEasing maps a config value to an Easing, defaulting to linear.
func ParseEasing(value string) Easing {
	if value == "spring" {
		return EasingSpring
	}
	return EasingLinear
}

// Clamp limits v to [0,1]. NaN becomes 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// FrameMsg advances the timeline identified by ID.
type FrameMsg struct {
	ID         uuid.UUID
	Generation int
	Time       time.Time
}

// Timeline owns one progress value. It is not shared between components.
type Timeline struct {
	id         uuid.UUID
	generation int
	duration   time.Duration
	easing     Easing
	spring     harmonica.Spring

	from     float64
	target   float64
	value    float64
	velocity float64
	start    time.Time
	running  bool
	loop     bool

	onComplete func()
}

// NewTimeline creates a timeline at progress 0.
func NewTimeline(duration time.Duration, easing Easing) *Timeline {
	return &Timeline{
		id:       uuid.New(),
		duration: duration,
		easing:   easing,
		spring:   harmonica.NewSpring(harmonica.FPS(framesPerSecond), 8.0, 1.0),
	}
}

// ID identifies the timeline's frame messages.
func (t *Timeline) ID() uuid.UUID { return t.id }

// Value returns the current progress in [0,1].
func (t *Timeline) Value() float64 { return t.value }

// Running reports whether frames are still being consumed.
func (t *Timeline) Running() bool { return t.running }

// Looping reports whether the timeline restarts on completion.
func (t *Timeline) Looping() bool { return t.loop }

// Duration returns the configured duration.
func (t *Timeline) Duration() time.Duration { return t.duration }

// OnComplete registers fn to run when a non-looping run reaches its target.
func (t *Timeline) OnComplete(fn func()) {
	t.onComplete = fn
}

// AnimateTo sets a new target and returns the first frame command.
func (t *Timeline) AnimateTo(target float64, now time.Time) tea.Cmd {
	t.generation++
	t.from = t.value
	t.target = Clamp(target)
	t.start = now
	t.velocity = 0
	t.running = true
	t.loop = false

	if t.duration <= 0 {
		t.finish()
		return nil
	}
	return t.frame()
}

// Restart jumps to 0 and animates to 1.
func (t *Timeline) Restart(now time.Time) tea.Cmd {
	t.value = 0
	return t.AnimateTo(1, now)
}

// Loop restarts the timeline and repeats it until Stop.
func (t *Timeline) Loop(now time.Time) tea.Cmd {
	cmd := t.Restart(now)
	if cmd != nil {
		t.loop = true
	}
	return cmd
}

// Stop halts the run. Frames already scheduled are ignored.
func (t *Timeline) Stop() {
	t.generation++
	t.running = false
	t.loop = false
}

// Update consumes frame messages addressed to this timeline.
func (t *Timeline) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != t.id || frame.Generation != t.generation || !t.running {
		return nil
	}
	if t.Advance(frame.Time) {
		return t.frame()
	}
	return nil
}

// Advance moves the value to where it should be at now and reports whether
// more frames are needed.
func (t *Timeline) Advance(now time.Time) bool {
	if !t.running {
		return false
	}

	elapsed := now.Sub(t.start)
	done := false

	switch t.easing {
	case EasingSpring:
		pos, vel := t.spring.Update(t.value, t.velocity, t.target)
		t.value, t.velocity = Clamp(pos), vel
		settled := math.Abs(t.target-pos) < settleEpsilon && math.Abs(vel) < settleEpsilon
		done = settled || elapsed >= t.duration
	default:
		fraction := Clamp(float64(elapsed) / float64(t.duration))
		t.value = Clamp(t.from + (t.target-t.from)*fraction)
		done = fraction >= 1
	}

	if !done {
		return true
	}

	if t.loop {
		t.value = 0
		t.from = 0
		t.velocity = 0
		t.start = now
		return true
	}

	t.finish()
	return false
}

func (t *Timeline) finish() {
	t.value = t.target
	t.running = false
	if t.onComplete != nil {
		t.onComplete()
	}
}

func (t *Timeline) frame() tea.Cmd {
	id, generation := t.id, t.generation
	return tea.Tick(frameInterval, func(ts time.Time) tea.Msg {
		return FrameMsg{ID: id, Generation: generation, Time: ts}
	})
}
