// Package ui holds the contracts shared by every rendering package.
package ui

// Renderable is anything that can render itself to a terminal string.
type Renderable interface {
	View() string
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func() string

// View calls the function.
func (f RenderFunc) View() string {
	if f == nil {
		return ""
	}
	return f()
}
