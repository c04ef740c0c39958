package router

// NavigateMsg mounts the named screen, replacing the current one when
// Replace is set.
type NavigateMsg struct {
	Name    string
	Replace bool
}

// BackMsg pops the current screen.
type BackMsg struct{}
