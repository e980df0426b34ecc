package cpu

// Display receives the display side effects of executed instructions.
type Display interface {
	// Clear clears the screen.
	Clear()
}

type nopDisplay struct{}

func (nopDisplay) Clear() {}
