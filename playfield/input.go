package playfield

// Input is the held state of the game keys for one frame.
type Input struct {
	Left     bool
	Right    bool
	Rotate   bool
	SoftDrop bool
}

// InputSource produces the key state for the coming frame.
type InputSource interface {
	Poll() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

func (f InputFunc) Poll() Input {
	return f()
}
