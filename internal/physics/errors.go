package physics

import "errors"

var (
	// ErrUnknownMode indicates a mode name with no force model behind it.
	ErrUnknownMode = errors.New("physics: unknown mode")

	// ErrUnknownGroup indicates an attraction lookup for an unregistered group.
	ErrUnknownGroup = errors.New("physics: unknown particle group")
)
