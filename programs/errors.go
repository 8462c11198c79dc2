package programs

import "errors"

var (
	ErrInvalidProgram = errors.New("invalid program")
	// ErrProgramPointer reports the program pointer leaving the program; moving past the end is how a run finishes.
	ErrProgramPointer = errors.New("program pointer out of range")
	ErrNotAtLoop      = errors.New("not at loop command")
)
