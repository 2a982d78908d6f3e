package plays

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput   = errors.New("file not found")
	ErrMalformedInput = errors.New("malformed play file")
)

// MissingInputError is returned when a game's play file does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, ErrMissingInput)
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}
