package words

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the input file cannot be opened.
	ErrNotFound = errors.New("no such file or directory")

	// ErrInvalidWord is returned when an occurrence target does not satisfy
	// the word grammar.
	ErrInvalidWord = errors.New("not a valid word")
)

// InvalidWordError carries the rejected target. It matches ErrInvalidWord
// under errors.Is.
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("%q is %s", e.Word, ErrInvalidWord)
}

func (e *InvalidWordError) Is(target error) bool {
	return target == ErrInvalidWord
}
