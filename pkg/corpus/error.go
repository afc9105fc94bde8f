package corpus

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	FileError  ErrorKind = "file"
	ParseError ErrorKind = "parse"
	RangeError ErrorKind = "range"
)

var (
	ErrInvalidRoot     = errors.New("invalid corpus root")
	ErrUnknownBook     = errors.New("unknown book")
	ErrChapterNotFound = errors.New("chapter not found")
)

// CorpusError carries the failure category alongside a sentinel error so
// callers can branch on either.
type CorpusError struct {
	Kind    ErrorKind
	Message string
	Err     error
	Cause   error
}

func (e *CorpusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("corpus %s error: %s - %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("corpus %s error: %v", e.Kind, e.Err)
}

func (e *CorpusError) Unwrap() error {
	return e.Err
}
