package linkcheck

import (
	"fmt"
)

type ErrorType int

const (
	ErrorTypeRequest ErrorType = iota
	ErrorTypeStatus
)

// LinkCheckError reports why an external link is considered unreachable.
type LinkCheckError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Err        error
}

func (e *LinkCheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *LinkCheckError) Unwrap() error {
	return e.Err
}

func (e *LinkCheckError) Is(target error) bool {
	if t, ok := target.(*LinkCheckError); ok {
		return e.Type == t.Type
	}
	return false
}
