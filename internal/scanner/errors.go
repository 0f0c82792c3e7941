package scanner

import (
	"fmt"
)

// ErrorType represents different types of errors that abort a repository scan.
type ErrorType int

const (
	// ErrorTypeNotFound indicates the root path does not exist.
	ErrorTypeNotFound ErrorType = iota
	// ErrorTypeNotDirectory indicates the root path is not a directory.
	ErrorTypeNotDirectory
	// ErrorTypeFilesystem indicates a directory could not be listed.
	ErrorTypeFilesystem
)

// ScanError represents an error that prevents skill discovery.
type ScanError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Is(target error) bool {
	t, ok := target.(*ScanError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}
