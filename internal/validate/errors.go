package validate

import (
	"fmt"
)

// ErrorType represents the ways a SKILL.md frontmatter block can fail to parse.
type ErrorType int

const (
	// ErrorTypeMissingFrontmatter indicates the file does not open with a delimiter line.
	ErrorTypeMissingFrontmatter ErrorType = iota
	// ErrorTypeUnclosedFrontmatter indicates no closing delimiter line was found.
	ErrorTypeUnclosedFrontmatter
	// ErrorTypeInvalidYAML indicates the YAML parser rejected the block.
	ErrorTypeInvalidYAML
	// ErrorTypeNotMapping indicates the block parsed to something other than a mapping.
	ErrorTypeNotMapping
)

// ParseError is returned by ParseFrontmatter.
type ParseError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}
