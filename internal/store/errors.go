package store

import (
	"errors"
	"fmt"
)

// ParseError reports a persisted value that could not be decoded.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseFailure returns true if err (or any wrapped error) is a ParseError.
func IsParseFailure(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}
