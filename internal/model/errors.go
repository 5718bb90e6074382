package model

import "fmt"

// OutOfBoundsError reports topics or data shorter than the matched event
// definition requires.
type OutOfBoundsError struct {
	What string
	Need int
	Got  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s out of bounds: need %d, have %d", e.What, e.Need, e.Got)
}

// MalformedInputError reports a required record field that is missing or
// has the wrong JSON type.
type MalformedInputError struct {
	Field  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s: %s", e.Field, e.Reason)
}
