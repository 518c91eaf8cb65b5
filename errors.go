// errors are the errors returned when reading relations and functional
// dependencies.  The closure and candidate key computations themselves never
// fail.

package candkey

import (
	"fmt"
)

// MalformedInputError represents an error that occurs when a relation or a
// list of FDs cannot be parsed.
type MalformedInputError struct {
	Input string
	// Offset is the byte offset in Input where the problem was found
	Offset int
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("candkey: malformed input %q at offset %d: %s", e.Input, e.Offset, e.Reason)
}

// TooManyAttributesError represents an error that occurs when a heading is
// too large to search for candidate keys in a reasonable amount of time.
type TooManyAttributesError struct {
	Limit int
	Found int
}

func (e *TooManyAttributesError) Error() string {
	return fmt.Sprintf("candkey: expected at most %d attributes, found %d", e.Limit, e.Found)
}
