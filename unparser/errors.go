package unparser

import "fmt"

// InvalidASTError is raised when the tree being unparsed violates a
// structural invariant the formatter relies on (e.g. a Compare whose
// ops and comparators have mismatched lengths) or names a node kind the
// formatter does not recognize.
type InvalidASTError struct {
	Message string
}

func (e *InvalidASTError) Error() string {
	return fmt.Sprintf("InvalidASTError: %s", e.Message)
}
