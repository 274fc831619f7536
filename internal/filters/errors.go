package filters

import "fmt"

// ValidationError reports invalid user input on a specific field. It is
// recoverable: callers surface it inline and continue the session.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
