package booking

import "fmt"

// ValidationError reports a precondition failure detected before any
// network call is made: no seats selected, or a required passenger
// field missing.  Handlers translate it into a 400 response; no partial
// state exists when it is returned.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}
