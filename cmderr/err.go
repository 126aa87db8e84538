// Package cmderr wraps engine-level failures for the command layer.
package cmderr

// NetuiErr marks an error as already explained to the user via printer, so
// that the root command does not also dump a generic usage message.
type NetuiErr struct {
	Err error
}

func (a NetuiErr) Error() string {
	return a.Err.Error()
}

// github.com/pkg/errors causer interface.
func (a NetuiErr) Cause() error {
	return a.Err
}

func (a NetuiErr) Unwrap() error {
	return a.Err
}
