package baseshear

import "fmt"

// UnsupportedRevisionError is returned when the requested code year is not
// one of the published IS 1893 revisions this service knows.
type UnsupportedRevisionError struct {
	Year int
}

func (e *UnsupportedRevisionError) Error() string {
	return fmt.Sprintf("unsupported code revision %d", e.Year)
}

// MissingParameterError names a field the selected revision requires but the
// request did not supply.
type MissingParameterError struct {
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing parameter %q", e.Field)
}

// InvalidParameterError names a supplied field whose value cannot be used.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Reason)
}
