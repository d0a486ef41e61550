package codec

import "fmt"

// MalformedRecordError reports a record that could not be parsed:
// an invalid date, a non-numeric or negative amount, or a missing
// required field. Import paths treat it as skip-this-record.
type MalformedRecordError struct {
	Row   int
	Field string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("record %d: bad %s: %v", e.Row, e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// UnknownAccountTypeError reports a JSON record whose account_type is
// not one of the five recognized values.
type UnknownAccountTypeError struct {
	Row   int
	Value string
}

func (e *UnknownAccountTypeError) Error() string {
	return fmt.Sprintf("record %d: unknown account type %q", e.Row, e.Value)
}
