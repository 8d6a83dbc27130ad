package models

import (
	"errors"
	"fmt"
)

var (
	errNotAnObject = errors.New("value is not a JSON object")
	errMissingKey  = errors.New("missing required key")
	errNullValue   = errors.New("unexpected JSON null")
)

// DecodeFailure is the single error kind raised by this package. It
// records which record type was being decoded and, when the failure is
// attributable to one field, the wire key at fault. Nested failures
// are wrapped with path context by the codec helpers; errors.As digs
// through that wrapping.
type DecodeFailure struct {
	Type string
	Key  string
	Err  error
}

func (e *DecodeFailure) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("could not decode %s: %s", e.Type, e.Err)
	}
	return fmt.Sprintf("could not decode %s.%s: %s", e.Type, e.Key, e.Err)
}

func (e *DecodeFailure) Unwrap() error {
	return e.Err
}

// IsDecodeFailure reports whether any error in err's chain is a
// *DecodeFailure.
func IsDecodeFailure(err error) bool {
	var df *DecodeFailure
	return errors.As(err, &df)
}
