package blenv

import (
	"github.com/cockroachdb/errors"
)

// StrictBool is a boolean that only accepts the literal values "true" and "false".
type StrictBool bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *StrictBool) UnmarshalText(text []byte) error {
	switch string(text) {
	case "true":
		*b = true
	case "false":
		*b = false
	default:
		return errors.Newf("must be one of [true false], got %q", text)
	}

	return nil
}
