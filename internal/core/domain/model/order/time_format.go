package order

import (
	"fmt"

	"github.com/moisescpp/tierno-oficial/internal/pkg/errs"
)

// TimeFormat qualifies an order's delivery time as morning or afternoon.
// Delivery times are entered as bare clock strings ("8:00"), so the AM/PM
// half is carried separately.
type TimeFormat int

const (
	// UnknownTimeFormat catches uninitialized values.
	UnknownTimeFormat TimeFormat = iota

	// AM marks a morning delivery time.
	AM

	// PM marks an afternoon delivery time.
	PM
)

// TimeFormatFromString parses the wire form "AM" or "PM".
func TimeFormatFromString(s string) (TimeFormat, error) {
	switch s {
	case "AM":
		return AM, nil
	case "PM":
		return PM, nil
	default:
		return UnknownTimeFormat, errs.NewValueIsInvalidErrorWithCause(
			"timeFormat", fmt.Errorf("%q is not AM or PM", s))
	}
}

// Validate rejects everything but AM and PM.
func (f TimeFormat) Validate() error {
	if f != AM && f != PM {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeFormat", fmt.Errorf("%d is not a valid time format", f))
	}
	return nil
}

// String returns "AM", "PM", or "Unknown".
func (f TimeFormat) String() string {
	switch f {
	case AM:
		return "AM"
	case PM:
		return "PM"
	default:
		return "Unknown"
	}
}
