package rtrand

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRange is returned when the bounds of a range describe an empty set
// (max < min, or an open bound that leaves no value inside) or are not finite.
// Errors returned by the range functions wrap it; test with errors.Is.
var ErrInvalidRange = errors.New("rtrand: invalid range")

// Interval selects which of the two bounds of a range are included.
// C stands for closed (bound included), O for open (bound excluded); the first
// letter refers to the lower bound, the second to the upper bound.
type Interval uint8

const (
	ClosedClosed Interval = iota // [min, max]
	ClosedOpen                   // [min, max)
	OpenClosed                   // (min, max]
	OpenOpen                     // (min, max)
)

func (iv Interval) String() string {
	switch iv {
	case ClosedClosed:
		return "CC"
	case ClosedOpen:
		return "CO"
	case OpenClosed:
		return "OC"
	case OpenOpen:
		return "OO"
	}
	return fmt.Sprintf("Interval(%d)", uint8(iv))
}

// LowerOpen reports whether the lower bound is excluded.
func (iv Interval) LowerOpen() bool { return iv == OpenClosed || iv == OpenOpen }

// UpperOpen reports whether the upper bound is excluded.
func (iv Interval) UpperOpen() bool { return iv == ClosedOpen || iv == OpenOpen }

// ParseInterval parses the two letter notation used by String ("CC", "co", ...).
func ParseInterval(s string) (Interval, error) {
	switch strings.ToUpper(s) {
	case "CC":
		return ClosedClosed, nil
	case "CO":
		return ClosedOpen, nil
	case "OC":
		return OpenClosed, nil
	case "OO":
		return OpenOpen, nil
	}
	return 0, fmt.Errorf("unknown interval %q, want one of CC, CO, OC, OO", s)
}
