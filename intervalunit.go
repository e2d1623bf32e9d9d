package trigger

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IntervalUnit is the calendar granularity used to interpret a repeat
// interval. The interval value itself is an opaque multiplier; how long
// "3 months" actually is depends on the calendar and is resolved by the
// firing engine, not here.
type IntervalUnit int

// The seven recognized calendar granularities.
const (
	Second IntervalUnit = iota
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var intervalUnitNames = map[IntervalUnit]string{
	Second: "second",
	Minute: "minute",
	Hour:   "hour",
	Day:    "day",
	Week:   "week",
	Month:  "month",
	Year:   "year",
}

// String returns the lowercase unit name, or a placeholder for values
// outside the recognized set.
func (u IntervalUnit) String() string {
	if name, ok := intervalUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("IntervalUnit(%d)", int(u))
}

// Valid reports whether u is one of the seven recognized granularities.
func (u IntervalUnit) Valid() bool {
	_, ok := intervalUnitNames[u]
	return ok
}

// ParseIntervalUnit converts a lowercase unit name ("second" through "year")
// into an IntervalUnit.
func ParseIntervalUnit(s string) (IntervalUnit, error) {
	for u, name := range intervalUnitNames {
		if name == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidIntervalUnit, s)
}

// MarshalText implements encoding.TextMarshaler so units round-trip through
// JSON and YAML as their names rather than raw integers.
func (u IntervalUnit) MarshalText() ([]byte, error) {
	name, ok := intervalUnitNames[u]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIntervalUnit, int(u))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *IntervalUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseIntervalUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler. The yaml library does not consult
// TextUnmarshaler on decode, so both YAML methods are spelled out.
func (u IntervalUnit) MarshalYAML() (any, error) {
	name, err := u.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(name), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (u *IntervalUnit) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return u.UnmarshalText([]byte(s))
}
