package trigger

import "errors"

// Trigger errors.
var (
	// ErrInvalidInterval is returned when an interval-setting operation
	// receives a value that is not strictly positive.
	ErrInvalidInterval = errors.New("trigger: interval must be positive")

	// ErrInvalidIntervalUnit is returned when parsing an unrecognized
	// interval unit name.
	ErrInvalidIntervalUnit = errors.New("trigger: invalid interval unit")

	// ErrInvalidCronExpression is returned when a cron schedule is created
	// from an expression the parser rejects.
	ErrInvalidCronExpression = errors.New("trigger: invalid cron expression")

	// ErrInvalidTimeRange is returned when a trigger's end time precedes
	// its start time.
	ErrInvalidTimeRange = errors.New("trigger: end time must not precede start time")

	// ErrMixedSchedule is returned when a persisted record carries both a
	// cron expression and a repeat interval.
	ErrMixedSchedule = errors.New("trigger: record sets both cron expression and interval")

	// ErrDuplicateTrigger is returned when registering a trigger whose key
	// is already present in the registry.
	ErrDuplicateTrigger = errors.New("trigger: duplicate trigger key")

	// ErrTriggerNotFound is returned when unregistering a key that is not
	// present in the registry.
	ErrTriggerNotFound = errors.New("trigger: trigger not found")
)
