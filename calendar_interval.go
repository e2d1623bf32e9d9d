package trigger

import "fmt"

// CalendarIntervalScheduleBuilder accumulates configuration for a schedule
// that repeats every N calendar units (seconds through years). Unlike a
// fixed-duration repeat, the calendar unit is interpreted by the firing
// engine against a real calendar, so "1 month" lands on the same day next
// month regardless of how many seconds that spans.
//
// The builder mutates in place and returns itself, so a single chain of
// calls configures one shared instance. Two variables holding the same
// builder alias the same mutable state. Build does not reset the builder;
// it can be reused to produce multiple descriptors sharing a configuration
// lineage.
type CalendarIntervalScheduleBuilder struct {
	interval int
	unit     IntervalUnit
	misfire  int
}

// NewCalendarIntervalSchedule creates a builder with the default schedule:
// repeat every 1 day, misfire handling deferred to the engine's smart policy.
func NewCalendarIntervalSchedule() *CalendarIntervalScheduleBuilder {
	return &CalendarIntervalScheduleBuilder{
		interval: 1,
		unit:     Day,
		misfire:  MisfireInstructionSmartPolicy,
	}
}

// WithInterval sets the repeat interval and its unit. The interval must be
// strictly positive; on rejection neither field is touched, so the builder
// keeps whatever configuration it had before the call.
func (b *CalendarIntervalScheduleBuilder) WithInterval(interval int, unit IntervalUnit) (*CalendarIntervalScheduleBuilder, error) {
	if interval <= 0 {
		return b, fmt.Errorf("%w: got %d", ErrInvalidInterval, interval)
	}
	b.interval = interval
	b.unit = unit
	return b, nil
}

// WithIntervalInSeconds sets the repeat interval in seconds.
func (b *CalendarIntervalScheduleBuilder) WithIntervalInSeconds(n int) (*CalendarIntervalScheduleBuilder, error) {
	return b.WithInterval(n, Second)
}

// WithIntervalInMinutes sets the repeat interval in minutes.
func (b *CalendarIntervalScheduleBuilder) WithIntervalInMinutes(n int) (*CalendarIntervalScheduleBuilder, error) {
	return b.WithInterval(n, Minute)
}

// WithIntervalInHours sets the repeat interval in hours.
func (b *CalendarIntervalScheduleBuilder) WithIntervalInHours(n int) (*CalendarIntervalScheduleBuilder, error) {
	return b.WithInterval(n, Hour)
}

// WithIntervalInDays sets the repeat interval in days.
func (b *CalendarIntervalScheduleBuilder) WithIntervalInDays(n int) (*CalendarIntervalScheduleBuilder, error) {
	return b.WithInterval(n, Day)
}

// WithIntervalInWeeks sets the repeat interval in weeks.
func (b *CalendarIntervalScheduleBuilder) WithIntervalInWeeks(n int) (*CalendarIntervalScheduleBuilder, error) {
	return b.WithInterval(n, Week)
}

// WithIntervalInMonths sets the repeat interval in months.
func (b *CalendarIntervalScheduleBuilder) WithIntervalInMonths(n int) (*CalendarIntervalScheduleBuilder, error) {
	return b.WithInterval(n, Month)
}

// WithIntervalInYears sets the repeat interval in years.
func (b *CalendarIntervalScheduleBuilder) WithIntervalInYears(n int) (*CalendarIntervalScheduleBuilder, error) {
	return b.WithInterval(n, Year)
}

// WithMisfireHandlingInstructionIgnoreMisfires directs the firing engine to
// fire all missed executions as soon as possible, then return to schedule.
func (b *CalendarIntervalScheduleBuilder) WithMisfireHandlingInstructionIgnoreMisfires() *CalendarIntervalScheduleBuilder {
	b.misfire = MisfireInstructionIgnoreMisfires
	return b
}

// WithMisfireHandlingInstructionDoNothing directs the firing engine to skip
// missed executions and wait for the next scheduled fire time.
func (b *CalendarIntervalScheduleBuilder) WithMisfireHandlingInstructionDoNothing() *CalendarIntervalScheduleBuilder {
	b.misfire = MisfireInstructionDoNothing
	return b
}

// WithMisfireHandlingInstructionFireAndProceed directs the firing engine to
// fire once immediately after a misfire, then resume the schedule.
func (b *CalendarIntervalScheduleBuilder) WithMisfireHandlingInstructionFireAndProceed() *CalendarIntervalScheduleBuilder {
	b.misfire = MisfireInstructionFireAndProceed
	return b
}

// setMisfireInstruction sets a raw misfire code without validation. Reserved
// for trusted in-package callers reconstructing persisted state; the firing
// engine is the final arbiter of code legality.
func (b *CalendarIntervalScheduleBuilder) setMisfireInstruction(code int) {
	b.misfire = code
}

// Build returns a fresh Trigger descriptor reflecting the current builder
// state. The builder is left untouched.
func (b *CalendarIntervalScheduleBuilder) Build() *Trigger {
	return &Trigger{
		Interval:           b.interval,
		IntervalUnit:       b.unit,
		MisfireInstruction: b.misfire,
	}
}
