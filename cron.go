package trigger

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard 5-field cron expressions
// (minute hour day-of-month month day-of-week).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// CronScheduleBuilder accumulates configuration for a cron-expression
// schedule. The expression is validated once at construction; computing
// actual fire times from it is the firing engine's job.
//
// Like CalendarIntervalScheduleBuilder, it mutates in place and returns
// itself, and Build never resets accumulated state.
type CronScheduleBuilder struct {
	expression string
	misfire    int
}

// NewCronSchedule creates a builder for the given 5-field cron expression.
// Returns ErrInvalidCronExpression (wrapping the parser error) when the
// expression does not parse.
func NewCronSchedule(expression string) (*CronScheduleBuilder, error) {
	if _, err := cronParser.Parse(expression); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidCronExpression, expression, err)
	}
	return &CronScheduleBuilder{
		expression: expression,
		misfire:    MisfireInstructionSmartPolicy,
	}, nil
}

// WithMisfireHandlingInstructionIgnoreMisfires directs the firing engine to
// fire all missed executions as soon as possible, then return to schedule.
func (b *CronScheduleBuilder) WithMisfireHandlingInstructionIgnoreMisfires() *CronScheduleBuilder {
	b.misfire = MisfireInstructionIgnoreMisfires
	return b
}

// WithMisfireHandlingInstructionDoNothing directs the firing engine to skip
// missed executions and wait for the next scheduled fire time.
func (b *CronScheduleBuilder) WithMisfireHandlingInstructionDoNothing() *CronScheduleBuilder {
	b.misfire = MisfireInstructionDoNothing
	return b
}

// WithMisfireHandlingInstructionFireAndProceed directs the firing engine to
// fire once immediately after a misfire, then resume the schedule.
func (b *CronScheduleBuilder) WithMisfireHandlingInstructionFireAndProceed() *CronScheduleBuilder {
	b.misfire = MisfireInstructionFireAndProceed
	return b
}

// setMisfireInstruction sets a raw misfire code without validation. Trusted
// in-package callers only.
func (b *CronScheduleBuilder) setMisfireInstruction(code int) {
	b.misfire = code
}

// Expression returns the cron expression this builder was created with.
func (b *CronScheduleBuilder) Expression() string {
	return b.expression
}

// Build returns a fresh Trigger descriptor reflecting the current builder
// state. The builder is left untouched.
func (b *CronScheduleBuilder) Build() *Trigger {
	return &Trigger{
		CronExpression:     b.expression,
		MisfireInstruction: b.misfire,
	}
}
