package trigger

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPriority is the priority assigned to triggers built without an
// explicit priority. Higher values win when the engine must choose among
// triggers firing at the same instant.
const DefaultPriority = 5

// Builder is the trigger-assembly surface. It composes a schedule builder's
// output with identity, job binding, and start/end timing, producing a
// complete Trigger descriptor ready for registration.
//
// The builder mutates in place and returns itself. Build does not reset
// accumulated state.
type Builder struct {
	key         Key
	jobKey      Key
	description string
	priority    int
	startAt     time.Time
	endAt       time.Time
	schedule    ScheduleBuilder
}

// NewTrigger creates an assembly builder with default priority and no
// identity. A trigger built without identity gets a random unique name in
// the default group.
func NewTrigger() *Builder {
	return &Builder{priority: DefaultPriority}
}

// WithIdentity sets the trigger's name and group. An empty group resolves
// to DefaultGroup.
func (b *Builder) WithIdentity(name, group string) *Builder {
	b.key = NewKey(name, group)
	return b
}

// ForJob binds the trigger to the identified job. An empty group resolves
// to DefaultGroup.
func (b *Builder) ForJob(name, group string) *Builder {
	b.jobKey = NewKey(name, group)
	return b
}

// WithDescription attaches a human-readable description.
func (b *Builder) WithDescription(description string) *Builder {
	b.description = description
	return b
}

// WithPriority overrides the default trigger priority.
func (b *Builder) WithPriority(priority int) *Builder {
	b.priority = priority
	return b
}

// StartAt sets the time from which the schedule is in effect.
func (b *Builder) StartAt(t time.Time) *Builder {
	b.startAt = t
	return b
}

// StartNow makes the schedule effective immediately. Triggers built without
// a start time behave the same; the call exists to make intent explicit.
func (b *Builder) StartNow() *Builder {
	b.startAt = time.Now()
	return b
}

// EndAt sets the time after which the schedule is no longer in effect.
func (b *Builder) EndAt(t time.Time) *Builder {
	b.endAt = t
	return b
}

// WithSchedule attaches the schedule builder whose output seeds the
// descriptor. When omitted, Build uses the default calendar-interval
// schedule (every 1 day, smart misfire policy).
func (b *Builder) WithSchedule(schedule ScheduleBuilder) *Builder {
	b.schedule = schedule
	return b
}

// Build assembles a new Trigger from the attached schedule and accumulated
// identity and timing. The builder is left untouched, so repeated calls are
// well-defined; a builder with no identity generates a fresh random name on
// each call.
func (b *Builder) Build() (*Trigger, error) {
	startAt := b.startAt
	if startAt.IsZero() {
		startAt = time.Now()
	}
	if !b.endAt.IsZero() && b.endAt.Before(startAt) {
		return nil, ErrInvalidTimeRange
	}

	schedule := b.schedule
	if schedule == nil {
		schedule = NewCalendarIntervalSchedule()
	}

	t := schedule.Build()
	t.Key = b.key
	if t.Key.Name == "" {
		t.Key = NewKey(uuid.NewString(), b.key.Group)
	}
	t.JobKey = b.jobKey
	t.Description = b.description
	t.Priority = b.priority
	t.StartAt = startAt
	t.EndAt = b.endAt
	return t, nil
}
