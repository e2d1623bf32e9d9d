package trigger

import "time"

// Record is the flattened, persistable form of a Trigger. It is what a
// store serializes (JSON, YAML, a database row) and what FromRecord
// reconstructs a descriptor from. This package performs no I/O itself;
// it only defines the shape and the reconstruction path.
type Record struct {
	Name        string    `json:"name" yaml:"name"`
	Group       string    `json:"group,omitempty" yaml:"group,omitempty"`
	JobName     string    `json:"job_name,omitempty" yaml:"job_name,omitempty"`
	JobGroup    string    `json:"job_group,omitempty" yaml:"job_group,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    int       `json:"priority,omitempty" yaml:"priority,omitempty"`
	StartAt     time.Time `json:"start_at,omitzero" yaml:"start_at,omitempty"`
	EndAt       time.Time `json:"end_at,omitzero" yaml:"end_at,omitempty"`

	CronExpression     string       `json:"cron_expression,omitempty" yaml:"cron_expression,omitempty"`
	Interval           int          `json:"interval,omitempty" yaml:"interval,omitempty"`
	IntervalUnit       IntervalUnit `json:"interval_unit,omitempty" yaml:"interval_unit,omitempty"`
	MisfireInstruction int          `json:"misfire_instruction,omitempty" yaml:"misfire_instruction,omitempty"`
}

// Record flattens the descriptor into its persistable form.
func (t *Trigger) Record() Record {
	return Record{
		Name:               t.Key.Name,
		Group:              t.Key.Group,
		JobName:            t.JobKey.Name,
		JobGroup:           t.JobKey.Group,
		Description:        t.Description,
		Priority:           t.Priority,
		StartAt:            t.StartAt,
		EndAt:              t.EndAt,
		CronExpression:     t.CronExpression,
		Interval:           t.Interval,
		IntervalUnit:       t.IntervalUnit,
		MisfireInstruction: t.MisfireInstruction,
	}
}

// FromRecord rebuilds a Trigger from its persisted form, routing state back
// through the builders so the same validation applies as at original
// construction. The one deliberate exception is the misfire code: a store is
// a trusted caller, so the code is restored verbatim through the raw setter
// without checking it against the documented set. Whatever the engine did
// with an unusual code before persistence, it will do again after.
func FromRecord(r Record) (*Trigger, error) {
	if r.CronExpression != "" && r.Interval != 0 {
		return nil, ErrMixedSchedule
	}

	var schedule ScheduleBuilder
	if r.CronExpression != "" {
		cb, err := NewCronSchedule(r.CronExpression)
		if err != nil {
			return nil, err
		}
		cb.setMisfireInstruction(r.MisfireInstruction)
		schedule = cb
	} else {
		cb := NewCalendarIntervalSchedule()
		if _, err := cb.WithInterval(r.Interval, r.IntervalUnit); err != nil {
			return nil, err
		}
		cb.setMisfireInstruction(r.MisfireInstruction)
		schedule = cb
	}

	b := NewTrigger().
		WithIdentity(r.Name, r.Group).
		WithSchedule(schedule).
		WithDescription(r.Description)
	if r.JobName != "" || r.JobGroup != "" {
		b.ForJob(r.JobName, r.JobGroup)
	}
	if r.Priority != 0 {
		b.WithPriority(r.Priority)
	}
	if !r.StartAt.IsZero() {
		b.StartAt(r.StartAt)
	}
	if !r.EndAt.IsZero() {
		b.EndAt(r.EndAt)
	}
	return b.Build()
}
