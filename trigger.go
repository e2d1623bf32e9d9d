package trigger

import "time"

// DefaultGroup is the group assigned to trigger and job keys created
// without an explicit group.
const DefaultGroup = "DEFAULT"

// Key identifies a trigger or a job within the scheduler.
type Key struct {
	Name  string
	Group string
}

// NewKey creates a Key, substituting DefaultGroup when group is empty.
func NewKey(name, group string) Key {
	if group == "" {
		group = DefaultGroup
	}
	return Key{Name: name, Group: group}
}

// String returns the key in "group.name" form.
func (k Key) String() string {
	return k.Group + "." + k.Name
}

// Trigger is the descriptor handed to the scheduling system. Schedule
// builders populate the schedule fields; the assembly Builder adds identity,
// job binding, and timing. Once registered it is treated as immutable; this
// package never retains a reference to descriptors it emits.
type Trigger struct {
	Key         Key
	JobKey      Key
	Description string
	Priority    int

	StartAt time.Time
	EndAt   time.Time

	// Schedule fields. Exactly one schedule kind is populated: a cron
	// expression, or a calendar interval with its unit.
	CronExpression     string
	Interval           int
	IntervalUnit       IntervalUnit
	MisfireInstruction int
}
