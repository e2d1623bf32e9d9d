package trigger

// ScheduleBuilder is implemented by schedule configuration builders. Build
// produces a fresh Trigger descriptor with only the schedule fields
// populated; the assembly Builder stamps identity, job binding, and timing
// on top.
//
// Build is pure with respect to builder state: it never resets or mutates
// the builder, so it may be called repeatedly, each call yielding an
// independent snapshot of whatever configuration has accumulated so far.
type ScheduleBuilder interface {
	Build() *Trigger
}
