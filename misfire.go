package trigger

// Misfire instructions tell the firing engine how to behave when a scheduled
// fire time was missed (scheduler down, thread pool exhausted, and so on).
// The engine, not this package, resolves what each code means at fire time.
const (
	// MisfireInstructionIgnoreMisfires directs the engine to fire all
	// missed executions as soon as possible, then return to schedule.
	// Shared across trigger kinds.
	MisfireInstructionIgnoreMisfires = -1

	// MisfireInstructionSmartPolicy defers the choice of misfire handling
	// to the engine's default resolution logic. It is a deferred-resolution
	// marker, not a concrete behavior, and is the default for new schedules.
	MisfireInstructionSmartPolicy = 0

	// MisfireInstructionFireAndProceed directs the engine to fire once
	// immediately, then resume the normal schedule. Specific to
	// calendar-interval triggers.
	MisfireInstructionFireAndProceed = 1

	// MisfireInstructionDoNothing directs the engine to skip the missed
	// execution and wait for the next scheduled fire time. Specific to
	// calendar-interval triggers.
	MisfireInstructionDoNothing = 2
)
