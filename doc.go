// Package trigger provides builders for recurring, calendar-based schedule
// specifications and the trigger descriptors a job-scheduling system
// consumes.
//
// The package is purely a configuration surface: it validates and packages
// schedule state into [Trigger] descriptors, and leaves fire-time
// computation, calendar arithmetic, persistence, and dispatch to the
// scheduler's firing engine. No operation here performs I/O or blocks.
//
// # Calendar-Interval Schedules
//
// A calendar-interval schedule repeats every N calendar units, where a unit
// is one of the seven granularities from [Second] to [Year]. The interval is
// an opaque multiplier: "every 3 months" is not a fixed number of seconds,
// and resolving it against a real calendar is the engine's job.
//
//	sched, err := trigger.NewCalendarIntervalSchedule().WithIntervalInMinutes(30)
//	if err != nil {
//	    return err
//	}
//	sched.WithMisfireHandlingInstructionDoNothing()
//
// Interval-setting operations reject non-positive values with
// [ErrInvalidInterval] and leave prior state untouched, so a failed call
// never partially updates a builder.
//
// # Trigger Assembly
//
// The assembly [Builder] composes a schedule with identity, job binding,
// and start/end timing:
//
//	t, err := trigger.NewTrigger().
//	    WithIdentity("nightly-report", "reports").
//	    ForJob("generate-report", "reports").
//	    WithSchedule(sched).
//	    Build()
//
// A trigger built without an explicit identity receives a random unique
// name in the default group. Build never resets builder state; calling it
// repeatedly yields independent descriptors reflecting the state current at
// each call.
//
// # Misfire Handling
//
// Each schedule carries a misfire instruction telling the engine what to do
// about fire times that were missed. The default,
// [MisfireInstructionSmartPolicy], defers the choice to the engine. The
// public setters cover the documented code set; persisted records are
// restored verbatim through a trusted in-package path that performs no code
// validation, since the engine is the final arbiter of code legality.
//
// # Persistence
//
// [Record] is the flattened, serializable form of a descriptor (JSON and
// YAML tags included); [FromRecord] rebuilds a descriptor from it through
// the same builders used at original construction. Storage itself lives
// outside this package.
//
// # Concurrency
//
// Builders are not safe for concurrent mutation: configure each one from a
// single goroutine, typically in one linear chain. [Registry] is safe for
// concurrent use.
package trigger
