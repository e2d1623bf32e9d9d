package trigger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedkit/trigger"
)

func TestNewCalendarIntervalSchedule_Defaults(t *testing.T) {
	t.Parallel()

	desc := trigger.NewCalendarIntervalSchedule().Build()

	assert.Equal(t, 1, desc.Interval)
	assert.Equal(t, trigger.Day, desc.IntervalUnit)
	assert.Equal(t, trigger.MisfireInstructionSmartPolicy, desc.MisfireInstruction)
}

func TestCalendarIntervalScheduleBuilder_WithInterval(t *testing.T) {
	t.Parallel()

	t.Run("sets interval and unit together", func(t *testing.T) {
		t.Parallel()

		b, err := trigger.NewCalendarIntervalSchedule().WithInterval(3, trigger.Month)
		require.NoError(t, err)

		desc := b.Build()
		assert.Equal(t, 3, desc.Interval)
		assert.Equal(t, trigger.Month, desc.IntervalUnit)
	})

	t.Run("rejects non-positive intervals", func(t *testing.T) {
		t.Parallel()

		for _, interval := range []int{0, -1, -100} {
			_, err := trigger.NewCalendarIntervalSchedule().WithInterval(interval, trigger.Hour)
			require.Error(t, err)
			assert.ErrorIs(t, err, trigger.ErrInvalidInterval)
		}
	})

	t.Run("rejection leaves prior state untouched", func(t *testing.T) {
		t.Parallel()

		b, err := trigger.NewCalendarIntervalSchedule().WithIntervalInHours(2)
		require.NoError(t, err)

		_, err = b.WithInterval(0, trigger.Week)
		require.ErrorIs(t, err, trigger.ErrInvalidInterval)

		desc := b.Build()
		assert.Equal(t, 2, desc.Interval)
		assert.Equal(t, trigger.Hour, desc.IntervalUnit)
	})

	t.Run("rejection on fresh builder keeps defaults", func(t *testing.T) {
		t.Parallel()

		b := trigger.NewCalendarIntervalSchedule()
		_, err := b.WithInterval(0, trigger.Day)
		require.ErrorIs(t, err, trigger.ErrInvalidInterval)

		desc := b.Build()
		assert.Equal(t, 1, desc.Interval)
		assert.Equal(t, trigger.Day, desc.IntervalUnit)
		assert.Equal(t, trigger.MisfireInstructionSmartPolicy, desc.MisfireInstruction)
	})
}

func TestCalendarIntervalScheduleBuilder_UnitShorthands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		set  func(*trigger.CalendarIntervalScheduleBuilder) (*trigger.CalendarIntervalScheduleBuilder, error)
		unit trigger.IntervalUnit
	}{
		{"seconds", func(b *trigger.CalendarIntervalScheduleBuilder) (*trigger.CalendarIntervalScheduleBuilder, error) {
			return b.WithIntervalInSeconds(7)
		}, trigger.Second},
		{"minutes", func(b *trigger.CalendarIntervalScheduleBuilder) (*trigger.CalendarIntervalScheduleBuilder, error) {
			return b.WithIntervalInMinutes(7)
		}, trigger.Minute},
		{"hours", func(b *trigger.CalendarIntervalScheduleBuilder) (*trigger.CalendarIntervalScheduleBuilder, error) {
			return b.WithIntervalInHours(7)
		}, trigger.Hour},
		{"days", func(b *trigger.CalendarIntervalScheduleBuilder) (*trigger.CalendarIntervalScheduleBuilder, error) {
			return b.WithIntervalInDays(7)
		}, trigger.Day},
		{"weeks", func(b *trigger.CalendarIntervalScheduleBuilder) (*trigger.CalendarIntervalScheduleBuilder, error) {
			return b.WithIntervalInWeeks(7)
		}, trigger.Week},
		{"months", func(b *trigger.CalendarIntervalScheduleBuilder) (*trigger.CalendarIntervalScheduleBuilder, error) {
			return b.WithIntervalInMonths(7)
		}, trigger.Month},
		{"years", func(b *trigger.CalendarIntervalScheduleBuilder) (*trigger.CalendarIntervalScheduleBuilder, error) {
			return b.WithIntervalInYears(7)
		}, trigger.Year},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := tt.set(trigger.NewCalendarIntervalSchedule())
			require.NoError(t, err)

			desc := b.Build()
			assert.Equal(t, 7, desc.Interval)
			assert.Equal(t, tt.unit, desc.IntervalUnit)
		})
	}
}

func TestCalendarIntervalScheduleBuilder_MisfireSetters(t *testing.T) {
	t.Parallel()

	t.Run("ignore misfires", func(t *testing.T) {
		t.Parallel()

		desc := trigger.NewCalendarIntervalSchedule().
			WithMisfireHandlingInstructionIgnoreMisfires().
			Build()
		assert.Equal(t, trigger.MisfireInstructionIgnoreMisfires, desc.MisfireInstruction)
	})

	t.Run("do nothing", func(t *testing.T) {
		t.Parallel()

		desc := trigger.NewCalendarIntervalSchedule().
			WithMisfireHandlingInstructionDoNothing().
			Build()
		assert.Equal(t, trigger.MisfireInstructionDoNothing, desc.MisfireInstruction)
	})

	t.Run("fire and proceed", func(t *testing.T) {
		t.Parallel()

		desc := trigger.NewCalendarIntervalSchedule().
			WithMisfireHandlingInstructionFireAndProceed().
			Build()
		assert.Equal(t, trigger.MisfireInstructionFireAndProceed, desc.MisfireInstruction)
	})

	t.Run("independent of interval configuration", func(t *testing.T) {
		t.Parallel()

		b, err := trigger.NewCalendarIntervalSchedule().WithIntervalInWeeks(4)
		require.NoError(t, err)

		desc := b.WithMisfireHandlingInstructionDoNothing().Build()
		assert.Equal(t, 4, desc.Interval)
		assert.Equal(t, trigger.Week, desc.IntervalUnit)
		assert.Equal(t, trigger.MisfireInstructionDoNothing, desc.MisfireInstruction)
	})
}

func TestCalendarIntervalScheduleBuilder_LastWriterWins(t *testing.T) {
	t.Parallel()

	b, err := trigger.NewCalendarIntervalSchedule().WithIntervalInHours(2)
	require.NoError(t, err)
	b, err = b.WithIntervalInDays(3)
	require.NoError(t, err)

	desc := b.Build()
	assert.Equal(t, 3, desc.Interval)
	assert.Equal(t, trigger.Day, desc.IntervalUnit)
}

func TestCalendarIntervalScheduleBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("repeated builds are identical snapshots", func(t *testing.T) {
		t.Parallel()

		b, err := trigger.NewCalendarIntervalSchedule().WithIntervalInMinutes(15)
		require.NoError(t, err)

		first := b.Build()
		second := b.Build()

		assert.NotSame(t, first, second)
		assert.Equal(t, *first, *second)
	})

	t.Run("build reflects state at call time", func(t *testing.T) {
		t.Parallel()

		b, err := trigger.NewCalendarIntervalSchedule().WithIntervalInMinutes(15)
		require.NoError(t, err)
		before := b.Build()

		_, err = b.WithIntervalInYears(1)
		require.NoError(t, err)
		after := b.Build()

		assert.Equal(t, 15, before.Interval)
		assert.Equal(t, trigger.Minute, before.IntervalUnit)
		assert.Equal(t, 1, after.Interval)
		assert.Equal(t, trigger.Year, after.IntervalUnit)
	})

	t.Run("thirty seconds with do nothing", func(t *testing.T) {
		t.Parallel()

		b, err := trigger.NewCalendarIntervalSchedule().WithIntervalInSeconds(30)
		require.NoError(t, err)

		desc := b.WithMisfireHandlingInstructionDoNothing().Build()
		assert.Equal(t, 30, desc.Interval)
		assert.Equal(t, trigger.Second, desc.IntervalUnit)
		assert.Equal(t, trigger.MisfireInstructionDoNothing, desc.MisfireInstruction)
	})
}
