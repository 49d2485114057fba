package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

func mustTOD(t *testing.T, s string) model.TimeOfDay {
	t.Helper()
	tod, err := model.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func window(t *testing.T, day, start, end string) model.AvailabilityWindow {
	t.Helper()
	return model.AvailabilityWindow{
		DayOfWeek: day,
		StartTime: mustTOD(t, start),
		EndTime:   mustTOD(t, end),
		Active:    true,
	}
}

// 2026-01-01 is a Thursday.
var thursdayMorning = time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC)

func TestGenerateSlotsMondayHourWindow(t *testing.T) {
	windows := []model.AvailabilityWindow{window(t, "Monday", "09:00", "10:00")}

	days := GenerateSlots(windows, nil, thursdayMorning, 14)

	// Two Mondays fall inside the 14-day horizon: Jan 5 and Jan 12.
	require.Len(t, days, 2)

	first := days[0]
	assert.Equal(t, "Monday, 05 Jan 2026", first.Date)
	require.Len(t, first.Slots, 2)
	assert.Equal(t, time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC), first.Slots[0].StartAt)
	assert.Equal(t, time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC), first.Slots[1].StartAt)

	assert.Equal(t, "Monday, 12 Jan 2026", days[1].Date)
	require.Len(t, days[1].Slots, 2)
}

func TestGenerateSlotsExcludesToday(t *testing.T) {
	// Window on the same weekday as now, later in the day: still skipped
	// because projection starts tomorrow.
	windows := []model.AvailabilityWindow{window(t, "Thursday", "14:00", "16:00")}

	days := GenerateSlots(windows, nil, thursdayMorning, 6)
	assert.Empty(t, days)

	// With a horizon reaching the next Thursday the window shows up.
	days = GenerateSlots(windows, nil, thursdayMorning, 7)
	require.Len(t, days, 1)
	assert.Equal(t, "Thursday, 08 Jan 2026", days[0].Date)
}

func TestGenerateSlotsStrictlyFuture(t *testing.T) {
	windows := []model.AvailabilityWindow{
		window(t, "Monday", "00:00", "23:30"),
		window(t, "Friday", "00:00", "23:30"),
	}

	days := GenerateSlots(windows, nil, thursdayMorning, 14)
	require.NotEmpty(t, days)
	for _, day := range days {
		for _, s := range day.Slots {
			assert.True(t, s.StartAt.After(thursdayMorning), "slot %s must be strictly after now", s.StartAt)
		}
	}
}

func TestGenerateSlotsExcludesBooked(t *testing.T) {
	windows := []model.AvailabilityWindow{window(t, "Monday", "09:00", "10:00")}
	booked := []time.Time{time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)}

	days := GenerateSlots(windows, booked, thursdayMorning, 7)
	require.Len(t, days, 1)
	require.Len(t, days[0].Slots, 1)
	assert.Equal(t, time.Date(2026, time.January, 5, 9, 30, 0, 0, time.UTC), days[0].Slots[0].StartAt)
}

func TestGenerateSlotsIgnoresInactiveWindows(t *testing.T) {
	w := window(t, "Monday", "09:00", "10:00")
	w.Active = false

	days := GenerateSlots([]model.AvailabilityWindow{w}, nil, thursdayMorning, 14)
	assert.Empty(t, days)
}

func TestGenerateSlotsNoWindows(t *testing.T) {
	assert.Empty(t, GenerateSlots(nil, nil, thursdayMorning, 14))
}

func TestGenerateSlotsOverlappingWindowsCollapseDuplicates(t *testing.T) {
	// Same lattice points from two overlapping windows collapse; the
	// staggered window contributes its own boundary slots.
	windows := []model.AvailabilityWindow{
		window(t, "Monday", "09:00", "11:00"),
		window(t, "Monday", "09:00", "10:00"),
		window(t, "Monday", "10:15", "11:15"),
	}

	days := GenerateSlots(windows, nil, thursdayMorning, 7)
	require.Len(t, days, 1)

	var got []string
	for _, s := range days[0].Slots {
		got = append(got, s.StartAt.Format("15:04"))
	}
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:15", "10:30", "10:45"}, got)
}

func TestGenerateSlotsGranularityInvariant(t *testing.T) {
	windows := []model.AvailabilityWindow{
		window(t, "Monday", "09:00", "12:30"),
		window(t, "Wednesday", "14:00", "17:00"),
		window(t, "Friday", "08:30", "09:30"),
	}

	days := GenerateSlots(windows, nil, thursdayMorning, 14)
	require.NotEmpty(t, days)

	for _, day := range days {
		for i, s := range day.Slots {
			assert.Zero(t, s.StartAt.Minute()%30, "minute must sit on the 30-minute lattice")
			assert.Zero(t, s.StartAt.Second())
			if i > 0 {
				assert.True(t, day.Slots[i-1].StartAt.Before(s.StartAt), "slots must be chronological")
			}

			tod := model.TimeOfDay{Hour: s.StartAt.Hour(), Minute: s.StartAt.Minute()}
			dayName := model.WeekdayName(s.StartAt.Weekday())
			covered := false
			for _, w := range windows {
				if w.DayOfWeek == dayName && !tod.Before(w.StartTime) && tod.Before(w.EndTime) {
					covered = true
				}
			}
			assert.True(t, covered, "slot %s must lie within a window", s.StartAt)
		}
	}
}

func TestGenerateSlotsDeterministic(t *testing.T) {
	windows := []model.AvailabilityWindow{
		window(t, "Monday", "09:00", "10:00"),
		window(t, "Tuesday", "13:00", "15:00"),
	}
	booked := []time.Time{time.Date(2026, time.January, 6, 13, 30, 0, 0, time.UTC)}

	first := GenerateSlots(windows, booked, thursdayMorning, 14)
	second := GenerateSlots(windows, booked, thursdayMorning, 14)
	assert.Equal(t, first, second)
}
