package service

import (
	"sort"
	"time"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

// SlotInterval is the fixed booking granularity.
const SlotInterval = 30 * time.Minute

// GenerateSlots projects recurring availability windows onto concrete
// future dates and returns the bookable slots grouped by day.
//
// The function is pure: the same windows, booked set and now always
// produce the same result. Nothing here is cached or persisted; a slot
// exists only until the listing response is rendered.
//
// Day offsets run 1..horizonDays, so scheduling always starts tomorrow.
// A slot is emitted when its start lies on the 30-minute lattice of a
// matching active window, strictly before the window end, strictly
// after now, and not in the booked set. Overlapping windows may produce
// slots minutes apart; exact duplicates collapse.
func GenerateSlots(windows []model.AvailabilityWindow, booked []time.Time, now time.Time, horizonDays int) []model.DaySlots {
	bookedSet := make(map[int64]struct{}, len(booked))
	for _, t := range booked {
		bookedSet[t.Unix()] = struct{}{}
	}

	var days []model.DaySlots
	for offset := 1; offset <= horizonDays; offset++ {
		date := now.AddDate(0, 0, offset)
		dayName := model.WeekdayName(date.Weekday())

		seen := make(map[int64]struct{})
		var slots []model.GeneratedSlot
		for _, w := range windows {
			if !w.Active || w.DayOfWeek != dayName {
				continue
			}
			end := w.EndTime.On(date)
			for s := w.StartTime.On(date); s.Before(end); s = s.Add(SlotInterval) {
				if !s.After(now) {
					continue
				}
				key := s.Unix()
				if _, taken := bookedSet[key]; taken {
					continue
				}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				slots = append(slots, model.GeneratedSlot{StartAt: s})
			}
		}

		if len(slots) == 0 {
			continue
		}
		sort.Slice(slots, func(i, j int) bool {
			return slots[i].StartAt.Before(slots[j].StartAt)
		})
		days = append(days, model.DaySlots{
			Date:  date.Format(model.DayLabelFormat),
			Slots: slots,
		})
	}

	return days
}
