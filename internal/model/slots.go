package model

import "time"

// DayLabelFormat renders the group header for a day of slots.
const DayLabelFormat = "Monday, 02 Jan 2006"

// GeneratedSlot is an ephemeral bookable start time derived from an
// availability window. Never persisted; re-derived on every listing.
type GeneratedSlot struct {
	StartAt time.Time `json:"start_at"`
	Token   string    `json:"token,omitempty"`
}

// DaySlots groups a day's slots under its human-readable label.
type DaySlots struct {
	Date  string          `json:"date"`
	Slots []GeneratedSlot `json:"slots"`
}
