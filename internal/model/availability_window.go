package model

import "time"

// DayNames lists weekday names in schedule order, Monday first. Windows
// are stored and sorted by these names, matching the staffing schema.
var DayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DayIndex returns the Monday-based position of a weekday name and
// whether the name is a valid schedule day.
func DayIndex(name string) (int, bool) {
	for i, d := range DayNames {
		if d == name {
			return i, true
		}
	}
	return 0, false
}

// WeekdayName converts a time.Weekday into the stored day name.
func WeekdayName(w time.Weekday) string {
	return w.String()
}

// AvailabilityWindow is a recurring weekly time range during which a
// company accepts interviews. Multiple windows per company and day are
// allowed; overlap is not validated.
type AvailabilityWindow struct {
	ID        int64     `json:"id"`
	CompanyID int64     `json:"company_id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime TimeOfDay `json:"start_time"`
	EndTime   TimeOfDay `json:"end_time"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
