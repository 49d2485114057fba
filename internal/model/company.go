package model

import "time"

// Company is the organization whose availability windows and interviews
// the engine manages. Only the fields the scheduling core reads.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
