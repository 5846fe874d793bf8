package models

import "time"

// Achievement is one evaluated entry of the achievement catalogue.
// Progress is only populated while locked; once unlocked it is nil.
type Achievement struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Emoji        string     `json:"emoji"`
	Unlocked     bool       `json:"unlocked"`
	UnlockedDate *time.Time `json:"unlocked_date,omitempty"`
	Progress     *float64   `json:"progress,omitempty"`
}
