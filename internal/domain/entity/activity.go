package entity

import "time"

// RepeatingType describes how often an activity recurs.
type RepeatingType string

const (
	RepeatingNone    RepeatingType = "None"
	RepeatingDaily   RepeatingType = "Daily"
	RepeatingWeekly  RepeatingType = "Weekly"
	RepeatingMonthly RepeatingType = "Monthly"
)

// String returns the string representation of the RepeatingType.
func (r RepeatingType) String() string {
	return string(r)
}

// IsValid checks if the RepeatingType is a known value.
func (r RepeatingType) IsValid() bool {
	switch r {
	case RepeatingNone, RepeatingDaily, RepeatingWeekly, RepeatingMonthly:
		return true
	default:
		return false
	}
}

// Activity is a scheduled event in an account's day.
type Activity struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Date        time.Time     `json:"date"`
	StartTime   string        `json:"startTime"`
	EndTime     string        `json:"endTime"`
	Place       string        `json:"place,omitempty"`
	IsRepeating bool          `json:"isRepeating"`
	Repeating   RepeatingType `json:"repeating"`
	CreatedBy   string        `json:"_createdBy"`
}
