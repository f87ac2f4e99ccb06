package entity

import "time"

// Note is a dated free-text entry.
type Note struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	Date      time.Time `json:"date"`
	CreatedBy string    `json:"_createdBy"`
}
