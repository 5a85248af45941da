package models

import (
	"time"

	"github.com/google/uuid"
)

// EntryDB represents a single habit completion record.
type EntryDB struct {
	EntryID        uuid.UUID `json:"id" db:"entry_id"`
	HabitID        uuid.UUID `json:"-" db:"habit_id"`
	CompletionDate time.Time `json:"completionDate" db:"completion_date"`
}
