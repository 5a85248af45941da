package models

import (
	"time"

	"github.com/google/uuid"
)

// HabitDB represents a habit row in the database.
type HabitDB struct {
	HabitID     uuid.UUID `json:"id" db:"habit_id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Frequency   string    `json:"frequency" db:"frequency"`
	TargetCount int       `json:"targetCount" db:"target_count"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// Habit is a habit row with its resolved tags, the shape returned by the API.
type Habit struct {
	HabitDB
	Tags []TagDB `json:"tags"`
}

// HabitDetail is the single-habit view: the habit, its tags, and its most
// recent completion entries (newest first).
type HabitDetail struct {
	Habit
	Entries []EntryDB `json:"entries"`
}

// HabitUpdate carries partial field updates for a habit. A nil field is
// left unchanged.
type HabitUpdate struct {
	Name        *string
	Description *string
	Frequency   *string
	TargetCount *int
}
