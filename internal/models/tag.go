package models

import "github.com/google/uuid"

// TagDB represents a shared tag row in the database. Tags are not owned by
// a user; habits reference them through habit_tags.
type TagDB struct {
	TagID uuid.UUID `json:"id" db:"tag_id"`
	Name  string    `json:"name" db:"name"`
	Color string    `json:"color" db:"color"`
}
