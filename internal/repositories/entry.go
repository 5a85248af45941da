package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
)

// EntryWriteRepository handles completion entry writes.
type EntryWriteRepository struct {
	db *sqlx.DB
}

func NewEntryWriteRepository(db *sqlx.DB) *EntryWriteRepository {
	return &EntryWriteRepository{db: db}
}

// Save records a completion of the habit at the given time and returns the
// created entry.
func (r *EntryWriteRepository) Save(ctx context.Context, habitID uuid.UUID, completionDate time.Time) (*models.EntryDB, error) {
	query := `
		INSERT INTO entries (entry_id, habit_id, completion_date)
		VALUES ($1, $2, $3)
		RETURNING entry_id, habit_id, completion_date
	`
	args := []any{uuid.New(), habitID, completionDate}

	var entry models.EntryDB
	err := r.db.GetContext(ctx, &entry, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// EntryReadRepository handles completion entry reads.
type EntryReadRepository struct {
	db *sqlx.DB
}

func NewEntryReadRepository(db *sqlx.DB) *EntryReadRepository {
	return &EntryReadRepository{db: db}
}

// ListRecentByHabitID returns up to limit entries of the habit, newest first.
func (r *EntryReadRepository) ListRecentByHabitID(ctx context.Context, habitID uuid.UUID, limit int) ([]models.EntryDB, error) {
	const query = `
		SELECT entry_id, habit_id, completion_date
		FROM entries
		WHERE habit_id = $1
		ORDER BY completion_date DESC
		LIMIT $2
	`

	var entries []models.EntryDB
	err := r.db.SelectContext(ctx, &entries, query, habitID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{habitID, limit},
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
