package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
)

// HabitWriteRepository handles habit write operations. When a transaction is
// present in the request context it is used for every statement, so a habit
// insert and its tag links commit or roll back together.
type HabitWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewHabitWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *HabitWriteRepository {
	return &HabitWriteRepository{db: db, txGetter: txGetter}
}

func (r *HabitWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new habit owned by userID and returns the created row.
func (r *HabitWriteRepository) Save(ctx context.Context, userID uuid.UUID, name string, description *string, frequency string, targetCount int) (*models.HabitDB, error) {
	query := `
		INSERT INTO habits (habit_id, user_id, name, description, frequency, target_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING habit_id, user_id, name, description, frequency, target_count, created_at, updated_at
	`
	args := []any{uuid.New(), userID, name, description, frequency, targetCount}

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &habit, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// Update applies the non-nil fields of upd to the habit matching both the
// habit id and the owner id, refreshing updated_at. Returns nil when no row
// matched, whether the habit does not exist or is owned by another user.
func (r *HabitWriteRepository) Update(ctx context.Context, habitID, userID uuid.UUID, upd models.HabitUpdate) (*models.HabitDB, error) {
	query := `
		UPDATE habits
		SET name = COALESCE($3::VARCHAR, name),
		    description = COALESCE($4::TEXT, description),
		    frequency = COALESCE($5::VARCHAR, frequency),
		    target_count = COALESCE($6::INTEGER, target_count),
		    updated_at = NOW()
		WHERE habit_id = $1 AND user_id = $2
		RETURNING habit_id, user_id, name, description, frequency, target_count, created_at, updated_at
	`
	args := []any{habitID, userID, upd.Name, upd.Description, upd.Frequency, upd.TargetCount}

	var habit models.HabitDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &habit, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// Delete removes the habit matching both the habit id and the owner id.
// Tag links and entries are removed by the store's FK cascade. Reports
// whether a row was actually deleted.
func (r *HabitWriteRepository) Delete(ctx context.Context, habitID, userID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM habits
		WHERE habit_id = $1 AND user_id = $2
	`
	args := []any{habitID, userID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteTags removes every tag link of the habit.
func (r *HabitWriteRepository) DeleteTags(ctx context.Context, habitID uuid.UUID) error {
	query := `
		DELETE FROM habit_tags
		WHERE habit_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, habitID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{habitID},
		"error", err,
	)

	return err
}

// InsertTags links the habit to every supplied tag id.
func (r *HabitWriteRepository) InsertTags(ctx context.Context, habitID uuid.UUID, tagIDs []uuid.UUID) error {
	query := `
		INSERT INTO habit_tags (habit_id, tag_id)
		VALUES ($1, $2)
	`

	executor := r.executor(ctx)
	for _, tagID := range tagIDs {
		_, err := executor.ExecContext(ctx, query, habitID, tagID)

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{habitID, tagID},
			"error", err,
		)

		if err != nil {
			return err
		}
	}
	return nil
}

// HabitReadRepository handles habit read operations
type HabitReadRepository struct {
	db *sqlx.DB
}

func NewHabitReadRepository(db *sqlx.DB) *HabitReadRepository {
	return &HabitReadRepository{db: db}
}

// GetByID returns the habit matching both the habit id and the owner id, or
// nil when no such row exists. Callers must not distinguish "not mine" from
// "does not exist".
func (r *HabitReadRepository) GetByID(ctx context.Context, habitID, userID uuid.UUID) (*models.HabitDB, error) {
	const query = `
		SELECT habit_id, user_id, name, description, frequency, target_count, created_at, updated_at
		FROM habits
		WHERE habit_id = $1 AND user_id = $2
	`

	var habit models.HabitDB
	err := r.db.GetContext(ctx, &habit, query, habitID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{habitID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

// ListByUserID returns every habit owned by userID, most recently created first.
func (r *HabitReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.HabitDB, error) {
	const query = `
		SELECT habit_id, user_id, name, description, frequency, target_count, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var habits []models.HabitDB
	err := r.db.SelectContext(ctx, &habits, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(habits),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return habits, nil
}
