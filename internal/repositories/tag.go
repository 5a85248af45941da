package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
)

// TagReadRepository resolves the tags linked to habits. It honors the request
// transaction when one is present so tags linked inside an uncommitted
// create/update are visible to the same request.
type TagReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTagReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TagReadRepository {
	return &TagReadRepository{db: db, txGetter: txGetter}
}

func (r *TagReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

type habitTagRow struct {
	HabitID uuid.UUID `db:"habit_id"`
	models.TagDB
}

// ListByHabitIDs returns the resolved tags of every supplied habit id,
// keyed by habit id. Habits without tags are absent from the map.
func (r *TagReadRepository) ListByHabitIDs(ctx context.Context, habitIDs []uuid.UUID) (map[uuid.UUID][]models.TagDB, error) {
	tagsByHabit := make(map[uuid.UUID][]models.TagDB, len(habitIDs))
	if len(habitIDs) == 0 {
		return tagsByHabit, nil
	}

	query, args, err := sqlx.In(`
		SELECT ht.habit_id, t.tag_id, t.name, t.color
		FROM habit_tags ht
		JOIN tags t ON t.tag_id = ht.tag_id
		WHERE ht.habit_id IN (?)
	`, habitIDs)
	if err != nil {
		return nil, err
	}

	executor := r.executor(ctx)
	query = executor.Rebind(query)

	var rows []habitTagRow
	err = sqlx.SelectContext(ctx, executor, &rows, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		tagsByHabit[row.HabitID] = append(tagsByHabit[row.HabitID], row.TagDB)
	}
	return tagsByHabit, nil
}
