package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
)

func TestHabitWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := seedUser(t, db, "alice")
	repo := NewHabitWriteRepository(db, nil)
	ctx := context.Background()

	description := "Daily workout"
	habit, err := repo.Save(ctx, userID, "Exercise", &description, "daily", 2)
	assert.NoError(t, err)
	assert.NotNil(t, habit)
	assert.NotEqual(t, uuid.Nil, habit.HabitID)
	assert.Equal(t, userID, habit.UserID)
	assert.Equal(t, "Exercise", habit.Name)
	assert.NotNil(t, habit.Description)
	assert.Equal(t, "Daily workout", *habit.Description)
	assert.Equal(t, "daily", habit.Frequency)
	assert.Equal(t, 2, habit.TargetCount)
	assert.False(t, habit.CreatedAt.IsZero())
}

func TestHabitReadRepository_GetByID_OwnerScoped(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	otherID := seedUser(t, db, "other")
	habit := mustCreateHabit(t, db, ownerID, "Read")

	repo := NewHabitReadRepository(db)
	ctx := context.Background()

	t.Run("OwnerSeesHabit", func(t *testing.T) {
		got, err := repo.GetByID(ctx, habit.HabitID, ownerID)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, habit.HabitID, got.HabitID)
	})

	t.Run("OtherUserGetsNil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, habit.HabitID, otherID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("UnknownIDGetsNil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, uuid.New(), ownerID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestHabitReadRepository_ListByUserID_NewestFirst(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := seedUser(t, db, "alice")
	otherID := seedUser(t, db, "bob")

	first := mustCreateHabit(t, db, userID, "First")
	second := mustCreateHabit(t, db, userID, "Second")
	mustCreateHabit(t, db, otherID, "NotMine")

	// Force distinct creation times so the ordering is deterministic.
	_, err := db.Exec(`UPDATE habits SET created_at = created_at - INTERVAL '1 hour' WHERE habit_id = $1`, first.HabitID)
	assert.NoError(t, err)

	repo := NewHabitReadRepository(db)
	habits, err := repo.ListByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, habits, 2)
	assert.Equal(t, second.HabitID, habits[0].HabitID)
	assert.Equal(t, first.HabitID, habits[1].HabitID)
}

func TestHabitWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	otherID := seedUser(t, db, "other")
	habit := mustCreateHabit(t, db, ownerID, "Exercise")

	repo := NewHabitWriteRepository(db, nil)
	ctx := context.Background()

	t.Run("PartialUpdateKeepsOtherFields", func(t *testing.T) {
		name := "Exercise more"
		updated, err := repo.Update(ctx, habit.HabitID, ownerID, models.HabitUpdate{Name: &name})
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "Exercise more", updated.Name)
		assert.Equal(t, "daily", updated.Frequency)
		assert.Equal(t, 1, updated.TargetCount)
		assert.True(t, updated.UpdatedAt.After(habit.UpdatedAt) || updated.UpdatedAt.Equal(habit.UpdatedAt))
	})

	t.Run("AllFields", func(t *testing.T) {
		name := "Swim"
		description := "At the pool"
		frequency := "weekly"
		targetCount := 3
		updated, err := repo.Update(ctx, habit.HabitID, ownerID, models.HabitUpdate{
			Name:        &name,
			Description: &description,
			Frequency:   &frequency,
			TargetCount: &targetCount,
		})
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "Swim", updated.Name)
		assert.NotNil(t, updated.Description)
		assert.Equal(t, "At the pool", *updated.Description)
		assert.Equal(t, "weekly", updated.Frequency)
		assert.Equal(t, 3, updated.TargetCount)
	})

	t.Run("OtherUserGetsNil", func(t *testing.T) {
		name := "Hijacked"
		updated, err := repo.Update(ctx, habit.HabitID, otherID, models.HabitUpdate{Name: &name})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("UnknownIDGetsNil", func(t *testing.T) {
		name := "Ghost"
		updated, err := repo.Update(ctx, uuid.New(), ownerID, models.HabitUpdate{Name: &name})
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestHabitWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ownerID := seedUser(t, db, "owner")
	otherID := seedUser(t, db, "other")
	habit := mustCreateHabit(t, db, ownerID, "Exercise")

	repo := NewHabitWriteRepository(db, nil)
	ctx := context.Background()

	// Link a tag and record a completion so the cascade has something to remove.
	tagIDs := seededTagIDs(t, db, "Fitness")
	assert.NoError(t, repo.InsertTags(ctx, habit.HabitID, tagIDs))
	_, err := db.Exec(`INSERT INTO entries (entry_id, habit_id, completion_date) VALUES ($1, $2, NOW())`, uuid.New(), habit.HabitID)
	assert.NoError(t, err)

	t.Run("OtherUserCannotDelete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, habit.HabitID, otherID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("OwnerDeletesWithCascade", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, habit.HabitID, ownerID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		var links, entries int
		assert.NoError(t, db.Get(&links, `SELECT COUNT(*) FROM habit_tags WHERE habit_id = $1`, habit.HabitID))
		assert.NoError(t, db.Get(&entries, `SELECT COUNT(*) FROM entries WHERE habit_id = $1`, habit.HabitID))
		assert.Zero(t, links)
		assert.Zero(t, entries)
	})

	t.Run("SecondDeleteReportsFalse", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, habit.HabitID, ownerID)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestHabitWriteRepository_Tags(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	userID := seedUser(t, db, "alice")
	habit := mustCreateHabit(t, db, userID, "Exercise")

	repo := NewHabitWriteRepository(db, nil)
	ctx := context.Background()

	tagIDs := seededTagIDs(t, db, "Health", "Fitness")

	assert.NoError(t, repo.InsertTags(ctx, habit.HabitID, tagIDs))

	var count int
	assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM habit_tags WHERE habit_id = $1`, habit.HabitID))
	assert.Equal(t, 2, count)

	t.Run("UnknownTagFails", func(t *testing.T) {
		err := repo.InsertTags(ctx, habit.HabitID, []uuid.UUID{uuid.New()})
		assert.Error(t, err)
	})

	t.Run("DeleteTagsClearsLinks", func(t *testing.T) {
		assert.NoError(t, repo.DeleteTags(ctx, habit.HabitID))
		assert.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM habit_tags WHERE habit_id = $1`, habit.HabitID))
		assert.Zero(t, count)
	})
}
