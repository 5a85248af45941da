package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
	"github.com/vkuznetsov2018/habit-tracker-api/migrations"
)

// setupPostgresContainer starts a disposable PostgreSQL container and applies
// the embedded migrations, so tests run against the real schema.
func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	err = migrations.Up(context.Background(), db)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// seedUser inserts a user row directly and returns its id.
func seedUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(`
		INSERT INTO users (user_id, email, username, password_hash, first_name, last_name, created_at)
		VALUES ($1, $2, $3, 'hash', '', '', NOW())
	`, userID, username+"@example.com", username)
	assert.NoError(t, err)
	return userID
}

// seededTagIDs returns the ids of the tags planted by the seed migration.
func seededTagIDs(t *testing.T, db *sqlx.DB, names ...string) []uuid.UUID {
	t.Helper()

	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		var id uuid.UUID
		err := db.Get(&id, `SELECT tag_id FROM tags WHERE name = $1`, name)
		assert.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

// mustCreateHabit inserts a habit through the write repository.
func mustCreateHabit(t *testing.T, db *sqlx.DB, userID uuid.UUID, name string) *models.HabitDB {
	t.Helper()

	repo := NewHabitWriteRepository(db, nil)
	habit, err := repo.Save(context.Background(), userID, name, nil, "daily", 1)
	assert.NoError(t, err)
	assert.NotNil(t, habit)
	return habit
}
