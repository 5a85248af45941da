package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
)

// ErrHabitNotFound is returned when no habit matches both the habit id and the
// owner id. A habit owned by another user is reported the same way as a habit
// that does not exist.
var ErrHabitNotFound = errors.New("habit not found")

// recentEntryLimit caps the entries returned by the single-habit view.
const recentEntryLimit = 10

// HabitWriter defines habit write operations.
type HabitWriter interface {
	Save(ctx context.Context, userID uuid.UUID, name string, description *string, frequency string, targetCount int) (*models.HabitDB, error)
	Update(ctx context.Context, habitID, userID uuid.UUID, upd models.HabitUpdate) (*models.HabitDB, error)
	Delete(ctx context.Context, habitID, userID uuid.UUID) (bool, error)
	DeleteTags(ctx context.Context, habitID uuid.UUID) error
	InsertTags(ctx context.Context, habitID uuid.UUID, tagIDs []uuid.UUID) error
}

// HabitReader defines habit read operations.
type HabitReader interface {
	GetByID(ctx context.Context, habitID, userID uuid.UUID) (*models.HabitDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.HabitDB, error)
}

// TagReader resolves tags linked to habits.
type TagReader interface {
	ListByHabitIDs(ctx context.Context, habitIDs []uuid.UUID) (map[uuid.UUID][]models.TagDB, error)
}

// EntryReader defines completion entry read operations.
type EntryReader interface {
	ListRecentByHabitID(ctx context.Context, habitID uuid.UUID, limit int) ([]models.EntryDB, error)
}

// EntryWriter defines completion entry write operations.
type EntryWriter interface {
	Save(ctx context.Context, habitID uuid.UUID, completionDate time.Time) (*models.EntryDB, error)
}

// HabitService implements habit CRUD and completion, always scoped to the
// authenticated owner. Multi-statement operations (create, update) run inside
// the request transaction the repositories pick up from the context.
type HabitService struct {
	writeRepo   HabitWriter
	readRepo    HabitReader
	tagRepo     TagReader
	entryReader EntryReader
	entryWriter EntryWriter
}

// NewHabitService creates a new HabitService.
func NewHabitService(
	writeRepo HabitWriter,
	readRepo HabitReader,
	tagRepo TagReader,
	entryReader EntryReader,
	entryWriter EntryWriter,
) *HabitService {
	return &HabitService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		tagRepo:     tagRepo,
		entryReader: entryReader,
		entryWriter: entryWriter,
	}
}

// resolveTags returns the habit's resolved tag list, never nil.
func (s *HabitService) resolveTags(ctx context.Context, habitID uuid.UUID) ([]models.TagDB, error) {
	tagsByHabit, err := s.tagRepo.ListByHabitIDs(ctx, []uuid.UUID{habitID})
	if err != nil {
		return nil, err
	}
	tags := tagsByHabit[habitID]
	if tags == nil {
		tags = []models.TagDB{}
	}
	return tags, nil
}

// Create inserts a habit owned by userID and links it to the supplied tag ids.
func (s *HabitService) Create(ctx context.Context, userID uuid.UUID, name string, description *string, frequency string, targetCount int, tagIDs []uuid.UUID) (*models.Habit, error) {
	habit, err := s.writeRepo.Save(ctx, userID, name, description, frequency, targetCount)
	if err != nil {
		logger.Log.Errorw("failed to save habit", "userID", userID, "name", name, "error", err)
		return nil, err
	}

	if len(tagIDs) > 0 {
		if err := s.writeRepo.InsertTags(ctx, habit.HabitID, tagIDs); err != nil {
			logger.Log.Errorw("failed to link habit tags", "habitID", habit.HabitID, "tagIDs", tagIDs, "error", err)
			return nil, err
		}
	}

	tags, err := s.resolveTags(ctx, habit.HabitID)
	if err != nil {
		logger.Log.Errorw("failed to resolve habit tags", "habitID", habit.HabitID, "error", err)
		return nil, err
	}

	return &models.Habit{HabitDB: *habit, Tags: tags}, nil
}

// List returns every habit owned by userID with resolved tags, newest first.
func (s *HabitService) List(ctx context.Context, userID uuid.UUID) ([]models.Habit, error) {
	habits, err := s.readRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list habits", "userID", userID, "error", err)
		return nil, err
	}

	habitIDs := make([]uuid.UUID, 0, len(habits))
	for _, h := range habits {
		habitIDs = append(habitIDs, h.HabitID)
	}

	tagsByHabit, err := s.tagRepo.ListByHabitIDs(ctx, habitIDs)
	if err != nil {
		logger.Log.Errorw("failed to resolve habit tags", "userID", userID, "error", err)
		return nil, err
	}

	result := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		tags := tagsByHabit[h.HabitID]
		if tags == nil {
			tags = []models.TagDB{}
		}
		result = append(result, models.Habit{HabitDB: h, Tags: tags})
	}
	return result, nil
}

// Get returns the habit matching (habitID, userID) with its resolved tags and
// up to 10 most recent completion entries.
func (s *HabitService) Get(ctx context.Context, habitID, userID uuid.UUID) (*models.HabitDetail, error) {
	habit, err := s.readRepo.GetByID(ctx, habitID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get habit", "habitID", habitID, "userID", userID, "error", err)
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	tags, err := s.resolveTags(ctx, habitID)
	if err != nil {
		logger.Log.Errorw("failed to resolve habit tags", "habitID", habitID, "error", err)
		return nil, err
	}

	entries, err := s.entryReader.ListRecentByHabitID(ctx, habitID, recentEntryLimit)
	if err != nil {
		logger.Log.Errorw("failed to list habit entries", "habitID", habitID, "error", err)
		return nil, err
	}
	if entries == nil {
		entries = []models.EntryDB{}
	}

	return &models.HabitDetail{
		Habit:   models.Habit{HabitDB: *habit, Tags: tags},
		Entries: entries,
	}, nil
}

// Update applies partial field updates to the habit matching (habitID, userID).
// A non-nil tagIDs replaces the habit's whole tag set; an explicit empty list
// clears it; nil leaves tags unchanged.
func (s *HabitService) Update(ctx context.Context, habitID, userID uuid.UUID, upd models.HabitUpdate, tagIDs *[]uuid.UUID) (*models.Habit, error) {
	habit, err := s.writeRepo.Update(ctx, habitID, userID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update habit", "habitID", habitID, "userID", userID, "error", err)
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	if tagIDs != nil {
		// Full replace, not a diff: drop every link, then relink.
		if err := s.writeRepo.DeleteTags(ctx, habitID); err != nil {
			logger.Log.Errorw("failed to clear habit tags", "habitID", habitID, "error", err)
			return nil, err
		}
		if len(*tagIDs) > 0 {
			if err := s.writeRepo.InsertTags(ctx, habitID, *tagIDs); err != nil {
				logger.Log.Errorw("failed to link habit tags", "habitID", habitID, "tagIDs", *tagIDs, "error", err)
				return nil, err
			}
		}
	}

	tags, err := s.resolveTags(ctx, habitID)
	if err != nil {
		logger.Log.Errorw("failed to resolve habit tags", "habitID", habitID, "error", err)
		return nil, err
	}

	return &models.Habit{HabitDB: *habit, Tags: tags}, nil
}

// Delete removes the habit matching (habitID, userID). Its tag links and
// entries are removed by the store's FK cascade.
func (s *HabitService) Delete(ctx context.Context, habitID, userID uuid.UUID) error {
	deleted, err := s.writeRepo.Delete(ctx, habitID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete habit", "habitID", habitID, "userID", userID, "error", err)
		return err
	}
	if !deleted {
		return ErrHabitNotFound
	}
	return nil
}

// Complete records a completion entry for the habit matching (habitID, userID)
// at the given time.
func (s *HabitService) Complete(ctx context.Context, habitID, userID uuid.UUID, completionDate time.Time) (*models.EntryDB, error) {
	habit, err := s.readRepo.GetByID(ctx, habitID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get habit for completion", "habitID", habitID, "userID", userID, "error", err)
		return nil, err
	}
	if habit == nil {
		return nil, ErrHabitNotFound
	}

	entry, err := s.entryWriter.Save(ctx, habitID, completionDate)
	if err != nil {
		logger.Log.Errorw("failed to save completion entry", "habitID", habitID, "error", err)
		return nil, err
	}
	return entry, nil
}
