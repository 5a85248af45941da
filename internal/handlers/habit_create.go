package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
)

// HabitCreator defines the interface that the service must implement.
type HabitCreator interface {
	Create(ctx context.Context, userID uuid.UUID, name string, description *string, frequency string, targetCount int, tagIDs []uuid.UUID) (*models.Habit, error)
}

// CreateHabitRequest represents the JSON body for creating a habit
// swagger:model CreateHabitRequest
type CreateHabitRequest struct {
	// Habit name
	// required: true
	// default: Exercise
	Name string `json:"name"`

	// Optional description
	// default: Daily workout
	Description *string `json:"description"`

	// Frequency, e.g. daily
	// required: true
	// default: daily
	Frequency string `json:"frequency"`

	// Completions expected per period
	// required: true
	// default: 1
	TargetCount int `json:"targetCount"`

	// Tags to link to the habit
	TagIDs []uuid.UUID `json:"tagIds"`
}

// CreateHabitResponse represents a successful habit creation response
// swagger:model CreateHabitResponse
type CreateHabitResponse struct {
	// Success message
	// default: Habit created successfully
	Message string `json:"message"`

	// Created habit with resolved tags
	Habit *models.Habit `json:"habit"`
}

// CreateHabitErrorResponse represents an error response for habit creation
// swagger:model CreateHabitErrorResponse
type CreateHabitErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewCreateHabitHandler returns an HTTP handler for creating a habit.
// @Summary Create a habit
// @Description Creates a habit owned by the authenticated user and links the supplied tags. The habit and its tag links are persisted atomically.
// @Tags habits
// @Accept json
// @Produce json
// @Param request body handlers.CreateHabitRequest true "Create Habit Request"
// @Success 201 {object} handlers.CreateHabitResponse "Habit created"
// @Failure 400 {object} handlers.CreateHabitErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.CreateHabitErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.CreateHabitErrorResponse "Internal server error"
// @Router /habits [post]
// @Security BearerAuth
func NewCreateHabitHandler(svc HabitCreator, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateHabitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create habit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateHabitErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Name == "" || req.Frequency == "" || req.TargetCount < 1 {
			logger.Log.Warnw("invalid create habit request", "name", req.Name, "frequency", req.Frequency, "targetCount", req.TargetCount)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateHabitErrorResponse{Error: "Name, frequency and a target count of at least 1 are required"})
			return
		}

		habit, err := svc.Create(ctx, claims.UserID, req.Name, req.Description, req.Frequency, req.TargetCount, req.TagIDs)
		if err != nil {
			logger.Log.Errorw("failed to create habit", "userID", claims.UserID, "name", req.Name, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreateHabitErrorResponse{Error: "Failed to create habit"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateHabitResponse{
			Message: "Habit created successfully",
			Habit:   habit,
		})
	}
}
