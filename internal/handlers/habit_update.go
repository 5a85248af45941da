package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/services"
)

// HabitUpdater defines the interface that the service must implement.
type HabitUpdater interface {
	Update(ctx context.Context, habitID, userID uuid.UUID, upd models.HabitUpdate, tagIDs *[]uuid.UUID) (*models.Habit, error)
}

// UpdateHabitRequest represents the JSON body for updating a habit. Absent
// fields are left unchanged. An explicit empty tagIds list clears all tags;
// an absent tagIds leaves the tag set untouched.
// swagger:model UpdateHabitRequest
type UpdateHabitRequest struct {
	// Habit name
	Name *string `json:"name"`

	// Description
	Description *string `json:"description"`

	// Frequency, e.g. daily
	Frequency *string `json:"frequency"`

	// Completions expected per period
	TargetCount *int `json:"targetCount"`

	// Replacement tag set
	TagIDs *[]uuid.UUID `json:"tagIds"`
}

// UpdateHabitResponse represents a successful habit update response
// swagger:model UpdateHabitResponse
type UpdateHabitResponse struct {
	// Success message
	// default: Habit updated successfully
	Message string `json:"message"`

	// Updated habit with resolved tags
	Habit *models.Habit `json:"habit"`
}

// UpdateHabitErrorResponse represents an error response for habit update
// swagger:model UpdateHabitErrorResponse
type UpdateHabitErrorResponse struct {
	// Error message
	// default: Habit not found
	Error string `json:"error"`
}

// NewUpdateHabitHandler returns an HTTP handler for updating a habit.
// @Summary Update a habit
// @Description Applies partial field updates to the habit matching the id for the authenticated user. A supplied tagIds list fully replaces the habit's tag set; the field updates and tag resync are persisted atomically.
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body handlers.UpdateHabitRequest true "Update Habit Request"
// @Success 200 {object} handlers.UpdateHabitResponse "Habit updated"
// @Failure 400 {object} handlers.UpdateHabitErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.UpdateHabitErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UpdateHabitErrorResponse "Habit not found"
// @Failure 500 {object} handlers.UpdateHabitErrorResponse "Internal server error"
// @Router /habits/{id} [put]
// @Security BearerAuth
func NewUpdateHabitHandler(svc HabitUpdater, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		habitID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(UpdateHabitErrorResponse{Error: "Habit not found"})
			return
		}

		var req UpdateHabitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update habit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateHabitErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Name != nil && *req.Name == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateHabitErrorResponse{Error: "Name must not be empty"})
			return
		}
		if req.TargetCount != nil && *req.TargetCount < 1 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateHabitErrorResponse{Error: "Target count must be at least 1"})
			return
		}

		upd := models.HabitUpdate{
			Name:        req.Name,
			Description: req.Description,
			Frequency:   req.Frequency,
			TargetCount: req.TargetCount,
		}

		habit, err := svc.Update(ctx, habitID, claims.UserID, upd, req.TagIDs)
		if err != nil {
			if errors.Is(err, services.ErrHabitNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateHabitErrorResponse{Error: "Habit not found"})
				return
			}
			logger.Log.Errorw("failed to update habit", "habitID", habitID, "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UpdateHabitErrorResponse{Error: "Failed to update habit"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateHabitResponse{
			Message: "Habit updated successfully",
			Habit:   habit,
		})
	}
}
