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

// HabitGetter defines the interface that the service must implement.
type HabitGetter interface {
	Get(ctx context.Context, habitID, userID uuid.UUID) (*models.HabitDetail, error)
}

// GetHabitResponse represents the single-habit detail view
// swagger:model GetHabitResponse
type GetHabitResponse struct {
	// Habit with resolved tags and up to 10 most recent entries
	Habit *models.HabitDetail `json:"habit"`
}

// GetHabitErrorResponse represents an error response for fetching a habit
// swagger:model GetHabitErrorResponse
type GetHabitErrorResponse struct {
	// Error message
	// default: Habit not found
	Error string `json:"error"`
}

// NewGetHabitHandler returns an HTTP handler for fetching one habit by id.
// @Summary Get habit by id
// @Description Returns the habit matching the id for the authenticated user, with resolved tags and the 10 most recent completion entries. A habit owned by another user is reported as not found.
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} handlers.GetHabitResponse "Habit detail"
// @Failure 401 {object} handlers.GetHabitErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.GetHabitErrorResponse "Habit not found"
// @Failure 500 {object} handlers.GetHabitErrorResponse "Internal server error"
// @Router /habits/{id} [get]
// @Security BearerAuth
func NewGetHabitHandler(svc HabitGetter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GetHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GetHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		habitID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetHabitErrorResponse{Error: "Habit not found"})
			return
		}

		habit, err := svc.Get(ctx, habitID, claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrHabitNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetHabitErrorResponse{Error: "Habit not found"})
				return
			}
			logger.Log.Errorw("failed to get habit", "habitID", habitID, "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GetHabitErrorResponse{Error: "Failed to get habit"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetHabitResponse{Habit: habit})
	}
}
