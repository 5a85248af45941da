package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
)

// HabitLister defines the interface that the service must implement.
type HabitLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.Habit, error)
}

// ListHabitsResponse represents the list of the user's habits
// swagger:model ListHabitsResponse
type ListHabitsResponse struct {
	// Habits with resolved tags, most recently created first
	Habits []models.Habit `json:"habits"`
}

// ListHabitsErrorResponse represents an error response for listing habits
// swagger:model ListHabitsErrorResponse
type ListHabitsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListHabitsHandler returns an HTTP handler for listing the user's habits.
// @Summary List habits
// @Description Returns every habit owned by the authenticated user with resolved tags, newest first.
// @Tags habits
// @Produce json
// @Success 200 {object} handlers.ListHabitsResponse "User habits"
// @Failure 401 {object} handlers.ListHabitsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ListHabitsErrorResponse "Internal server error"
// @Router /habits [get]
// @Security BearerAuth
func NewListHabitsHandler(svc HabitLister, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListHabitsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListHabitsErrorResponse{Error: "Unauthorized"})
			return
		}

		habits, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list habits", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListHabitsErrorResponse{Error: "Failed to get habits"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListHabitsResponse{Habits: habits})
	}
}
