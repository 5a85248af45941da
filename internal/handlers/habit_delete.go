package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/services"
)

// HabitDeleter defines the interface that the service must implement.
type HabitDeleter interface {
	Delete(ctx context.Context, habitID, userID uuid.UUID) error
}

// DeleteHabitResponse represents a successful habit deletion response
// swagger:model DeleteHabitResponse
type DeleteHabitResponse struct {
	// Success message
	// default: Habit deleted successfully
	Message string `json:"message"`
}

// DeleteHabitErrorResponse represents an error response for habit deletion
// swagger:model DeleteHabitErrorResponse
type DeleteHabitErrorResponse struct {
	// Error message
	// default: Habit not found
	Error string `json:"error"`
}

// NewDeleteHabitHandler returns an HTTP handler for deleting a habit.
// @Summary Delete a habit
// @Description Deletes the habit matching the id for the authenticated user. Tag links and entries are removed by the store's cascade. A habit owned by another user is reported as not found.
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} handlers.DeleteHabitResponse "Habit deleted"
// @Failure 401 {object} handlers.DeleteHabitErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DeleteHabitErrorResponse "Habit not found"
// @Failure 500 {object} handlers.DeleteHabitErrorResponse "Internal server error"
// @Router /habits/{id} [delete]
// @Security BearerAuth
func NewDeleteHabitHandler(svc HabitDeleter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeleteHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeleteHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		habitID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DeleteHabitErrorResponse{Error: "Habit not found"})
			return
		}

		if err := svc.Delete(ctx, habitID, claims.UserID); err != nil {
			if errors.Is(err, services.ErrHabitNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteHabitErrorResponse{Error: "Habit not found"})
				return
			}
			logger.Log.Errorw("failed to delete habit", "habitID", habitID, "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeleteHabitErrorResponse{Error: "Failed to delete habit"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteHabitResponse{
			Message: "Habit deleted successfully",
		})
	}
}
