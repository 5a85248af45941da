package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/logger"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/services"
)

// HabitCompleter defines the interface that the service must implement.
type HabitCompleter interface {
	Complete(ctx context.Context, habitID, userID uuid.UUID, completionDate time.Time) (*models.EntryDB, error)
}

// CompleteHabitRequest represents the JSON body for logging a completion.
// The body may be empty; completionDate defaults to the current time.
// swagger:model CompleteHabitRequest
type CompleteHabitRequest struct {
	// Completion timestamp, RFC 3339
	CompletionDate *time.Time `json:"completionDate"`
}

// CompleteHabitResponse represents a successful completion response
// swagger:model CompleteHabitResponse
type CompleteHabitResponse struct {
	// Success message
	// default: Habit completed
	Message string `json:"message"`

	// Created completion entry
	Entry *models.EntryDB `json:"entry"`
}

// CompleteHabitErrorResponse represents an error response for completion
// swagger:model CompleteHabitErrorResponse
type CompleteHabitErrorResponse struct {
	// Error message
	// default: Habit not found
	Error string `json:"error"`
}

// NewCompleteHabitHandler returns an HTTP handler for logging a habit completion.
// @Summary Complete a habit
// @Description Records a completion entry for the habit matching the id for the authenticated user. The completion timestamp defaults to now.
// @Tags habits
// @Accept json
// @Produce json
// @Param id path string true "Habit ID"
// @Param request body handlers.CompleteHabitRequest false "Complete Habit Request"
// @Success 201 {object} handlers.CompleteHabitResponse "Completion recorded"
// @Failure 400 {object} handlers.CompleteHabitErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.CompleteHabitErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.CompleteHabitErrorResponse "Habit not found"
// @Failure 500 {object} handlers.CompleteHabitErrorResponse "Internal server error"
// @Router /habits/{id}/complete [post]
// @Security BearerAuth
func NewCompleteHabitHandler(svc HabitCompleter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CompleteHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CompleteHabitErrorResponse{Error: "Unauthorized"})
			return
		}

		habitID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(CompleteHabitErrorResponse{Error: "Habit not found"})
			return
		}

		var req CompleteHabitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Log.Errorw("failed to decode complete habit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CompleteHabitErrorResponse{Error: "Invalid request body"})
			return
		}

		completionDate := time.Now()
		if req.CompletionDate != nil {
			completionDate = *req.CompletionDate
		}

		entry, err := svc.Complete(ctx, habitID, claims.UserID, completionDate)
		if err != nil {
			if errors.Is(err, services.ErrHabitNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CompleteHabitErrorResponse{Error: "Habit not found"})
				return
			}
			logger.Log.Errorw("failed to complete habit", "habitID", habitID, "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CompleteHabitErrorResponse{Error: "Failed to complete habit"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CompleteHabitResponse{
			Message: "Habit completed",
			Entry:   entry,
		})
	}
}
