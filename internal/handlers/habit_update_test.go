package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/jwt"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/services"
)

func TestUpdateHabitHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	habitID := uuid.New()
	tagID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Email: "john@example.com", Username: "john"}

	updatedHabit := &models.Habit{
		HabitDB: models.HabitDB{
			HabitID:     habitID,
			UserID:      userID,
			Name:        "Exercise more",
			Frequency:   "daily",
			TargetCount: 2,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
		Tags: []models.TagDB{{TagID: tagID, Name: "Fitness", Color: "#10B981"}},
	}

	tests := []struct {
		name          string
		habitIDParam  string
		body          string
		tokenSetup    func(m *MockTokener)
		mockSetup     func(m *MockHabitUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name:         "success with tag replace",
			habitIDParam: habitID.String(),
			body:         `{"name":"Exercise more","targetCount":2,"tagIds":["` + tagID.String() + `"]}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			mockSetup: func(m *MockHabitUpdater) {
				m.EXPECT().
					Update(gomock.Any(), habitID, userID, gomock.Any(), gomock.Not(gomock.Nil())).
					DoAndReturn(func(_ context.Context, _, _ uuid.UUID, upd models.HabitUpdate, tagIDs *[]uuid.UUID) (*models.Habit, error) {
						assert.NotNil(t, upd.Name)
						assert.Equal(t, "Exercise more", *upd.Name)
						assert.NotNil(t, upd.TargetCount)
						assert.Equal(t, 2, *upd.TargetCount)
						assert.Nil(t, upd.Frequency)
						assert.Equal(t, []uuid.UUID{tagID}, *tagIDs)
						return updatedHabit, nil
					})
			},
			expectedCode: 200,
		},
		{
			name:         "absent tagIds leaves tags untouched",
			habitIDParam: habitID.String(),
			body:         `{"name":"Exercise more"}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			mockSetup: func(m *MockHabitUpdater) {
				m.EXPECT().
					Update(gomock.Any(), habitID, userID, gomock.Any(), gomock.Nil()).
					Return(updatedHabit, nil)
			},
			expectedCode: 200,
		},
		{
			name:         "explicit empty tagIds clears tags",
			habitIDParam: habitID.String(),
			body:         `{"tagIds":[]}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			mockSetup: func(m *MockHabitUpdater) {
				m.EXPECT().
					Update(gomock.Any(), habitID, userID, gomock.Any(), gomock.Not(gomock.Nil())).
					DoAndReturn(func(_ context.Context, _, _ uuid.UUID, _ models.HabitUpdate, tagIDs *[]uuid.UUID) (*models.Habit, error) {
						assert.Empty(t, *tagIDs)
						return updatedHabit, nil
					})
			},
			expectedCode: 200,
		},
		{
			name:         "missing token",
			habitIDParam: habitID.String(),
			body:         `{}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no auth header"))
			},
			expectedCode:  401,
			expectedError: "Unauthorized",
		},
		{
			name:         "malformed habit id",
			habitIDParam: "not-a-uuid",
			body:         `{}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			expectedCode:  404,
			expectedError: "Habit not found",
		},
		{
			name:         "empty name rejected",
			habitIDParam: habitID.String(),
			body:         `{"name":""}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			expectedCode:  400,
			expectedError: "Name must not be empty",
		},
		{
			name:         "zero target count rejected",
			habitIDParam: habitID.String(),
			body:         `{"targetCount":0}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			expectedCode:  400,
			expectedError: "Target count must be at least 1",
		},
		{
			name:         "habit not found",
			habitIDParam: habitID.String(),
			body:         `{"name":"Exercise more"}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			mockSetup: func(m *MockHabitUpdater) {
				m.EXPECT().
					Update(gomock.Any(), habitID, userID, gomock.Any(), gomock.Nil()).
					Return(nil, services.ErrHabitNotFound)
			},
			expectedCode:  404,
			expectedError: "Habit not found",
		},
		{
			name:         "service error",
			habitIDParam: habitID.String(),
			body:         `{"name":"Exercise more"}`,
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			mockSetup: func(m *MockHabitUpdater) {
				m.EXPECT().
					Update(gomock.Any(), habitID, userID, gomock.Any(), gomock.Nil()).
					Return(nil, errors.New("update failed"))
			},
			expectedCode:  500,
			expectedError: "Failed to update habit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHabitUpdater(ctrl)
			mockTokener := NewMockTokener(ctrl)
			if tt.tokenSetup != nil {
				tt.tokenSetup(mockTokener)
			}
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateHabitHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPut, "/habits/"+tt.habitIDParam, bytes.NewBufferString(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.habitIDParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			var resp UpdateHabitResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Habit updated successfully", resp.Message)
			assert.Equal(t, habitID, resp.Habit.HabitID)
		})
	}
}
