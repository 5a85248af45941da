package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/jwt"
	"github.com/vkuznetsov2018/habit-tracker-api/internal/models"
)

func TestListHabitsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID, Email: "john@example.com", Username: "john"}

	habits := []models.Habit{
		{
			HabitDB: models.HabitDB{
				HabitID:     uuid.New(),
				UserID:      userID,
				Name:        "Meditate",
				Frequency:   "daily",
				TargetCount: 1,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			},
			Tags: []models.TagDB{{TagID: uuid.New(), Name: "Mindfulness", Color: "#8B5CF6"}},
		},
		{
			HabitDB: models.HabitDB{
				HabitID:     uuid.New(),
				UserID:      userID,
				Name:        "Run",
				Frequency:   "weekly",
				TargetCount: 3,
				CreatedAt:   time.Now().Add(-time.Hour),
				UpdatedAt:   time.Now().Add(-time.Hour),
			},
			Tags: []models.TagDB{},
		},
	}

	tests := []struct {
		name          string
		tokenSetup    func(m *MockTokener)
		mockSetup     func(m *MockHabitLister)
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "success",
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			mockSetup: func(m *MockHabitLister) {
				m.EXPECT().List(gomock.Any(), userID).Return(habits, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "empty list",
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			mockSetup: func(m *MockHabitLister) {
				m.EXPECT().List(gomock.Any(), userID).Return([]models.Habit{}, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "missing token",
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no auth header"))
			},
			expectedCode:  401,
			expectedError: "Unauthorized",
		},
		{
			name: "service error",
			tokenSetup: func(m *MockTokener) {
				m.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				m.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			mockSetup: func(m *MockHabitLister) {
				m.EXPECT().List(gomock.Any(), userID).Return(nil, errors.New("query failed"))
			},
			expectedCode:  500,
			expectedError: "Failed to get habits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockHabitLister(ctrl)
			mockTokener := NewMockTokener(ctrl)
			if tt.tokenSetup != nil {
				tt.tokenSetup(mockTokener)
			}
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListHabitsHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/habits", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp["error"])
				return
			}

			var resp ListHabitsResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp.Habits, tt.expectedLen)
		})
	}
}
