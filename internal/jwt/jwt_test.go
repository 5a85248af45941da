package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New("test-secret", time.Hour)
	ctx := context.Background()

	userID := uuid.New()
	token, err := j.Generate(ctx, userID, "john@example.com", "john")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "john@example.com", claims.Email)
	assert.Equal(t, "john", claims.Username)
}

func TestJWT_GetClaims_WrongSecret(t *testing.T) {
	ctx := context.Background()

	j := New("test-secret", time.Hour)
	token, err := j.Generate(ctx, uuid.New(), "john@example.com", "john")
	assert.NoError(t, err)

	other := New("other-secret", time.Hour)
	claims, err := other.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_GetClaims_Expired(t *testing.T) {
	ctx := context.Background()

	j := New("test-secret", -time.Minute)
	token, err := j.Generate(ctx, uuid.New(), "john@example.com", "john")
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_GetClaims_Garbage(t *testing.T) {
	j := New("test-secret", time.Hour)

	claims, err := j.GetClaims(context.Background(), "not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_Validate(t *testing.T) {
	ctx := context.Background()
	j := New("test-secret", time.Hour)

	token, err := j.Generate(ctx, uuid.New(), "john@example.com", "john")
	assert.NoError(t, err)

	assert.NoError(t, j.Validate(ctx, token))
	assert.Error(t, j.Validate(ctx, "garbage"))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Hour)
	ctx := context.Background()

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{
			name:      "valid bearer header",
			header:    "Bearer sometoken",
			wantToken: "sometoken",
		},
		{
			name:      "lowercase scheme",
			header:    "bearer sometoken",
			wantToken: "sometoken",
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: true,
		},
		{
			name:    "no token part",
			header:  "Bearer",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
