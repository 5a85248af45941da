package handlers

import (
	"context"
	"net/http"

	"github.com/vkuznetsov2018/habit-tracker-api/internal/jwt"
)

// Tokener defines the token operations the protected handlers need to
// resolve the authenticated user.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}
