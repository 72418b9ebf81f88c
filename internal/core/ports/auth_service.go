package ports

import (
	"context"

	"github.com/todoapp/task-manager/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenVerifier resolves a session token to the user ID it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}
