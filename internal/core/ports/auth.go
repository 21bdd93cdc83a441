package ports

import (
	"context"
	"time"

	"github.com/hireproof/backcheck/internal/core/domain"
)

// AuthService implements signup, signin, and token revocation.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, error)
	Signin(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
}

// UserRepository defines persistence operations for API users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenDenylist records revoked tokens until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
