package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/dashivam06/corerouter/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_keyed_store.go -package=mocks github.com/dashivam06/corerouter/internal/auth/domain KeyedStore

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	StoreUserToken(ctx context.Context, token *UserToken) error
	GetUserTokenByValue(ctx context.Context, value string) (*UserToken, error)
	RevokeUserToken(ctx context.Context, id string) error
}

// KeyedStore is the ephemeral store behind the verification lifecycle.
// Get reports absence through the bool, never through the error: an
// elapsed TTL and a missing key are indistinguishable on purpose, while
// an unreachable store always surfaces as a non-nil error.
type KeyedStore interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
	Increment(ctx context.Context, key string) (int64, error)
	TTL(ctx context.Context, key string) (time.Duration, error)
	Enqueue(ctx context.Context, queue, payload string) error
}
