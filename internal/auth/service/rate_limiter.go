package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dashivam06/corerouter/internal/auth/domain"
	autherror "github.com/dashivam06/corerouter/internal/errors"
	"github.com/dashivam06/corerouter/pkg/constant"
)

// RateLimiter caps OTP requests per email with a fixed-window counter
// kept in the keyed store.
type RateLimiter struct {
	store        domain.KeyedStore
	maxPerWindow int64
	window       time.Duration
	log          *zap.Logger
}

func NewRateLimiter(store domain.KeyedStore, maxPerWindow int, window time.Duration, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		store:        store,
		maxPerWindow: int64(maxPerWindow),
		window:       window,
		log:          log,
	}
}

// Admit checks the window counter for email and records this request.
// When the budget is spent it returns a RateLimitError carrying the
// seconds left on the window key.
func (rl *RateLimiter) Admit(ctx context.Context, email string) error {
	key := constant.OtpRequestCountPrefix + email

	value, found, err := rl.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("rate limit read: %w", err)
	}

	var count int64
	if found {
		count, err = strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("rate limit counter %q not numeric: %w", value, err)
		}
	}

	if count >= rl.maxPerWindow {
		ttl, err := rl.store.TTL(ctx, key)
		if err != nil {
			return fmt.Errorf("rate limit ttl: %w", err)
		}

		rl.log.Warn("OTP rate limit exceeded",
			zap.String("email", email),
			zap.Int64("count", count),
			zap.Int64("max", rl.maxPerWindow))

		return &autherror.RateLimitError{RetryAfterSeconds: int64(ttl.Seconds())}
	}

	// Seeding and incrementing are separate round trips: concurrent first
	// requests for the same email can each seed the key and reset the
	// window TTL, under-counting that first window. Accepted.
	if count == 0 {
		if err := rl.store.Set(ctx, key, "0", rl.window); err != nil {
			return fmt.Errorf("rate limit seed: %w", err)
		}
	}

	newCount, err := rl.store.Increment(ctx, key)
	if err != nil {
		return fmt.Errorf("rate limit increment: %w", err)
	}

	rl.log.Debug("OTP request admitted",
		zap.String("email", email),
		zap.Int64("count", newCount),
		zap.Int64("remaining", rl.maxPerWindow-newCount))

	return nil
}
