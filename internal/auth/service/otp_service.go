package service

//go:generate mockgen -destination=../../mocks/mock_otp_manager.go -package=mocks github.com/dashivam06/corerouter/internal/auth/service OtpManager

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dashivam06/corerouter/config"
	"github.com/dashivam06/corerouter/internal/auth/domain"
	"github.com/dashivam06/corerouter/internal/auth/dto"
	autherror "github.com/dashivam06/corerouter/internal/errors"
	"github.com/dashivam06/corerouter/pkg/constant"
)

type OtpManager interface {
	RequestOtp(ctx context.Context, email string) (string, error)
	VerifyOtp(ctx context.Context, verificationID, otp string) (string, error)
	IsVerified(ctx context.Context, verificationID string) (bool, error)
	Email(ctx context.Context, verificationID string) (string, bool, error)
	Cleanup(ctx context.Context, verificationID string) error
}

// OtpService owns the verification session lifecycle. A session is the
// set of keys sharing one verification ID; an elapsed TTL leaves no
// stored trace, so "expired" and "never existed" read the same.
type OtpService struct {
	store                domain.KeyedStore
	limiter              *RateLimiter
	otpLength            int
	otpTTL               time.Duration
	maxAttempts          int64
	profileCompletionTTL time.Duration
	log                  *zap.Logger
}

var _ OtpManager = (*OtpService)(nil)

func NewOtpService(store domain.KeyedStore, limiter *RateLimiter, cfg *config.Config, log *zap.Logger) *OtpService {
	return &OtpService{
		store:                store,
		limiter:              limiter,
		otpLength:            cfg.OtpLength,
		otpTTL:               time.Duration(cfg.OtpTTLMin) * time.Minute,
		maxAttempts:          int64(cfg.OtpMaxAttempts),
		profileCompletionTTL: time.Duration(cfg.ProfileCompletionTTLMin) * time.Minute,
		log:                  log,
	}
}

// RequestOtp opens a verification session for email and hands the code
// off to the mail queue. It returns the caller-facing verification ID.
func (s *OtpService) RequestOtp(ctx context.Context, email string) (string, error) {
	if err := s.limiter.Admit(ctx, email); err != nil {
		return "", err
	}

	verificationID := uuid.NewString()

	code, err := generateOtp(s.otpLength)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}

	if err := s.store.Set(ctx, constant.OtpKeyPrefix+verificationID, code, s.otpTTL); err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, constant.VerificationEmailPrefix+verificationID, email, s.otpTTL); err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, constant.OtpAttemptsPrefix+verificationID, "0", s.otpTTL); err != nil {
		return "", err
	}

	if err := s.enqueueOtpMail(ctx, email, code); err != nil {
		return "", err
	}

	s.log.Info("OTP requested",
		zap.String("verification_id", verificationID),
		zap.String("email", email))

	return verificationID, nil
}

// VerifyOtp compares the supplied code against the stored one. On a
// match the OTP is unconditionally destroyed and the session is marked
// verified for the profile-completion window; a replay with the correct
// code therefore fails ErrOtpExpired.
func (s *OtpService) VerifyOtp(ctx context.Context, verificationID, otp string) (string, error) {
	otpKey := constant.OtpKeyPrefix + verificationID
	emailKey := constant.VerificationEmailPrefix + verificationID
	attemptsKey := constant.OtpAttemptsPrefix + verificationID

	attemptsValue, found, err := s.store.Get(ctx, attemptsKey)
	if err != nil {
		return "", err
	}

	var attempts int64
	if found {
		attempts, err = strconv.ParseInt(attemptsValue, 10, 64)
		if err != nil {
			return "", fmt.Errorf("attempts counter %q not numeric: %w", attemptsValue, err)
		}
	}

	if attempts >= s.maxAttempts {
		s.log.Warn("max OTP attempts exceeded", zap.String("verification_id", verificationID))

		// The session is dead either way; reclaim the keys early.
		for _, key := range []string{otpKey, attemptsKey, emailKey} {
			if err := s.store.Delete(ctx, key); err != nil {
				return "", err
			}
		}

		return "", autherror.ErrMaxAttemptsExceeded
	}

	storedOtp, found, err := s.store.Get(ctx, otpKey)
	if err != nil {
		return "", err
	}
	if !found {
		s.log.Warn("OTP not found or expired", zap.String("verification_id", verificationID))
		return "", autherror.ErrOtpExpired
	}

	if storedOtp != otp {
		if _, err := s.store.Increment(ctx, attemptsKey); err != nil {
			return "", err
		}

		remaining := s.maxAttempts - attempts - 1
		s.log.Warn("invalid OTP attempt",
			zap.String("verification_id", verificationID),
			zap.Int64("attempts_remaining", remaining))

		return "", &autherror.InvalidOtpError{AttemptsRemaining: remaining}
	}

	email, found, err := s.store.Get(ctx, emailKey)
	if err != nil {
		return "", err
	}
	if !found {
		// Should not happen while the OTP key existed; the keys share a TTL.
		s.log.Error("email missing for live OTP", zap.String("verification_id", verificationID))
		return "", autherror.ErrSessionExpired
	}

	if err := s.store.Set(ctx, constant.VerifiedPrefix+verificationID, "true", s.profileCompletionTTL); err != nil {
		return "", err
	}

	// Single use: the code cannot be replayed once matched.
	if err := s.store.Delete(ctx, otpKey); err != nil {
		return "", err
	}
	if err := s.store.Delete(ctx, attemptsKey); err != nil {
		return "", err
	}

	s.log.Info("OTP verified", zap.String("verification_id", verificationID))

	return email, nil
}

// IsVerified reports whether the session passed OTP verification and is
// still inside its profile-completion window.
func (s *OtpService) IsVerified(ctx context.Context, verificationID string) (bool, error) {
	value, found, err := s.store.Get(ctx, constant.VerifiedPrefix+verificationID)
	if err != nil {
		return false, err
	}

	return found && value == "true", nil
}

// Email returns the address the session was opened for.
func (s *OtpService) Email(ctx context.Context, verificationID string) (string, bool, error) {
	return s.store.Get(ctx, constant.VerificationEmailPrefix+verificationID)
}

// Cleanup removes every key of the session, including defensive deletes
// of keys a normal flow already removed. Deleting absent keys is a
// no-op, so calling it twice is harmless.
func (s *OtpService) Cleanup(ctx context.Context, verificationID string) error {
	keys := []string{
		constant.OtpKeyPrefix + verificationID,
		constant.VerificationEmailPrefix + verificationID,
		constant.VerifiedPrefix + verificationID,
		constant.OtpAttemptsPrefix + verificationID,
	}

	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}

	s.log.Debug("verification session cleaned up", zap.String("verification_id", verificationID))

	return nil
}

func (s *OtpService) enqueueOtpMail(ctx context.Context, email, code string) error {
	payload, err := json.Marshal(dto.OtpMailPayload{
		Email:         email,
		Otp:           code,
		Type:          constant.OtpMailType,
		Timestamp:     time.Now().UnixMilli(),
		OtpTTLMinutes: int(s.otpTTL.Minutes()),
	})
	if err != nil {
		return fmt.Errorf("marshal otp mail payload: %w", err)
	}

	return s.store.Enqueue(ctx, constant.EmailQueueName, string(payload))
}

func generateOtp(length int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", length, n), nil
}
