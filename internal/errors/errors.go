package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyRegistered   = errors.New("email already registered")
	ErrRateLimitExceeded        = errors.New("too many OTP requests for this email")
	ErrOtpExpired               = errors.New("OTP has expired, request a new one")
	ErrInvalidOtp               = errors.New("invalid OTP")
	ErrMaxAttemptsExceeded      = errors.New("max OTP attempts exceeded, request a new one")
	ErrSessionExpired           = errors.New("verification session expired")
	ErrVerificationNotCompleted = errors.New("verification not completed, verify OTP first")
	ErrPasswordMismatch         = errors.New("passwords do not match")
	ErrInvalidCredentials       = errors.New("invalid email or password")
	ErrAccountNotActive         = errors.New("user account is not active")
	ErrInvalidToken             = errors.New("invalid refresh token")
	ErrTokenRevokedOrExpired    = errors.New("refresh token is expired or revoked")
)

// RateLimitError carries how long the caller has to wait before the
// fixed window on their email re-opens. Unwraps to ErrRateLimitExceeded.
type RateLimitError struct {
	RetryAfterSeconds int64
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("too many OTP requests for this email, try again in %d seconds", e.RetryAfterSeconds)
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimitExceeded }

// InvalidOtpError reports a wrong code together with the attempts still
// left before the session is destroyed. Unwraps to ErrInvalidOtp.
type InvalidOtpError struct {
	AttemptsRemaining int64
}

func (e *InvalidOtpError) Error() string {
	return fmt.Sprintf("invalid OTP, attempts remaining: %d", e.AttemptsRemaining)
}

func (e *InvalidOtpError) Unwrap() error { return ErrInvalidOtp }
