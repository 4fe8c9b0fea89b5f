package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dashivam06/corerouter/config"
	"github.com/dashivam06/corerouter/internal/auth/domain"
	"github.com/dashivam06/corerouter/internal/auth/dto"
	autherror "github.com/dashivam06/corerouter/internal/errors"
	"github.com/dashivam06/corerouter/pkg/constant"
)

// UserService sequences the registration and login flows on top of the
// OTP lifecycle, the token signer and the durable ledger.
type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	otp    OtpManager
	cfg    *config.Config
	log    *zap.Logger
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, otp OtpManager,
	cfg *config.Config, log *zap.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		otp:    otp,
		cfg:    cfg,
		log:    log,
	}
}

// RequestOtp is step 1 of registration: reject already-registered
// emails, then open a verification session.
func (s *UserService) RequestOtp(ctx context.Context, email string) (*dto.RequestOtpResponse, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.log.Warn("OTP request for registered email", zap.String("email", email))
		return nil, autherror.ErrEmailAlreadyRegistered
	}

	verificationID, err := s.otp.RequestOtp(ctx, email)
	if err != nil {
		return nil, err
	}

	return &dto.RequestOtpResponse{
		VerificationID: verificationID,
		Message:        "OTP sent to " + email,
		TTLMinutes:     s.cfg.OtpTTLMin,
	}, nil
}

// VerifyOtp is step 2: prove control of the email. No user record is
// created yet.
func (s *UserService) VerifyOtp(ctx context.Context, verificationID, otp string) (*dto.VerifyOtpResponse, error) {
	email, err := s.otp.VerifyOtp(ctx, verificationID, otp)
	if err != nil {
		return nil, err
	}

	s.log.Info("registration OTP verified",
		zap.String("verification_id", verificationID),
		zap.String("email", email))

	return &dto.VerifyOtpResponse{
		VerificationID:              verificationID,
		Verified:                    true,
		ProfileCompletionTTLMinutes: s.cfg.ProfileCompletionTTLMin,
		Message:                     fmt.Sprintf("OTP verified successfully. Complete your profile within %d minutes.", s.cfg.ProfileCompletionTTLMin),
	}, nil
}

// CompleteRegistration is step 3: create the user behind a verified
// session and log them in. Consuming the session makes a second call
// with the same verification ID fail.
func (s *UserService) CompleteRegistration(ctx context.Context, input dto.FinalRegisterInput) (*dto.TokenResponse, error) {
	if input.Password != input.ConfirmPassword {
		return nil, autherror.ErrPasswordMismatch
	}

	verified, err := s.otp.IsVerified(ctx, input.VerificationID)
	if err != nil {
		return nil, err
	}
	if !verified {
		s.log.Warn("registration attempted without verification",
			zap.String("verification_id", input.VerificationID))
		return nil, autherror.ErrVerificationNotCompleted
	}

	email, found, err := s.otp.Email(ctx, input.VerificationID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, autherror.ErrSessionExpired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:              uuid.NewString(),
		Email:           email,
		FullName:        input.FullName,
		PasswordHash:    string(hashedPassword),
		ProfileImage:    input.ProfileImage,
		EmailSubscribed: input.EmailSubscribed,
		Status:          domain.UserStatusActive,
		Role:            constant.DefaultUserRole,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	response, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	// The session is consumed; a failed delete only delays reclamation
	// until the TTL elapses.
	if err := s.otp.Cleanup(ctx, input.VerificationID); err != nil {
		s.log.Warn("failed to clean up verification session",
			zap.String("verification_id", input.VerificationID),
			zap.Error(err))
	}

	s.log.Info("user registered", zap.String("user_id", user.ID))

	return response, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidCredentials
	}

	if user.Status != domain.UserStatusActive {
		s.log.Warn("login on inactive account",
			zap.String("user_id", user.ID),
			zap.String("status", string(user.Status)))
		return nil, autherror.ErrAccountNotActive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID))

	return s.issueTokens(ctx, user)
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated and no new ledger row is written.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	userID, err := s.validateRefresh(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidToken
	}

	accessToken, _, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: input.RefreshToken,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokens.GetAccessTokenExpiry().Seconds()),
	}, nil
}

// Logout revokes the refresh token's ledger row. Any access token
// already issued stays valid until its own short expiry.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	token, err := s.repo.GetUserTokenByValue(ctx, refreshToken)
	if err != nil {
		return err
	}
	if token == nil {
		return autherror.ErrInvalidToken
	}

	if err := s.repo.RevokeUserToken(ctx, token.ID); err != nil {
		return err
	}

	s.log.Info("refresh token revoked", zap.String("user_id", token.UserID))

	return nil
}

// ChangePassword re-hashes after checking the old password.
func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		return autherror.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		return err
	}

	s.log.Info("password changed", zap.String("user_id", userID))

	return nil
}

// validateRefresh cross-checks the durable ledger row and the token's
// own signature; both must agree before the token is trusted.
func (s *UserService) validateRefresh(ctx context.Context, refreshToken string) (string, error) {
	token, err := s.repo.GetUserTokenByValue(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if token == nil {
		return "", autherror.ErrInvalidToken
	}

	if token.Type != domain.TokenTypeRefresh {
		return "", autherror.ErrInvalidToken
	}

	if token.Revoked || time.Now().After(token.ExpiresAt) {
		return "", autherror.ErrTokenRevokedOrExpired
	}

	subject, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil || subject != token.UserID {
		return "", autherror.ErrInvalidToken
	}

	return token.UserID, nil
}

// issueTokens mints an access/refresh pair and records both in the
// durable ledger.
func (s *UserService) issueTokens(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, accessExpiresAt, err := s.tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	accessRecord := &domain.UserToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Type:      domain.TokenTypeAccess,
		Value:     accessToken,
		IssuedAt:  now,
		ExpiresAt: accessExpiresAt,
		Revoked:   false,
	}
	if err := s.repo.StoreUserToken(ctx, accessRecord); err != nil {
		return nil, err
	}

	refreshRecord := &domain.UserToken{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Type:      domain.TokenTypeRefresh,
		Value:     refreshToken,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.tokens.GetRefreshTokenExpiry()),
		Revoked:   false,
	}
	if err := s.repo.StoreUserToken(ctx, refreshRecord); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokens.GetAccessTokenExpiry().Seconds()),
	}, nil
}
