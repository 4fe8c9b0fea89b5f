package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/dashivam06/corerouter/config"
	"github.com/dashivam06/corerouter/internal/auth/domain"
	"github.com/dashivam06/corerouter/internal/auth/dto"
	"github.com/dashivam06/corerouter/internal/auth/handler"
	"github.com/dashivam06/corerouter/internal/auth/service"
	autherror "github.com/dashivam06/corerouter/internal/errors"
	"github.com/dashivam06/corerouter/internal/mocks"
)

type handlerFixture struct {
	app              *fiber.App
	mockRepo         *mocks.MockUserRepository
	mockTokenService *mocks.MockTokenGenerator
	mockOtpManager   *mocks.MockOtpManager
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	mockOtpManager := mocks.NewMockOtpManager(ctrl)
	cfg := &config.Config{
		OtpTTLMin:               5,
		ProfileCompletionTTLMin: 20,
	}

	userService := service.NewUserService(mockRepo, mockTokenService, mockOtpManager, cfg, zap.NewNop())
	authHandler := handler.NewAuthHandler(userService, mockTokenService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	return &handlerFixture{
		app:              app,
		mockRepo:         mockRepo,
		mockTokenService: mockTokenService,
		mockOtpManager:   mockOtpManager,
	}
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestRequestOtp(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		f.mockRepo.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
		f.mockOtpManager.EXPECT().RequestOtp(gomock.Any(), "new@example.com").Return("verification-id-1", nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/request-otp",
			dto.RequestOtpInput{Email: "new@example.com"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "verification-id-1", body["verification_id"])
		assert.Equal(t, float64(5), body["ttl_minutes"])
	})

	t.Run("invalid email", func(t *testing.T) {
		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/request-otp",
			dto.RequestOtpInput{Email: "not-an-email"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("email already registered", func(t *testing.T) {
		f.mockRepo.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").
			Return(&domain.User{ID: "user-1", Email: "taken@example.com"}, nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/request-otp",
			dto.RequestOtpInput{Email: "taken@example.com"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("rate limited", func(t *testing.T) {
		f.mockRepo.EXPECT().GetByEmail(gomock.Any(), "hot@example.com").Return(nil, nil)
		f.mockOtpManager.EXPECT().RequestOtp(gomock.Any(), "hot@example.com").
			Return("", &autherror.RateLimitError{RetryAfterSeconds: 1800})

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/request-otp",
			dto.RequestOtpInput{Email: "hot@example.com"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "1800", resp.Header.Get(fiber.HeaderRetryAfter))

		body := decodeBody(t, resp)
		assert.Equal(t, float64(1800), body["retry_after_seconds"])
	})

	t.Run("store outage maps to service unavailable", func(t *testing.T) {
		f.mockRepo.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, errors.New("connection refused"))

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/request-otp",
			dto.RequestOtpInput{Email: "new@example.com"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

		// Internals never leak to the caller
		body := decodeBody(t, resp)
		assert.Equal(t, "service temporarily unavailable", body["error"])
	})
}

func TestVerifyOtp(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		f.mockOtpManager.EXPECT().VerifyOtp(gomock.Any(), "verification-id-1", "123456").
			Return("new@example.com", nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/verify-otp",
			dto.VerifyOtpInput{VerificationID: "verification-id-1", Otp: "123456"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, true, body["verified"])
		assert.Equal(t, float64(20), body["profile_completion_ttl_minutes"])
	})

	t.Run("wrong code carries attempts remaining", func(t *testing.T) {
		f.mockOtpManager.EXPECT().VerifyOtp(gomock.Any(), "verification-id-1", "000000").
			Return("", &autherror.InvalidOtpError{AttemptsRemaining: 2})

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/verify-otp",
			dto.VerifyOtpInput{VerificationID: "verification-id-1", Otp: "000000"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, float64(2), body["attempts_remaining"])
	})

	t.Run("expired session", func(t *testing.T) {
		f.mockOtpManager.EXPECT().VerifyOtp(gomock.Any(), "stale-id", "123456").
			Return("", autherror.ErrOtpExpired)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/verify-otp",
			dto.VerifyOtpInput{VerificationID: "stale-id", Otp: "123456"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing otp", func(t *testing.T) {
		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/verify-otp",
			dto.VerifyOtpInput{VerificationID: "verification-id-1"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRegister(t *testing.T) {
	f := newHandlerFixture(t)

	input := dto.FinalRegisterInput{
		VerificationID:  "verification-id-1",
		FullName:        "Test User",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	t.Run("success", func(t *testing.T) {
		f.mockOtpManager.EXPECT().IsVerified(gomock.Any(), input.VerificationID).Return(true, nil)
		f.mockOtpManager.EXPECT().Email(gomock.Any(), input.VerificationID).Return("new@example.com", true, nil)
		f.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.mockTokenService.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("access-token", "refresh-token", time.Now().Add(time.Hour), nil)
		f.mockRepo.EXPECT().StoreUserToken(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.mockTokenService.EXPECT().GetRefreshTokenExpiry().Return(7 * 24 * time.Hour)
		f.mockTokenService.EXPECT().GetAccessTokenExpiry().Return(time.Hour)
		f.mockOtpManager.EXPECT().Cleanup(gomock.Any(), input.VerificationID).Return(nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/register", input))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "access-token", body["access_token"])
		assert.Equal(t, "refresh-token", body["refresh_token"])
		assert.Equal(t, "Bearer", body["token_type"])
	})

	t.Run("bad request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader([]byte("{invalid-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("short password", func(t *testing.T) {
		short := input
		short.Password = "short"
		short.ConfirmPassword = "short"

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/register", short))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("password mismatch", func(t *testing.T) {
		mismatched := input
		mismatched.ConfirmPassword = "password456"

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/register", mismatched))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("verification not completed", func(t *testing.T) {
		f.mockOtpManager.EXPECT().IsVerified(gomock.Any(), input.VerificationID).Return(false, nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/register", input))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	f := newHandlerFixture(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user := &domain.User{
			ID:           "user-123",
			Email:        "test@example.com",
			PasswordHash: string(hashed),
			Status:       domain.UserStatusActive,
			Role:         "USER",
		}

		f.mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		f.mockTokenService.EXPECT().Generate(user.ID, user.Email, user.Role).
			Return("access-token", "refresh-token", time.Now().Add(time.Hour), nil)
		f.mockRepo.EXPECT().StoreUserToken(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.mockTokenService.EXPECT().GetRefreshTokenExpiry().Return(7 * 24 * time.Hour)
		f.mockTokenService.EXPECT().GetAccessTokenExpiry().Return(time.Hour)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/login",
			dto.LoginInput{Email: user.Email, Password: "password123"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		f.mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/login",
			dto.LoginInput{Email: "ghost@example.com", Password: "password123"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong password", func(t *testing.T) {
		user := &domain.User{
			ID:           "user-123",
			Email:        "test@example.com",
			PasswordHash: string(hashed),
			Status:       domain.UserStatusActive,
		}

		f.mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/login",
			dto.LoginInput{Email: user.Email, Password: "wrong-password"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("suspended account", func(t *testing.T) {
		user := &domain.User{
			ID:     "user-123",
			Email:  "test@example.com",
			Status: domain.UserStatusSuspended,
		}

		f.mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/login",
			dto.LoginInput{Email: user.Email, Password: "password123"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("bad request - invalid json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader([]byte("{invalid-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := f.app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRefreshHandler(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		ledgerRow := &domain.UserToken{
			ID:        "token-id-1",
			UserID:    "user-123",
			Type:      domain.TokenTypeRefresh,
			Value:     "stored-refresh-token",
			ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		user := &domain.User{ID: "user-123", Email: "test@example.com", Role: "USER"}

		f.mockRepo.EXPECT().GetUserTokenByValue(gomock.Any(), "stored-refresh-token").Return(ledgerRow, nil)
		f.mockTokenService.EXPECT().VerifyRefreshToken("stored-refresh-token").Return("user-123", nil)
		f.mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)
		f.mockTokenService.EXPECT().GenerateAccessToken(user.ID, user.Email, user.Role).
			Return("new-access-token", time.Now().Add(time.Hour), nil)
		f.mockTokenService.EXPECT().GetAccessTokenExpiry().Return(time.Hour)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/refresh",
			dto.RefreshInput{RefreshToken: "stored-refresh-token"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "new-access-token", body["access_token"])
		assert.Equal(t, "stored-refresh-token", body["refresh_token"])
	})

	t.Run("revoked token", func(t *testing.T) {
		ledgerRow := &domain.UserToken{
			ID:        "token-id-1",
			UserID:    "user-123",
			Type:      domain.TokenTypeRefresh,
			Value:     "revoked-token",
			ExpiresAt: time.Now().Add(24 * time.Hour),
			Revoked:   true,
		}

		f.mockRepo.EXPECT().GetUserTokenByValue(gomock.Any(), "revoked-token").Return(ledgerRow, nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/refresh",
			dto.RefreshInput{RefreshToken: "revoked-token"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing token", func(t *testing.T) {
		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/refresh", dto.RefreshInput{}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	f := newHandlerFixture(t)

	t.Run("success", func(t *testing.T) {
		ledgerRow := &domain.UserToken{
			ID:     "token-id-1",
			UserID: "user-123",
			Type:   domain.TokenTypeRefresh,
			Value:  "stored-refresh-token",
		}

		f.mockRepo.EXPECT().GetUserTokenByValue(gomock.Any(), "stored-refresh-token").Return(ledgerRow, nil)
		f.mockRepo.EXPECT().RevokeUserToken(gomock.Any(), "token-id-1").Return(nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/logout",
			dto.RefreshInput{RefreshToken: "stored-refresh-token"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown token", func(t *testing.T) {
		f.mockRepo.EXPECT().GetUserTokenByValue(gomock.Any(), "unknown-token").Return(nil, nil)

		resp, err := f.app.Test(jsonRequest(t, "POST", "/api/v1/auth/logout",
			dto.RefreshInput{RefreshToken: "unknown-token"}))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
