package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name           string
		accessSecret   string
		refreshSecret  string
		accessMinutes  int
		refreshMinutes int
	}{
		{
			name:           "valid parameters",
			accessSecret:   "access-secret-key",
			refreshSecret:  "refresh-secret-key",
			accessMinutes:  60,
			refreshMinutes: 10080,
		},
		{
			name:           "empty secrets",
			accessSecret:   "",
			refreshSecret:  "",
			accessMinutes:  30,
			refreshMinutes: 2880,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.refreshSecret, tt.accessMinutes, tt.refreshMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.accessSecret, ts.AccessTokenSecret)
			assert.Equal(t, tt.refreshSecret, ts.RefreshTokenSecret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, time.Duration(tt.refreshMinutes)*time.Minute, ts.RefreshTokenExpiry)
		})
	}
}

func TestTokenService_Generate(t *testing.T) {
	tests := []struct {
		name           string
		accessSecret   string
		refreshSecret  string
		accessMinutes  int
		refreshMinutes int
		userID         string
		email          string
		role           string
	}{
		{
			name:           "successful token generation",
			accessSecret:   "test-access-secret-key-123",
			refreshSecret:  "test-refresh-secret-key-456",
			accessMinutes:  60,
			refreshMinutes: 10080,
			userID:         "user-123",
			email:          "test@example.com",
			role:           "USER",
		},
		{
			name:           "successful token generation with admin role",
			accessSecret:   "test-access-secret-key-123",
			refreshSecret:  "test-refresh-secret-key-456",
			accessMinutes:  30,
			refreshMinutes: 2880,
			userID:         "admin-456",
			email:          "admin@example.com",
			role:           "ADMIN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.refreshSecret, tt.accessMinutes, tt.refreshMinutes)

			beforeGenerate := time.Now()
			accessToken, refreshToken, expiryTime, err := ts.Generate(tt.userID, tt.email, tt.role)
			afterGenerate := time.Now()

			require.NoError(t, err)
			assert.NotEmpty(t, accessToken)
			assert.NotEmpty(t, refreshToken)
			assert.False(t, expiryTime.IsZero())

			// Verify expiry time is within expected range
			expectedExpiry := beforeGenerate.Add(ts.AccessTokenExpiry)
			assert.True(t, expiryTime.After(expectedExpiry.Add(-time.Second)))
			assert.True(t, expiryTime.Before(afterGenerate.Add(ts.AccessTokenExpiry).Add(time.Second)))

			// Verify access token claims
			accessClaims := &JWTCustomClaims{}
			accessTokenParsed, err := jwt.ParseWithClaims(accessToken, accessClaims, func(token *jwt.Token) (interface{}, error) {
				return []byte(tt.accessSecret), nil
			})
			require.NoError(t, err)
			assert.True(t, accessTokenParsed.Valid)
			assert.Equal(t, tt.userID, accessClaims.Subject)
			assert.Equal(t, tt.email, accessClaims.Email)
			assert.Equal(t, tt.role, accessClaims.Role)

			// Verify refresh token claims: subject only, no email or role
			refreshClaims := &JWTCustomClaims{}
			refreshTokenParsed, err := jwt.ParseWithClaims(refreshToken, refreshClaims, func(token *jwt.Token) (interface{}, error) {
				return []byte(tt.refreshSecret), nil
			})
			require.NoError(t, err)
			assert.True(t, refreshTokenParsed.Valid)
			assert.Equal(t, tt.userID, refreshClaims.Subject)
			assert.Empty(t, refreshClaims.Email)
			assert.Empty(t, refreshClaims.Role)

			assert.True(t, accessClaims.ExpiresAt.Time.After(beforeGenerate))
			assert.True(t, refreshClaims.ExpiresAt.Time.After(accessClaims.ExpiresAt.Time))
		})
	}
}

func TestTokenService_Generate_TokenValidation(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", 60, 10080)

	accessToken, refreshToken, _, err := ts.Generate("test-user-123", "test@example.com", "USER")
	require.NoError(t, err)

	// Both tokens must fail against the wrong secret
	wrongClaims := &JWTCustomClaims{}
	_, err = jwt.ParseWithClaims(accessToken, wrongClaims, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)

	_, err = jwt.ParseWithClaims(refreshToken, wrongClaims, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}

func TestTokenService_VerifyRefreshToken(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", 60, 10080)

	_, refreshToken, _, err := ts.Generate("user-123", "test@example.com", "USER")
	require.NoError(t, err)

	t.Run("valid token returns subject", func(t *testing.T) {
		subject, err := ts.VerifyRefreshToken(refreshToken)

		require.NoError(t, err)
		assert.Equal(t, "user-123", subject)
	})

	t.Run("token signed with another secret fails", func(t *testing.T) {
		other := NewTokenService("test-access-secret", "another-refresh-secret", 60, 10080)
		_, otherToken, _, err := other.Generate("user-123", "test@example.com", "USER")
		require.NoError(t, err)

		subject, err := ts.VerifyRefreshToken(otherToken)

		assert.Error(t, err)
		assert.Empty(t, subject)
	})

	t.Run("access token is not accepted as refresh token", func(t *testing.T) {
		accessToken, _, _, err := ts.Generate("user-123", "test@example.com", "USER")
		require.NoError(t, err)

		subject, err := ts.VerifyRefreshToken(accessToken)

		assert.Error(t, err)
		assert.Empty(t, subject)
	})

	t.Run("expired token fails", func(t *testing.T) {
		expired := NewTokenService("test-access-secret", "test-refresh-secret", 60, -1)
		_, expiredToken, _, err := expired.Generate("user-123", "test@example.com", "USER")
		require.NoError(t, err)

		subject, err := ts.VerifyRefreshToken(expiredToken)

		assert.Error(t, err)
		assert.Empty(t, subject)
	})

	t.Run("garbage input fails", func(t *testing.T) {
		subject, err := ts.VerifyRefreshToken("not-a-jwt")

		assert.Error(t, err)
		assert.Empty(t, subject)
	})
}

func TestTokenService_VerifyAccessToken(t *testing.T) {
	ts := NewTokenService("test-access-secret", "test-refresh-secret", 60, 10080)

	accessToken, refreshToken, _, err := ts.Generate("user-123", "test@example.com", "ADMIN")
	require.NoError(t, err)

	t.Run("valid token returns claims", func(t *testing.T) {
		claims, err := ts.VerifyAccessToken(accessToken)

		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject)
		assert.Equal(t, "test@example.com", claims.Email)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("refresh token is not accepted as access token", func(t *testing.T) {
		claims, err := ts.VerifyAccessToken(refreshToken)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired token fails", func(t *testing.T) {
		expired := NewTokenService("test-access-secret", "test-refresh-secret", -1, 10080)
		expiredToken, _, err := expired.GenerateAccessToken("user-123", "test@example.com", "USER")
		require.NoError(t, err)

		claims, err := ts.VerifyAccessToken(expiredToken)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
