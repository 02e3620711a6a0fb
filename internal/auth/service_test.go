package auth

import (
	"testing"
	"time"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"
	apperrors "github.com/Isak-k/Sanbitu-FC/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// stubVerifier is a test double for the user service
type stubVerifier struct {
	user        *models.User
	authErr     error
	verifyErr   error
	verifyCalls int
}

func (s *stubVerifier) Authenticate(email, password string) (*models.User, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return s.user, nil
}

func (s *stubVerifier) VerifyPassword(id uuid.UUID, password string) error {
	s.verifyCalls++
	return s.verifyErr
}

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	verifier    *stubVerifier
	authService *AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.verifier = &stubVerifier{
		user: &models.User{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Email:     "coach@sanbitufc.com",
			FirstName: "Head",
			LastName:  "Coach",
			Role:      models.UserRoleAdmin,
			IsActive:  true,
		},
	}

	service, err := NewAuthService("test-secret", suite.verifier)
	assert.NoError(suite.T(), err)
	suite.authService = service
}

// TestNewAuthServiceRequiresSecret tests that an empty secret is rejected
func (suite *AuthServiceTestSuite) TestNewAuthServiceRequiresSecret() {
	service, err := NewAuthService("", suite.verifier)

	assert.Nil(suite.T(), service)
	assert.Error(suite.T(), err)
}

// TestLogin tests issuing a token pair for valid credentials
func (suite *AuthServiceTestSuite) TestLogin() {
	response, err := suite.authService.Login("coach@sanbitufc.com", "password123")

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response.AccessToken)
	assert.NotEmpty(suite.T(), response.RefreshToken)
	assert.Equal(suite.T(), "Bearer", response.TokenType)
	assert.Equal(suite.T(), int64(3600), response.ExpiresIn)
	assert.Equal(suite.T(), suite.verifier.user.ID, response.User.ID)
	assert.Equal(suite.T(), "admin", response.User.Role)
}

// TestLoginInvalidCredentials tests passing the verifier error through
func (suite *AuthServiceTestSuite) TestLoginInvalidCredentials() {
	suite.verifier.authErr = apperrors.ErrInvalidCredentials

	response, err := suite.authService.Login("coach@sanbitufc.com", "wrong")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestJWTRoundTrip tests that a generated token validates with the same claims
func (suite *AuthServiceTestSuite) TestJWTRoundTrip() {
	token, err := suite.authService.GenerateJWT(suite.verifier.user)
	assert.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateJWT(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.verifier.user.ID.String(), claims.UserID)
	assert.Equal(suite.T(), "coach@sanbitufc.com", claims.Email)
	assert.Equal(suite.T(), "admin", claims.Role)
	assert.Equal(suite.T(), "sanbitu-fc-backend", claims.Issuer)
}

// TestValidateJWTWrongSecret tests rejecting a token signed with another secret
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other, err := NewAuthService("other-secret", suite.verifier)
	assert.NoError(suite.T(), err)

	token, err := other.GenerateJWT(suite.verifier.user)
	assert.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateJWT(token)

	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

// TestValidateJWTGarbage tests rejecting a malformed token
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	claims, err := suite.authService.ValidateJWT("not-a-token")

	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

// TestRefreshRotatesToken tests that refreshing invalidates the old token
func (suite *AuthServiceTestSuite) TestRefreshRotatesToken() {
	login, err := suite.authService.Login("coach@sanbitufc.com", "password123")
	assert.NoError(suite.T(), err)

	refreshed, err := suite.authService.Refresh(login.RefreshToken)

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), refreshed.AccessToken)
	assert.NotEqual(suite.T(), login.RefreshToken, refreshed.RefreshToken)
	assert.Equal(suite.T(), suite.verifier.user.ID, refreshed.User.ID)

	// The old token is gone after rotation
	_, err = suite.authService.Refresh(login.RefreshToken)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestRefreshUnknownToken tests refreshing with a token never issued
func (suite *AuthServiceTestSuite) TestRefreshUnknownToken() {
	response, err := suite.authService.Refresh("unknown-token")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestRefreshExpiredToken tests that an expired refresh token is rejected and purged
func (suite *AuthServiceTestSuite) TestRefreshExpiredToken() {
	suite.authService.refreshTokens["stale"] = &RefreshTokenData{
		UserID:    suite.verifier.user.ID,
		Email:     suite.verifier.user.Email,
		Role:      "admin",
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
	}

	response, err := suite.authService.Refresh("stale")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenExpired)
	assert.NotContains(suite.T(), suite.authService.refreshTokens, "stale")
}

// TestLogout tests that a logged-out refresh token stops working
func (suite *AuthServiceTestSuite) TestLogout() {
	login, err := suite.authService.Login("coach@sanbitufc.com", "password123")
	assert.NoError(suite.T(), err)

	suite.authService.Logout(login.RefreshToken)

	_, err = suite.authService.Refresh(login.RefreshToken)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestReauthenticate tests delegating the password re-check
func (suite *AuthServiceTestSuite) TestReauthenticate() {
	err := suite.authService.Reauthenticate(suite.verifier.user.ID, "password123")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, suite.verifier.verifyCalls)
}

// TestReauthenticateWrongPassword tests passing the verifier error through
func (suite *AuthServiceTestSuite) TestReauthenticateWrongPassword() {
	suite.verifier.verifyErr = apperrors.ErrInvalidCredentials

	err := suite.authService.Reauthenticate(suite.verifier.user.ID, "wrong")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestCleanupExpiredTokens tests removing stale tokens from the store
func (suite *AuthServiceTestSuite) TestCleanupExpiredTokens() {
	login, err := suite.authService.Login("coach@sanbitufc.com", "password123")
	assert.NoError(suite.T(), err)

	suite.authService.refreshTokens["stale"] = &RefreshTokenData{
		UserID:    suite.verifier.user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	suite.authService.CleanupExpiredTokens()

	assert.NotContains(suite.T(), suite.authService.refreshTokens, "stale")
	assert.Contains(suite.T(), suite.authService.refreshTokens, login.RefreshToken)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
