package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Isak-k/Sanbitu-FC/internal/database/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// AuthMiddlewareTestSuite defines the test suite for AuthMiddleware
type AuthMiddlewareTestSuite struct {
	suite.Suite
	authService *AuthService
	middleware  *AuthMiddleware
	router      *gin.Engine
	user        *models.User
}

// SetupTest sets up the test suite
func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.user = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "coach@sanbitufc.com",
		Role:      models.UserRoleAdmin,
		IsActive:  true,
	}

	service, err := NewAuthService("test-secret", &stubVerifier{user: suite.user})
	assert.NoError(suite.T(), err)
	suite.authService = service
	suite.middleware = NewAuthMiddleware(service)

	suite.router = gin.New()
	suite.router.GET("/protected", suite.middleware.RequireAuth(), func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	suite.router.GET("/admin", suite.middleware.RequireAuth(), suite.middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (suite *AuthMiddlewareTestSuite) request(path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestRequireAuthMissingHeader tests rejecting requests without a header
func (suite *AuthMiddlewareTestSuite) TestRequireAuthMissingHeader() {
	recorder := suite.request("/protected", "")

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestRequireAuthBadHeaderFormat tests rejecting a non-Bearer header
func (suite *AuthMiddlewareTestSuite) TestRequireAuthBadHeaderFormat() {
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestRequireAuthInvalidToken tests rejecting a bad token
func (suite *AuthMiddlewareTestSuite) TestRequireAuthInvalidToken() {
	recorder := suite.request("/protected", "not-a-token")

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestRequireAuthValidToken tests that a valid token sets the user context
func (suite *AuthMiddlewareTestSuite) TestRequireAuthValidToken() {
	token, err := suite.authService.GenerateJWT(suite.user)
	assert.NoError(suite.T(), err)

	recorder := suite.request("/protected", token)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), suite.user.ID.String())
}

// TestRequireAdminAllowsAdmin tests that administrators pass the role check
func (suite *AuthMiddlewareTestSuite) TestRequireAdminAllowsAdmin() {
	token, err := suite.authService.GenerateJWT(suite.user)
	assert.NoError(suite.T(), err)

	recorder := suite.request("/admin", token)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestRequireAdminRejectsMember tests that members get a 403
func (suite *AuthMiddlewareTestSuite) TestRequireAdminRejectsMember() {
	member := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "fan@sanbitufc.com",
		Role:      models.UserRoleMember,
	}
	token, err := suite.authService.GenerateJWT(member)
	assert.NoError(suite.T(), err)

	recorder := suite.request("/admin", token)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestAuthMiddlewareTestSuite runs the test suite
func TestAuthMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
