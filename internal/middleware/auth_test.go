package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatewayToken builds an unsigned JWT the way the gateway hands them over:
// only the claims segment is ever read.
func gatewayToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)
	return header + "." + body + ".unverified"
}

func TestExtractClaims(t *testing.T) {
	token := gatewayToken(t, map[string]interface{}{
		"sub":                "user-123",
		"preferred_username": "maria",
	})

	claims, err := extractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "maria", claims.PreferredUsername)
}

func TestExtractClaims_InvalidToken(t *testing.T) {
	_, err := extractClaims("not-a-jwt")
	assert.Error(t, err)

	_, err = extractClaims("a.!!!.c")
	assert.Error(t, err)
}

func TestSessionID_GuestFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, models.GuestID, SessionID(c))

	c.Set("claims", &models.JWTClaims{Subject: "user-123"})
	assert.Equal(t, "user-123", SessionID(c))
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/whoami", OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": SessionID(c)})
	})

	// Anonymous requests pass through as the guest.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), models.GuestID)

	// A bearer token resolves to its subject.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+gatewayToken(t, map[string]interface{}{"sub": "user-123"}))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
}

func TestAuthMiddleware_RequiresHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/private", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Basic abc")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	original := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:  "test-secret",
		AdminGroup: "exegese-admin",
	}
	defer func() { config.AppConfig = original }()

	router := gin.New()
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString("admin_user")})
	})

	token, err := IssueAdminToken("fernando")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fernando")
}

func TestRequireAdmin_RejectsMissingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	original := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:  "test-secret",
		AdminGroup: "exegese-admin",
	}
	defer func() { config.AppConfig = original }()

	claims := adminTokenClaims{
		Username: "maria",
		Roles:    []string{"viewer"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router := gin.New()
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdmin_RejectsBadSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	original := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:  "test-secret",
		AdminGroup: "exegese-admin",
	}
	defer func() { config.AppConfig = original }()

	router := gin.New()
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+gatewayToken(t, map[string]interface{}{
		"preferred_username": "maria",
		"roles":              []string{"exegese-admin"},
	}))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
