package middleware

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/config"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/models"
	"github.com/fernandodaraujo10-blip/Exegese-Pura-e-Simples/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ErrAccessDenied is returned when access is denied
var ErrAccessDenied = fmt.Errorf("access denied")

// AuthMiddleware extracts JWT claims from the request. The token is already
// validated by the gateway in front of the API; only the claims are read.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := extractClaims(parts[1])
		if err != nil {
			observability.Logger().Error("failed to extract claims from token", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

// OptionalAuth extracts claims when an Authorization header is present but
// lets anonymous requests through. Guest sessions carry no token.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if claims, err := extractClaims(parts[1]); err == nil {
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}

// SessionID returns the identity id for the request, falling back to the
// guest sentinel when no token was presented.
func SessionID(c *gin.Context) string {
	id, err := IdentityFromContext(c)
	if err != nil || id == "" {
		return models.GuestID
	}
	return id
}

// extractClaims decodes the claims segment of the JWT without re-validating
// the signature.
func extractClaims(token string) (*models.JWTClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid token format")
	}

	claimsBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode claims: %w", err)
	}

	var claims models.JWTClaims
	if err := json.Unmarshal(claimsBytes, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse claims: %w", err)
	}

	return &claims, nil
}

// IdentityFromContext returns the identity id carried by the request token.
func IdentityFromContext(c *gin.Context) (string, error) {
	claims, exists := c.Get("claims")
	if !exists {
		return "", fmt.Errorf("claims not found")
	}

	jwtClaims, ok := claims.(*models.JWTClaims)
	if !ok {
		return "", fmt.Errorf("invalid claims type")
	}

	if jwtClaims.Subject != "" {
		return jwtClaims.Subject, nil
	}
	return jwtClaims.PreferredUsername, nil
}

// adminTokenClaims are the claims of a token issued by the admin login
// endpoint.
type adminTokenClaims struct {
	Username string   `json:"preferred_username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// IssueAdminToken signs a short-lived admin console token.
func IssueAdminToken(username string) (string, error) {
	if config.AppConfig.JWTSecret == "" {
		return "", fmt.Errorf("JWT_SECRET is not configured")
	}

	claims := adminTokenClaims{
		Username: username,
		Roles:    []string{config.AppConfig.AdminGroup},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
			Issuer:    "exegese-app",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// RequireAdmin validates the admin console token and checks the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		claims := &adminTokenClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(config.AppConfig.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		isAdmin := false
		for _, role := range claims.Roles {
			if role == config.AppConfig.AdminGroup {
				isAdmin = true
				break
			}
		}

		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			c.Abort()
			return
		}

		c.Set("admin_user", claims.Username)
		c.Next()
	}
}
