package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// adminIDKey is the gin context key the auth middleware sets.
const adminIDKey = "admin_id"

// mintToken issues an HS256 access token whose subject is the admin id.
func mintToken(secret string, adminID int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(adminID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseToken validates an access token and returns the admin id.
func parseToken(secret, token string) (int, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}
	adminID, err := strconv.Atoi(claims.Subject)
	if err != nil || adminID <= 0 {
		return 0, fmt.Errorf("invalid token subject %q", claims.Subject)
	}
	return adminID, nil
}

// requireAuth authenticates the request and stores the admin id on the
// context. allowQueryToken additionally accepts ?token= for endpoints a
// browser hits directly (CSV downloads).
func (s *Server) requireAuth(allowQueryToken bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && allowQueryToken {
			token = c.Query("token")
		}
		if token == "" {
			respondError(c, http.StatusUnauthorized, "missing access token")
			return
		}

		adminID, err := parseToken(s.settings.JWTSecret, token)
		if err != nil {
			respondError(c, http.StatusUnauthorized, "invalid access token")
			return
		}
		c.Set(adminIDKey, adminID)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// currentAdminID reads the authenticated admin id set by requireAuth.
func currentAdminID(c *gin.Context) int {
	return c.GetInt(adminIDKey)
}

// requestLogger logs one line per request in the slog style.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// IssueTokenRequest is the body of POST /api/auth/token.
type IssueTokenRequest struct {
	AdminID int `json:"admin_id" binding:"required,gt=0"`
}

// IssueToken mints an access token for an admin id. Identity management
// is out of scope; operators and tests call this to obtain bearer tokens.
func (s *Server) IssueToken(c *gin.Context) {
	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := mintToken(s.settings.JWTSecret, req.AdminID, s.settings.AccessTokenExpires)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}
	respondOK(c, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   int(s.settings.AccessTokenExpires.Seconds()),
	})
}
