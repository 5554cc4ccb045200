package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"github.com/jobfit/backend/config"
	"github.com/jobfit/backend/models"
)

func newTestJWT() *JWTService {
	return NewJWTService(&config.Config{JWTSecret: "test-secret", JWTExpiryHours: 1})
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret!", hash)
	assert.True(t, CheckPassword("s3cret!", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("s3cret!", ""))
}

func TestJWT_RoundTrip(t *testing.T) {
	svc := newTestJWT()
	user := &models.User{ID: "jane@example.com", Email: "jane@example.com", Name: "Jane"}

	token, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.Name)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWT_Expired(t *testing.T) {
	svc := newTestJWT()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateToken(&models.User{Email: "jane@example.com"})
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := newTestJWT().GenerateToken(&models.User{Email: "jane@example.com"})
	require.NoError(t, err)

	other := NewJWTService(&config.Config{JWTSecret: "other", JWTExpiryHours: 1})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWT_Refresh(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateToken(&models.User{Email: "jane@example.com", Name: "Jane"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(token)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "Jane", claims.Name)
}

func newAuthRouter(svc *JWTService, mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), mw)
	r.GET("/me", func(c *gin.Context) {
		claims := GetAuthClaims(c)
		if claims == nil {
			c.JSON(http.StatusOK, gin.H{"email": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateToken(&models.User{Email: "jane@example.com"})
	require.NoError(t, err)
	router := newAuthRouter(svc, AuthMiddleware(svc))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"bad token", "Bearer not-a-token", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	svc := newTestJWT()
	router := newAuthRouter(svc, OptionalAuthMiddleware(svc))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"email":""}`, w.Body.String())
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestGoogleAuth_NotConfigured(t *testing.T) {
	svc := NewGoogleAuthService(&config.Config{})

	_, err := svc.VerifyIDToken(context.Background(), "token")
	assert.True(t, errors.Is(err, ErrGoogleNotConfigured))
}

func TestGoogleAuth_VerifyIDToken(t *testing.T) {
	svc := NewGoogleAuthService(&config.Config{GoogleClientID: "client"})
	svc.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		if token != "good" {
			return nil, errors.New("bad signature")
		}
		return &idtoken.Payload{
			Subject: "google-123",
			Claims:  map[string]interface{}{"email": "jane@example.com", "name": "Jane", "email_verified": true},
		}, nil
	}

	info, err := svc.VerifyIDToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "google-123", info.GoogleID)
	assert.Equal(t, "jane@example.com", info.Email)

	_, err = svc.VerifyIDToken(context.Background(), "bad")
	assert.Error(t, err)
}

func TestUserInfoFromPayload_MissingEmail(t *testing.T) {
	_, err := userInfoFromPayload(&idtoken.Payload{Subject: "x", Claims: map[string]interface{}{}})
	assert.Error(t, err)
}
