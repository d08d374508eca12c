package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"faktor/internal/domain"
	"faktor/internal/service"
	"faktor/mocks"
)

func newAuthRouter(svc *mocks.MockAuthService) *gin.Engine {
	h := NewAuthHandler(svc)
	r := gin.New()
	g := r.Group("/api/v1/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/refresh", h.Refresh)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	svc := new(mocks.MockAuthService)
	r := newAuthRouter(svc)

	user := &domain.User{ID: uuid.New(), Email: "ali@example.com", Role: domain.RoleMember}
	svc.On("Register", mock.Anything, service.RegisterInput{
		Email:    "ali@example.com",
		Password: "supersecret",
		FullName: "Ali Rezaei",
	}).Return(user, nil)

	w := postJSON(r, "/api/v1/auth/register", gin.H{
		"email":     "ali@example.com",
		"password":  "supersecret",
		"full_name": "Ali Rezaei",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	// The password hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "password_hash")
	svc.AssertExpectations(t)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	svc := new(mocks.MockAuthService)
	r := newAuthRouter(svc)

	w := postJSON(r, "/api/v1/auth/register", gin.H{
		"email":     "ali@example.com",
		"password":  "short",
		"full_name": "Ali Rezaei",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login(t *testing.T) {
	svc := new(mocks.MockAuthService)
	r := newAuthRouter(svc)

	pair := &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	svc.On("Login", mock.Anything, mock.Anything).Return(pair, nil)

	w := postJSON(r, "/api/v1/auth/login", gin.H{
		"email":    "ali@example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access-token")
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	svc := new(mocks.MockAuthService)
	r := newAuthRouter(svc)

	svc.On("Login", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	w := postJSON(r, "/api/v1/auth/login", gin.H{
		"email":    "ali@example.com",
		"password": "wrongpassword",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_Refresh(t *testing.T) {
	svc := new(mocks.MockAuthService)
	r := newAuthRouter(svc)

	pair := &service.TokenPair{AccessToken: "fresh-access", RefreshToken: "fresh-refresh"}
	svc.On("RefreshToken", mock.Anything, "old-refresh").Return(pair, nil)

	w := postJSON(r, "/api/v1/auth/refresh", gin.H{"refresh_token": "old-refresh"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fresh-access")
}

func TestAuthHandler_Refresh_Invalid(t *testing.T) {
	svc := new(mocks.MockAuthService)
	r := newAuthRouter(svc)

	svc.On("RefreshToken", mock.Anything, "expired").Return(nil, domain.ErrUnauthorized)

	w := postJSON(r, "/api/v1/auth/refresh", gin.H{"refresh_token": "expired"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
