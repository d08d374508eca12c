package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"faktor/internal/domain"
	"faktor/internal/service"
	"faktor/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(authSvc service.AuthService, roles ...domain.UserRole) *gin.Engine {
	r := gin.New()
	g := r.Group("/protected", AuthMiddleware(authSvc))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/resource", func(c *gin.Context) {
		id, err := GetUserID(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": GetRole(c)})
	})
	return r
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected/resource", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	svc := new(mocks.MockAuthService)
	r := authTestRouter(svc)

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "ValidateToken", mock.Anything)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)
	r := authTestRouter(svc)

	w := doGet(r, "bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	svc := new(mocks.MockAuthService)
	userID := uuid.New()
	svc.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID: userID,
		Email:  "ali@example.com",
		Role:   domain.RoleMember,
	}, nil)
	r := authTestRouter(svc)

	w := doGet(r, "good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "member")
}

func TestRequireRole_Denied(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("ValidateToken", "member-token").Return(&service.Claims{
		UserID: uuid.New(),
		Role:   domain.RoleMember,
	}, nil)
	r := authTestRouter(svc, domain.RoleAdmin)

	w := doGet(r, "member-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	svc := new(mocks.MockAuthService)
	svc.On("ValidateToken", "admin-token").Return(&service.Claims{
		UserID: uuid.New(),
		Role:   domain.RoleAdmin,
	}, nil)
	r := authTestRouter(svc, domain.RoleAdmin)

	w := doGet(r, "admin-token")
	assert.Equal(t, http.StatusOK, w.Code)
}
