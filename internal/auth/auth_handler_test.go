package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-groomops/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	loginFn    func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error)
	refreshFn  func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error)
	getMeFn    func(ctx context.Context, userID string) (*auth.AuthResponse, error)
	registerFn func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)
}

func (f *fakeService) Login(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
	return f.loginFn(ctx, email, password)
}
func (f *fakeService) RefreshToken(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
	return f.refreshFn(ctx, refreshToken)
}
func (f *fakeService) GetMe(ctx context.Context, userID string) (*auth.AuthResponse, error) {
	return f.getMeFn(ctx, userID)
}
func (f *fakeService) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.registerFn(ctx, req)
}

func TestHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		loginFn: func(ctx context.Context, email, password string) (string, string, auth.AuthResponse, error) {
			assert.Equal(t, "finance@groomops.dev", email)
			return "access-token", "refresh-token", auth.AuthResponse{Email: email, Role: "finance"}, nil
		},
	}

	h := auth.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"finance@groomops.dev","password":"correct-horse"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"access-token"`)

	cookies := w.Result().Cookies()
	names := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		names = append(names, ck.Name)
	}
	assert.Contains(t, names, "access_token")
	assert.Contains(t, names, "refresh_token")
}

func TestHandler_Login_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := auth.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"not-an-email"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Me_WithoutUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := auth.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)

	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		registerFn: func(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
			assert.Equal(t, "manager", req.Role)
			return auth.AuthResponse{Email: req.Email, Role: req.Role}, nil
		},
	}

	h := auth.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"email":"new@groomops.dev","name":"New Hire","password":"long-enough-pw","role":"manager"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"manager"`)
}

func TestHandler_RefreshToken_FromBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		refreshFn: func(ctx context.Context, refreshToken string) (string, string, auth.AuthResponse, error) {
			assert.Equal(t, "old-refresh", refreshToken)
			return "new-access", "new-refresh", auth.AuthResponse{Role: "staff"}, nil
		},
	}

	h := auth.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/refresh",
		strings.NewReader(`{"refresh_token":"old-refresh"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"access_token":"new-access"`)
}
