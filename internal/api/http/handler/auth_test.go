package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mbarbosa/recado-server/internal/model"
	"github.com/mbarbosa/recado-server/internal/testutil"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pair := model.TokenPair{AccessToken: "access", RefreshToken: "refresh"}

	tests := []struct {
		name       string
		body       string
		setup      func(*authServiceMock)
		wantStatus int
		wantBody   string
	}{
		{
			name: "valid credentials",
			body: `{"email":"e2e@test.com","password":"password123"}`,
			setup: func(svc *authServiceMock) {
				svc.On("Login", mock.Anything, "e2e@test.com", "password123").Return(pair, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"accessToken":"access","refreshToken":"refresh"}`,
		},
		{
			name: "rejected credentials",
			body: `{"email":"e2e@test.com","password":"wrong"}`,
			setup: func(svc *authServiceMock) {
				svc.On("Login", mock.Anything, "e2e@test.com", "wrong").Return(model.TokenPair{}, model.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"code":"unauthorized","message":"invalid credentials"}`,
		},
		{
			name:       "missing password",
			body:       `{"email":"e2e@test.com"}`,
			setup:      func(svc *authServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"invalid_input","message":"email and password are required"}`,
		},
		{
			name:       "malformed email",
			body:       `{"email":"not-an-email","password":"password123"}`,
			setup:      func(svc *authServiceMock) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"code":"invalid_input","message":"email and password are required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &authServiceMock{}
			tt.setup(svc)

			h := NewAuth(svc, testutil.MakeNoopLogger())

			r := gin.New()
			r.POST("/auth/login", h.Login)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	gin.SetMode(gin.TestMode)

	pair := model.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}

	tests := []struct {
		name       string
		body       string
		setup      func(*authServiceMock)
		wantStatus int
	}{
		{
			name: "valid refresh token",
			body: `{"refreshToken":"refresh1"}`,
			setup: func(svc *authServiceMock) {
				svc.On("Refresh", mock.Anything, "refresh1").Return(pair, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "rejected refresh token",
			body: `{"refreshToken":"expired"}`,
			setup: func(svc *authServiceMock) {
				svc.On("Refresh", mock.Anything, "expired").Return(model.TokenPair{}, model.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing token",
			body:       `{}`,
			setup:      func(svc *authServiceMock) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &authServiceMock{}
			tt.setup(svc)

			h := NewAuth(svc, testutil.MakeNoopLogger())

			r := gin.New()
			r.POST("/auth/refresh", h.Refresh)

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
