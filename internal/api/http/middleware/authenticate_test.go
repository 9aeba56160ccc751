package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mbarbosa/recado-server/internal/api/http/httpctx"
	"github.com/mbarbosa/recado-server/internal/mocks"
	"github.com/mbarbosa/recado-server/internal/model"
	"github.com/mbarbosa/recado-server/internal/testutil"
)

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		{name: "lowercase scheme", header: "bearer abc", token: "abc", ok: true},
		{name: "missing header", header: "", ok: false},
		{name: "wrong scheme", header: "Basic abc", ok: false},
		{name: "scheme only", header: "Bearer", ok: false},
		{name: "empty token", header: "Bearer ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := extractBearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestAuthenticate_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	identity := model.Identity{
		Payload: model.TokenPayload{UserID: 1},
		User:    model.User{ID: 1, Active: true},
	}

	tests := []struct {
		name       string
		header     string
		setup      func(*mocks.AuthService)
		wantStatus int
	}{
		{
			name:   "valid token",
			header: "Bearer good-token",
			setup: func(svc *mocks.AuthService) {
				svc.On("Authenticate", mock.Anything, "good-token").Return(identity, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			setup:      func(svc *mocks.AuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic good-token",
			setup:      func(svc *mocks.AuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "rejected token",
			header: "Bearer bad-token",
			setup: func(svc *mocks.AuthService) {
				svc.On("Authenticate", mock.Anything, "bad-token").Return(model.Identity{}, model.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.AuthService{}
			tt.setup(svc)

			m := NewAuthenticate(svc, testutil.MakeNoopLogger())

			var captured model.Identity
			var reached bool

			r := gin.New()
			r.GET("/protected", m.Handle(), func(c *gin.Context) {
				reached = true
				captured, _ = httpctx.Identity(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, reached)
				assert.Equal(t, int64(1), captured.User.ID)
			} else {
				assert.False(t, reached)
				assert.JSONEq(t, `{"code":"unauthorized","message":"authentication required"}`, w.Body.String())
			}
		})
	}
}

func TestRequirePolicy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	identity := model.Identity{User: model.User{ID: 1}}

	t.Run("empty policy passes without identity", func(t *testing.T) {
		r := gin.New()
		r.GET("/open", RequirePolicy(""), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("policy without identity rejects", func(t *testing.T) {
		r := gin.New()
		r.GET("/guarded", RequirePolicy(model.PolicyUsersUpdate), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("policy with identity passes", func(t *testing.T) {
		r := gin.New()
		r.GET("/guarded",
			func(c *gin.Context) { httpctx.SetIdentity(c, identity) },
			RequirePolicy(model.PolicyUsersUpdate),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
