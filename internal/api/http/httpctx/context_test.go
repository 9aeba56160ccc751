package httpctx

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarbosa/recado-server/internal/model"
)

func TestIdentityRoundtrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	want := model.Identity{
		Payload: model.TokenPayload{UserID: 42, Email: "u@test.com"},
		User:    model.User{ID: 42, Email: "u@test.com", Active: true},
	}
	SetIdentity(c, want)

	got, ok := Identity(c)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestIdentityMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := Identity(c)
	assert.False(t, ok)
}
