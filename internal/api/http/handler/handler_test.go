package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/mbarbosa/recado-server/internal/api/http/httpctx"
	"github.com/mbarbosa/recado-server/internal/model"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.TokenPair), args.Error(1)
}

func (m *authServiceMock) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	return args.Get(0).(model.TokenPair), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *userServiceMock) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *userServiceMock) GetByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *userServiceMock) Update(ctx context.Context, id int64, params model.UpdateUserParams, identity model.Identity) (model.User, error) {
	args := m.Called(ctx, id, params, identity)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *userServiceMock) Remove(ctx context.Context, id int64, identity model.Identity) error {
	args := m.Called(ctx, id, identity)
	return args.Error(0)
}

func (m *userServiceMock) UploadPicture(ctx context.Context, identity model.Identity, upload model.PictureUpload) (model.User, error) {
	args := m.Called(ctx, identity, upload)
	return args.Get(0).(model.User), args.Error(1)
}

type messageServiceMock struct {
	mock.Mock
}

func (m *messageServiceMock) List(ctx context.Context, limit, offset int) ([]model.Message, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *messageServiceMock) GetByID(ctx context.Context, id int64) (model.Message, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *messageServiceMock) Create(ctx context.Context, params model.CreateMessageParams, identity model.Identity) (model.Message, error) {
	args := m.Called(ctx, params, identity)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *messageServiceMock) Update(ctx context.Context, id int64, params model.UpdateMessageParams, identity model.Identity) (model.Message, error) {
	args := m.Called(ctx, id, params, identity)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *messageServiceMock) Remove(ctx context.Context, id int64, identity model.Identity) error {
	args := m.Called(ctx, id, identity)
	return args.Error(0)
}

// seedIdentity injects a fixed identity, standing in for the bearer-token
// middleware on protected routes.
func seedIdentity(identity model.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		httpctx.SetIdentity(c, identity)
	}
}
