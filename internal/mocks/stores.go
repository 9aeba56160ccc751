// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/mbarbosa/recado-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByEmail(ctx context.Context, email string, activeOnly bool) (model.User, error) {
	args := m.Called(ctx, email, activeOnly)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id int64, activeOnly bool) (model.User, error) {
	args := m.Called(ctx, id, activeOnly)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Save(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MessageStore is a mock of model.MessageStore.
type MessageStore struct {
	mock.Mock
}

func (m *MessageStore) GetByID(ctx context.Context, id int64) (model.Message, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *MessageStore) List(ctx context.Context, limit, offset int) ([]model.Message, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MessageStore) Create(ctx context.Context, message model.Message) (model.Message, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *MessageStore) Save(ctx context.Context, message model.Message) (model.Message, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *MessageStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateAccessToken(userID int64, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) GenerateRefreshToken(userID int64) (string, string, error) {
	args := m.Called(userID)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *TokenManager) ParseAccessToken(token string) (model.TokenPayload, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenPayload), args.Error(1)
}

func (m *TokenManager) ParseRefreshToken(token string) (model.TokenPayload, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenPayload), args.Error(1)
}

// Hasher is a mock of model.Hasher.
type Hasher struct {
	mock.Mock
}

func (m *Hasher) Hash(plaintext string) (string, error) {
	args := m.Called(plaintext)
	return args.String(0), args.Error(1)
}

func (m *Hasher) Compare(plaintext, digest string) bool {
	args := m.Called(plaintext, digest)
	return args.Bool(0)
}

// Storage is a mock of model.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// AuthService is a mock of the bearer-token guard dependency.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Authenticate(ctx context.Context, accessToken string) (model.Identity, error) {
	args := m.Called(ctx, accessToken)
	return args.Get(0).(model.Identity), args.Error(1)
}
