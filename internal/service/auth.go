package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mbarbosa/recado-server/internal/logger"
	"github.com/mbarbosa/recado-server/internal/model"
)

// Auth orchestrates credential verification, token issuance and token
// resolution. Verification is stateless: no session or revocation store
// is consulted, tokens expire naturally.
type Auth struct {
	userStore model.UserStore
	hasher    model.Hasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.Hasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login verifies email and password and returns a token pair. Unknown
// email, inactive account and wrong password all collapse to
// ErrUnauthorized so the caller cannot tell which precondition failed.
func (a *Auth) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	a.logger.Debug("Auth service: processing login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email, true)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrUnauthorized
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Compare(password, user.PasswordHash) {
		return model.TokenPair{}, model.ErrUnauthorized
	}

	pair, err := a.issuePair(user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token pair",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: login completed",
		"user_id", user.ID)

	return pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair. Any
// failure, bad signature, expiry or an inactive account, surfaces as
// ErrUnauthorized.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	payload, err := a.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return model.TokenPair{}, model.ErrUnauthorized
	}

	user, err := a.userStore.GetByID(ctx, payload.UserID, true)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrUnauthorized
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", payload.UserID,
			"error", err.Error())
		return model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	pair, err := a.issuePair(user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token pair",
			"user_id", user.ID,
			"error", err.Error())
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: refresh completed",
		"user_id", user.ID)

	return pair, nil
}

// Authenticate resolves a bearer access token to a live identity. Used
// by the authentication middleware on protected routes. All causes
// collapse to ErrUnauthorized; the guard must not leak whether an
// account exists.
func (a *Auth) Authenticate(ctx context.Context, accessToken string) (model.Identity, error) {
	payload, err := a.tokens.ParseAccessToken(accessToken)
	if err != nil {
		return model.Identity{}, model.ErrUnauthorized
	}

	user, err := a.userStore.GetByID(ctx, payload.UserID, true)
	if err != nil {
		return model.Identity{}, model.ErrUnauthorized
	}

	return model.Identity{Payload: payload, User: user}, nil
}

type signResult struct {
	token string
	err   error
}

// issuePair signs the access and refresh tokens concurrently. Neither
// signing depends on the other's output; both must complete before the
// pair is returned.
func (a *Auth) issuePair(user model.User) (model.TokenPair, error) {
	accessCh := make(chan signResult, 1)
	go func() {
		t, err := a.tokens.GenerateAccessToken(user.ID, user.Email)
		accessCh <- signResult{token: t, err: err}
	}()

	refresh, _, refreshErr := a.tokens.GenerateRefreshToken(user.ID)
	access := <-accessCh

	if access.err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", access.err)
	}
	if refreshErr != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", refreshErr)
	}

	return model.TokenPair{
		AccessToken:  access.token,
		RefreshToken: refresh,
	}, nil
}
