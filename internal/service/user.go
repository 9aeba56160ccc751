package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mbarbosa/recado-server/internal/logger"
	"github.com/mbarbosa/recado-server/internal/model"
)

// User implements account operations. Mutations are gated by ownership:
// only the authenticated subject may change or remove its own record.
type User struct {
	userStore model.UserStore
	storage   model.Storage
	hasher    model.Hasher
	logger    *logger.Logger
}

func NewUser(
	userStore model.UserStore,
	storage model.Storage,
	hasher model.Hasher,
	logger *logger.Logger,
) *User {
	return &User{
		userStore: userStore,
		storage:   storage,
		hasher:    hasher,
		logger:    logger,
	}
}

// Create hashes the password and stores a new active account. A
// duplicate email surfaces as ErrConflict from the store.
func (s *User) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	s.logger.Debug("User service: creating user",
		"email", params.Email)

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userStore.Create(ctx, model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			s.logger.Info("User service: email already in use",
				"email", params.Email)
			return model.User{}, model.ErrConflict
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", user.ID)

	return user, nil
}

// List returns users ordered by id.
func (s *User) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	users, err := s.userStore.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByID returns one user, active or not.
func (s *User) GetByID(ctx context.Context, id int64) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// Update changes a user's own record. The ownership check runs strictly
// before any write.
func (s *User) Update(ctx context.Context, id int64, params model.UpdateUserParams, identity model.Identity) (model.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if user.ID != identity.User.ID {
		s.logger.Info("User service: update denied",
			"user_id", user.ID,
			"subject", identity.User.ID)
		return model.User{}, model.ErrForbidden
	}

	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Password != nil {
		passwordHash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}

	saved, err := s.userStore.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"user_id", saved.ID)

	return saved, nil
}

// Remove hard-deletes a user's own record.
func (s *User) Remove(ctx context.Context, id int64, identity model.Identity) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if user.ID != identity.User.ID {
		s.logger.Info("User service: delete denied",
			"user_id", user.ID,
			"subject", identity.User.ID)
		return model.ErrForbidden
	}

	if err := s.userStore.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", user.ID)

	return nil
}

// UploadPicture stores a picture for the authenticated subject's own
// record. The object key is "<id>.<extension>"; there is no path to
// upload a picture for another account.
func (s *User) UploadPicture(ctx context.Context, identity model.Identity, upload model.PictureUpload) (model.User, error) {
	user, err := s.GetByID(ctx, identity.User.ID)
	if err != nil {
		return model.User{}, err
	}

	key := fmt.Sprintf("%d.%s", user.ID, upload.Extension)

	if err := s.storage.Upload(ctx, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		s.logger.Error("User service: failed to upload picture",
			"user_id", user.ID,
			"key", key,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to upload picture: %w", err)
	}

	user.Picture = key
	saved, err := s.userStore.Save(ctx, user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("User service: picture uploaded",
		"user_id", saved.ID,
		"key", key)

	return saved, nil
}
