package handler

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/mbarbosa/recado-server/internal/api/http/httpctx"
	"github.com/mbarbosa/recado-server/internal/logger"
	"github.com/mbarbosa/recado-server/internal/model"
)

// maxPictureSize is the upload ceiling for account pictures.
const maxPictureSize = 10 << 20 // 10 MiB

// UserService defines account operations.
type UserService interface {
	Create(ctx context.Context, params model.CreateUserParams) (model.User, error)
	List(ctx context.Context, limit, offset int) ([]model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
	Update(ctx context.Context, id int64, params model.UpdateUserParams, identity model.Identity) (model.User, error)
	Remove(ctx context.Context, id int64, identity model.Identity) error
	UploadPicture(ctx context.Context, identity model.Identity, upload model.PictureUpload) (model.User, error)
}

// User handles HTTP endpoints for accounts.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

type updateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=3"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Active:    user.Active,
		Picture:   user.Picture,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// Create registers a new account.
func (h *User) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "name, email and password are required")
		return
	}

	user, err := h.userService.Create(c.Request.Context(), model.CreateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// List returns accounts, paginated.
func (h *User) List(c *gin.Context) {
	pagination, ok := bindPagination(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		handleError(c, err)
		return
	}

	responses := make([]userResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, toUserResponse(user))
	}

	c.JSON(http.StatusOK, responses)
}

// Get returns one account.
func (h *User) Get(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Update changes the authenticated subject's own account.
func (h *User) Update(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidInput(c, "invalid update payload")
		return
	}

	identity, ok := httpctx.Identity(c)
	if !ok {
		abortMissingIdentity(c)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, model.UpdateUserParams{
		Name:     req.Name,
		Password: req.Password,
	}, identity)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// Remove deletes the authenticated subject's own account.
func (h *User) Remove(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	identity, ok := httpctx.Identity(c)
	if !ok {
		abortMissingIdentity(c)
		return
	}

	if err := h.userService.Remove(c.Request.Context(), id, identity); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPicture stores a PNG picture for the authenticated subject's own
// account. Oversized or non-PNG uploads fail here, before the service runs.
func (h *User) UploadPicture(c *gin.Context) {
	identity, ok := httpctx.Identity(c)
	if !ok {
		abortMissingIdentity(c)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		invalidInput(c, "file is required")
		return
	}

	if fileHeader.Size > maxPictureSize {
		invalidInput(c, "file exceeds the 10 MiB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil || !mtype.Is("image/png") {
		invalidInput(c, "only PNG uploads are accepted")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		handleError(c, err)
		return
	}

	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if extension == "" {
		invalidInput(c, "file name has no extension")
		return
	}

	user, err := h.userService.UploadPicture(c.Request.Context(), identity, model.PictureUpload{
		Reader:      file,
		Size:        fileHeader.Size,
		Extension:   extension,
		ContentType: mtype.String(),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
