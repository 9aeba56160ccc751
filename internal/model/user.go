package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string, activeOnly bool) (User, error)
	GetByID(ctx context.Context, id int64, activeOnly bool) (User, error)
	List(ctx context.Context, limit, offset int) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Save(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
}

// User represents a stored account. Email is the login identifier and is
// unique across all users. Only active users may authenticate or be
// referenced as a message party.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Active       bool
	Picture      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Party is the reduced user view embedded in message responses.
// It never carries credentials.
type Party struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Party returns the reduced view of the user.
func (u User) Party() Party {
	return Party{ID: u.ID, Name: u.Name}
}
