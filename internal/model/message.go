package model

import (
	"context"
	"time"
)

// MessageStore defines persistence operations for messages.
type MessageStore interface {
	GetByID(ctx context.Context, id int64) (Message, error)
	List(ctx context.Context, limit, offset int) ([]Message, error)
	Create(ctx context.Context, message Message) (Message, error)
	Save(ctx context.Context, message Message) (Message, error)
	Delete(ctx context.Context, id int64) error
}

// Message represents a private message between two users. FromID is the
// owning identity for mutation; ToID is a relational reference only.
type Message struct {
	ID        int64
	Text      string
	Read      bool
	FromID    int64
	ToID      int64
	From      Party
	To        Party
	CreatedAt time.Time
}
