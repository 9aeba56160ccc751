package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mbarbosa/recado-server/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

type MessageRepository struct {
	db *Connection
}

func NewMessageRepository(db *Connection) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// Sender and recipient are expanded to id and name only. The password
// hash never crosses this boundary.
const messageSelect = `SELECT m.id, m.text, m.read, m.from_id, m.to_id,
	f.name, t.name, m.created_at
	FROM messages m
	JOIN users f ON f.id = m.from_id
	JOIN users t ON t.id = m.to_id`

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (model.Message, error) {
	query := messageSelect + ` WHERE m.id = $1`

	message, err := scanMessage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Message{}, model.ErrNotFound
		}
		return model.Message{}, fmt.Errorf("failed to get message by id: %w", err)
	}

	return message, nil
}

func (r *MessageRepository) List(ctx context.Context, limit, offset int) ([]model.Message, error) {
	query := messageSelect + ` ORDER BY m.id DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.Message, 0)
	for rows.Next() {
		message, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}

func (r *MessageRepository) Create(ctx context.Context, message model.Message) (model.Message, error) {
	query := `INSERT INTO messages (text, read, from_id, to_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		message.Text, message.Read, message.FromID, message.ToID,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	return r.GetByID(ctx, message.ID)
}

func (r *MessageRepository) Save(ctx context.Context, message model.Message) (model.Message, error) {
	query := `UPDATE messages SET text = $2, read = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, message.ID, message.Text, message.Read)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to save message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.Message{}, model.ErrNotFound
	}

	return r.GetByID(ctx, message.ID)
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanMessage(row pgx.Row) (model.Message, error) {
	var message model.Message
	err := row.Scan(
		&message.ID, &message.Text, &message.Read, &message.FromID, &message.ToID,
		&message.From.Name, &message.To.Name, &message.CreatedAt,
	)
	if err != nil {
		return model.Message{}, err
	}
	message.From.ID = message.FromID
	message.To.ID = message.ToID
	return message, nil
}
