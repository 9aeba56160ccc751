package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mbarbosa/recado-server/internal/logger"
	"github.com/mbarbosa/recado-server/internal/model"
)

// Message implements message operations. The sender owns the message:
// only the sender may update or delete it, the recipient never may.
type Message struct {
	messageStore model.MessageStore
	userStore    model.UserStore
	logger       *logger.Logger
}

func NewMessage(
	messageStore model.MessageStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Message {
	return &Message{
		messageStore: messageStore,
		userStore:    userStore,
		logger:       logger,
	}
}

// List returns messages ordered newest first.
func (s *Message) List(ctx context.Context, limit, offset int) ([]model.Message, error) {
	messages, err := s.messageStore.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// GetByID returns one message with sender and recipient expanded.
func (s *Message) GetByID(ctx context.Context, id int64) (model.Message, error) {
	message, err := s.messageStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Message{}, model.ErrNotFound
		}
		return model.Message{}, fmt.Errorf("failed to get message by id: %w", err)
	}
	return message, nil
}

// Create stores a new unread message. The sender is forced to the
// authenticated subject regardless of any client-supplied value.
func (s *Message) Create(ctx context.Context, params model.CreateMessageParams, identity model.Identity) (model.Message, error) {
	s.logger.Debug("Message service: creating message",
		"from_id", identity.User.ID,
		"to_id", params.ToID)

	recipient, err := s.userStore.GetByID(ctx, params.ToID, true)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Message{}, model.ErrNotFound
		}
		return model.Message{}, fmt.Errorf("failed to get recipient: %w", err)
	}

	sender, err := s.userStore.GetByID(ctx, identity.User.ID, true)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Message{}, model.ErrNotFound
		}
		return model.Message{}, fmt.Errorf("failed to get sender: %w", err)
	}

	// Cannot fail given how sender was resolved; kept as a defensive
	// invariant on the forced-sender rule.
	if sender.ID != identity.Payload.UserID {
		return model.Message{}, model.ErrForbidden
	}

	message, err := s.messageStore.Create(ctx, model.Message{
		Text:   params.Text,
		Read:   false,
		FromID: sender.ID,
		ToID:   recipient.ID,
	})
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to create message: %w", err)
	}

	s.logger.Info("Message service: message created",
		"message_id", message.ID,
		"from_id", message.FromID,
		"to_id", message.ToID)

	return message, nil
}

// Update changes a message's text or read flag. Only the sender may
// update; the check runs strictly before any write.
func (s *Message) Update(ctx context.Context, id int64, params model.UpdateMessageParams, identity model.Identity) (model.Message, error) {
	message, err := s.GetByID(ctx, id)
	if err != nil {
		return model.Message{}, err
	}

	if message.FromID != identity.User.ID {
		s.logger.Info("Message service: update denied",
			"message_id", message.ID,
			"subject", identity.User.ID)
		return model.Message{}, model.ErrForbidden
	}

	if params.Text != nil {
		message.Text = *params.Text
	}
	if params.Read != nil {
		message.Read = *params.Read
	}

	saved, err := s.messageStore.Save(ctx, message)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to save message: %w", err)
	}

	s.logger.Info("Message service: message updated",
		"message_id", saved.ID)

	return saved, nil
}

// Remove hard-deletes a message. Only the sender may delete.
func (s *Message) Remove(ctx context.Context, id int64, identity model.Identity) error {
	message, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if message.FromID != identity.User.ID {
		s.logger.Info("Message service: delete denied",
			"message_id", message.ID,
			"subject", identity.User.ID)
		return model.ErrForbidden
	}

	if err := s.messageStore.Delete(ctx, message.ID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	s.logger.Info("Message service: message deleted",
		"message_id", message.ID)

	return nil
}
