package service

import (
	"context"

	"skip2love/internal/models"
	"skip2love/internal/observability"
	"skip2love/internal/repository"
	"skip2love/internal/validation"
)

// MessageService provides direct messaging and conversation business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	blockRepo   repository.BlockRepository
}

// SendMessageInput is the input for sending a direct message.
type SendMessageInput struct {
	SenderID   uint
	ReceiverID uint
	Content    string
}

// NewMessageService returns a new MessageService.
func NewMessageService(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	blockRepo repository.BlockRepository,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		blockRepo:   blockRepo,
	}
}

// SendMessage delivers a message to another user. A block in either
// direction between the pair denies the send.
func (s *MessageService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if in.SenderID == in.ReceiverID {
		return nil, models.NewValidationError("Cannot send a message to yourself")
	}
	if err := validation.ValidateMessageContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.userRepo.GetByID(ctx, in.ReceiverID); err != nil {
		return nil, err
	}

	blocked, err := s.blockRepo.IsBlockedEither(ctx, in.SenderID, in.ReceiverID)
	if err != nil {
		return nil, err
	}
	if blocked {
		observability.MessagesBlocked.Inc()
		return nil, models.NewForbiddenError("Cannot message this user")
	}

	msg := &models.Message{
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Content:    in.Content,
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	observability.MessagesSent.Inc()

	return msg, nil
}

// GetHistory returns the full message history between the caller and another
// user, oldest first, and marks the counterpart's messages to the caller as
// read. History stays readable even after a block; only new sends are denied.
func (s *MessageService) GetHistory(ctx context.Context, userID, otherUserID uint) ([]*models.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, otherUserID); err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.GetBetween(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkReadFrom(ctx, otherUserID, userID); err != nil {
		return nil, err
	}
	for _, m := range msgs {
		if m.SenderID == otherUserID {
			m.IsRead = true
		}
	}

	return msgs, nil
}

// ListConversations folds the caller's messages into one entry per
// counterpart, carrying the latest message, most recent conversation first.
func (s *MessageService) ListConversations(ctx context.Context, userID uint) ([]*models.Conversation, error) {
	msgs, err := s.messageRepo.GetAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	conversations := make([]*models.Conversation, 0)

	// Messages arrive newest first, so the first message per counterpart
	// is that conversation's latest.
	for _, m := range msgs {
		otherID := m.SenderID
		if otherID == userID {
			otherID = m.ReceiverID
		}
		if seen[otherID] {
			continue
		}
		seen[otherID] = true

		other, err := s.userRepo.GetByID(ctx, otherID)
		if err != nil {
			if appErr, ok := err.(*models.AppError); ok && appErr.Code == "NOT_FOUND" {
				continue
			}
			return nil, err
		}

		conversations = append(conversations, &models.Conversation{
			OtherUser:   other.PublicProfile(),
			LastMessage: m,
		})
	}

	return conversations, nil
}
