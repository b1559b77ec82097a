package service

import (
	"context"
	"errors"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrMessageValidation = errors.New("message validation failed")
)

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID primitive.ObjectID, content string) (*domain.Message, error)
	GetConversation(ctx context.Context, a, b primitive.ObjectID) ([]domain.Message, error)
	MarkRead(ctx context.Context, messageID primitive.ObjectID) error
}

// messageService stores and lists messages; delivery is someone else's job.
type messageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService creates a new instance of messageService.
func NewMessageService(messageRepo repository.MessageRepository) MessageService {
	return &messageService{messageRepo: messageRepo}
}

// Send stores a message from sender to receiver.
func (s *messageService) Send(ctx context.Context, senderID, receiverID primitive.ObjectID, content string) (*domain.Message, error) {
	if senderID == primitive.NilObjectID || receiverID == primitive.NilObjectID || content == "" {
		return nil, ErrMessageValidation
	}

	message := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}

	messageID, err := s.messageRepo.Create(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = messageID
	return message, nil
}

// GetConversation lists all messages between two parties, oldest first.
func (s *messageService) GetConversation(ctx context.Context, a, b primitive.ObjectID) ([]domain.Message, error) {
	if a == primitive.NilObjectID || b == primitive.NilObjectID {
		return nil, ErrMessageValidation
	}
	return s.messageRepo.GetConversation(ctx, a, b)
}

// MarkRead flags a message as read.
func (s *messageService) MarkRead(ctx context.Context, messageID primitive.ObjectID) error {
	err := s.messageRepo.MarkRead(ctx, messageID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrMessageNotFound
	}
	return err
}
