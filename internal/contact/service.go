package contact

import (
	"context"

	"go.uber.org/zap"
)

// Repository is the slice of the store the contact service needs.
type Repository interface {
	CreateContactMessage(ctx context.Context, req *CreateMessageRequest) *Message
	ListContactMessages(ctx context.Context) []Message
}

// Service handles contact-form submissions.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req *CreateMessageRequest) *Message {
	m := s.repo.CreateContactMessage(ctx, req)
	s.logger.Info("Contact message received",
		zap.String("message_id", m.ID),
		zap.String("subject", m.Subject))
	return m
}

func (s *Service) List(ctx context.Context) []Message {
	return s.repo.ListContactMessages(ctx)
}
