package quotes

import (
	"context"

	"go.uber.org/zap"
)

// Repository is the slice of the store the quote service needs.
type Repository interface {
	CreateQuoteRequest(ctx context.Context, req *CreateQuoteRequestRequest) *QuoteRequest
	ListQuoteRequests(ctx context.Context) []QuoteRequest
}

// Service handles quote-request submissions.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) Create(ctx context.Context, req *CreateQuoteRequestRequest) *QuoteRequest {
	q := s.repo.CreateQuoteRequest(ctx, req)
	s.logger.Info("Quote request received",
		zap.String("quote_id", q.ID),
		zap.String("project_type", q.ProjectType),
		zap.String("location", q.Location))
	return q
}

func (s *Service) List(ctx context.Context) []QuoteRequest {
	return s.repo.ListQuoteRequests(ctx)
}
