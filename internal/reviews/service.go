package reviews

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrNotFound means the review id is unknown.
	ErrNotFound = errors.New("review not found")
	// ErrInvalidTransition means moderation asked for a state change the
	// approval workflow does not allow (e.g. rejecting a published review).
	ErrInvalidTransition = errors.New("invalid approval transition")
)

// Repository is the slice of the store the review service needs.
type Repository interface {
	ListReviews(ctx context.Context) []Review
	ListApprovedReviews(ctx context.Context) []Review
	CreateReview(ctx context.Context, req *CreateReviewRequest) *Review
	ApproveReview(ctx context.Context, id string) (*Review, bool)
	RejectReview(ctx context.Context, id string) (*Review, bool, error)
	CountPendingReviews(ctx context.Context) int
}

// Service provides review submission and moderation logic.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new review service
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns every review regardless of approval state (moderation view).
func (s *Service) List(ctx context.Context) []Review {
	return s.repo.ListReviews(ctx)
}

// ListApproved returns the publicly visible reviews.
func (s *Service) ListApproved(ctx context.Context) []Review {
	return s.repo.ListApprovedReviews(ctx)
}

// Create stores a validated submission. New reviews always start pending.
func (s *Service) Create(ctx context.Context, req *CreateReviewRequest) *Review {
	r := s.repo.CreateReview(ctx, req)
	s.logger.Info("Review submitted",
		zap.String("review_id", r.ID),
		zap.String("service_used", r.ServiceUsed),
		zap.String("rating", r.Rating))
	return r
}

// Approve publishes a review. Approving an already-approved review is a
// no-op that still returns the record.
func (s *Service) Approve(ctx context.Context, id string) (*Review, error) {
	r, ok := s.repo.ApproveReview(ctx, id)
	if !ok {
		return nil, ErrNotFound
	}
	s.logger.Info("Review approved", zap.String("review_id", id))
	return r, nil
}

// Reject marks a pending review as rejected. Published reviews cannot be
// rejected.
func (s *Service) Reject(ctx context.Context, id string) (*Review, error) {
	r, ok, err := s.repo.RejectReview(ctx, id)
	if !ok {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, ErrInvalidTransition
	}
	s.logger.Info("Review rejected", zap.String("review_id", id))
	return r, nil
}

// CountPending reports how many submissions await moderation.
func (s *Service) CountPending(ctx context.Context) int {
	return s.repo.CountPendingReviews(ctx)
}
