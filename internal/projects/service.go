package projects

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrNotFound means the project id is unknown.
var ErrNotFound = errors.New("project not found")

// Repository is the slice of the store the project service needs.
type Repository interface {
	ListProjects(ctx context.Context) []Project
	GetProject(ctx context.Context, id string) (*Project, bool)
	CreateProject(ctx context.Context, req *CreateProjectRequest) *Project
}

// Service provides portfolio business logic.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new project service
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns the full portfolio in insertion order.
func (s *Service) List(ctx context.Context) []Project {
	return s.repo.ListProjects(ctx)
}

// Get fetches one project by id.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	p, ok := s.repo.GetProject(ctx, id)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Create stores a validated portfolio entry and returns the persisted
// record.
func (s *Service) Create(ctx context.Context, req *CreateProjectRequest) *Project {
	p := s.repo.CreateProject(ctx, req)
	s.logger.Info("Project added to portfolio",
		zap.String("project_id", p.ID),
		zap.String("title", p.Title),
		zap.String("category", p.Category))
	return p
}
