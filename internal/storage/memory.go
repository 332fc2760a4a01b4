package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"kanguya-builders/marketing-site/site-backend/internal/contact"
	"kanguya-builders/marketing-site/site-backend/internal/projects"
	"kanguya-builders/marketing-site/site-backend/internal/quotes"
	"kanguya-builders/marketing-site/site-backend/internal/reviews"
	"kanguya-builders/marketing-site/site-backend/pkg/workflows"
)

// ErrInvalidTransition is returned when a moderation call asks for an
// approval-state change the workflow does not allow.
var ErrInvalidTransition = errors.New("approval transition not allowed")

// MemStorage is the single authoritative in-memory repository for all four
// entity collections. One instance is constructed per process (tests build
// their own). Maps are guarded by a RWMutex and each collection keeps an
// insertion-order index so listings stay deterministic.
//
// Lookups return a copy of the stored record, so callers never observe a
// concurrent moderation write through a shared pointer.
type MemStorage struct {
	mu sync.RWMutex

	projects     map[string]*projects.Project
	projectOrder []string

	reviews     map[string]*reviews.Review
	reviewOrder []string

	quoteRequests map[string]*quotes.QuoteRequest
	quoteOrder    []string

	contactMessages map[string]*contact.Message
	contactOrder    []string

	approvals *workflows.StateMachine
}

// NewMemStorage creates an empty store and populates the project collection
// from the given seed catalog.
func NewMemStorage(seed []projects.CreateProjectRequest) *MemStorage {
	s := &MemStorage{
		projects:        make(map[string]*projects.Project),
		reviews:         make(map[string]*reviews.Review),
		quoteRequests:   make(map[string]*quotes.QuoteRequest),
		contactMessages: make(map[string]*contact.Message),
		approvals:       workflows.NewStateMachine(),
	}
	for i := range seed {
		s.createProjectLocked(&seed[i])
	}
	return s
}

// =====================================================
// Projects
// =====================================================

// ListProjects returns all portfolio projects in insertion order.
func (s *MemStorage) ListProjects(ctx context.Context) []projects.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]projects.Project, 0, len(s.projectOrder))
	for _, id := range s.projectOrder {
		out = append(out, *s.projects[id])
	}
	return out
}

// GetProject looks up a project by id. The second result reports whether
// a project with that id exists; an unknown id is not an error.
func (s *MemStorage) GetProject(ctx context.Context, id string) (*projects.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// CreateProject assigns a fresh id, stores the project, and returns the
// persisted record. Input is assumed validated.
func (s *MemStorage) CreateProject(ctx context.Context, req *projects.CreateProjectRequest) *projects.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.createProjectLocked(req)
	cp := *p
	return &cp
}

func (s *MemStorage) createProjectLocked(req *projects.CreateProjectRequest) *projects.Project {
	p := &projects.Project{
		ID:                  uuid.NewString(),
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: cloneStringPtr(req.DetailedDescription),
		ImageURL:            req.ImageURL,
		AdditionalImages:    cloneStrings(req.AdditionalImages),
		Location:            req.Location,
		CompletedYear:       req.CompletedYear,
		Category:            req.Category,
		Duration:            cloneStringPtr(req.Duration),
		ClientName:          cloneStringPtr(req.ClientName),
		ProjectScope:        cloneStrings(req.ProjectScope),
		Challenges:          cloneStringPtr(req.Challenges),
		Solution:            cloneStringPtr(req.Solution),
		Materials:           cloneStrings(req.Materials),
		TeamSize:            cloneStringPtr(req.TeamSize),
	}
	s.projects[p.ID] = p
	s.projectOrder = append(s.projectOrder, p.ID)
	return p
}

// =====================================================
// Reviews
// =====================================================

// ListReviews returns every review regardless of approval state. This is
// the moderation view.
func (s *MemStorage) ListReviews(ctx context.Context) []reviews.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reviews.Review, 0, len(s.reviewOrder))
	for _, id := range s.reviewOrder {
		out = append(out, *s.reviews[id])
	}
	return out
}

// ListApprovedReviews returns only approved reviews, preserving insertion
// order. This is the only listing the public site consumes.
func (s *MemStorage) ListApprovedReviews(ctx context.Context) []reviews.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reviews.Review, 0, len(s.reviewOrder))
	for _, id := range s.reviewOrder {
		if r := s.reviews[id]; r.IsApproved == workflows.StatusApproved {
			out = append(out, *r)
		}
	}
	return out
}

// GetReview looks up a review by id.
func (s *MemStorage) GetReview(ctx context.Context, id string) (*reviews.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, false
	}
	cp := *r
	return &cp, true
}

// CreateReview stores a submitted review. The approval state always starts
// at "pending" and the recommend flag defaults to "yes" when unset.
func (s *MemStorage) CreateReview(ctx context.Context, req *reviews.CreateReviewRequest) *reviews.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	recommend := req.RecommendToOthers
	if recommend == "" {
		recommend = "yes"
	}

	r := &reviews.Review{
		ID:                uuid.NewString(),
		CustomerName:      req.CustomerName,
		CustomerEmail:     req.CustomerEmail,
		CustomerPhone:     cloneStringPtr(req.CustomerPhone),
		Rating:            req.Rating,
		Title:             req.Title,
		Review:            req.Review,
		ServiceUsed:       req.ServiceUsed,
		ProjectLocation:   cloneStringPtr(req.ProjectLocation),
		RecommendToOthers: recommend,
		IsApproved:        workflows.StatusPending,
		CreatedAt:         time.Now().UTC(),
	}
	s.reviews[r.ID] = r
	s.reviewOrder = append(s.reviewOrder, r.ID)
	cp := *r
	return &cp
}

// ApproveReview transitions a review to "approved" in place. Approving an
// already-approved review is a no-op that still returns the record. The
// second result is false when the id is unknown.
func (s *MemStorage) ApproveReview(ctx context.Context, id string) (*reviews.Review, bool) {
	// Every state may reach "approved" (including the idempotent no-op),
	// so the transition error cannot occur here.
	r, ok, _ := s.setApproval(id, workflows.StatusApproved)
	return r, ok
}

// RejectReview transitions a review to "rejected". Rejecting a published
// (approved) review is not allowed and returns ErrInvalidTransition.
func (s *MemStorage) RejectReview(ctx context.Context, id string) (*reviews.Review, bool, error) {
	return s.setApproval(id, workflows.StatusRejected)
}

func (s *MemStorage) setApproval(id, state string) (*reviews.Review, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[id]
	if !ok {
		return nil, false, nil
	}
	if !s.approvals.CanTransition(r.IsApproved, state) {
		return nil, true, ErrInvalidTransition
	}
	r.IsApproved = state
	cp := *r
	return &cp, true, nil
}

// CountPendingReviews reports how many submissions are awaiting moderation.
func (s *MemStorage) CountPendingReviews(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.reviews {
		if r.IsApproved == workflows.StatusPending {
			n++
		}
	}
	return n
}

// =====================================================
// Quote requests
// =====================================================

// CreateQuoteRequest stores a quote inquiry. Budget stays nil when the
// customer leaves it blank.
func (s *MemStorage) CreateQuoteRequest(ctx context.Context, req *quotes.CreateQuoteRequestRequest) *quotes.QuoteRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := &quotes.QuoteRequest{
		ID:          uuid.NewString(),
		FullName:    req.FullName,
		Phone:       req.Phone,
		Email:       req.Email,
		ProjectType: req.ProjectType,
		Budget:      cloneStringPtr(req.Budget),
		Location:    req.Location,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}
	s.quoteRequests[q.ID] = q
	s.quoteOrder = append(s.quoteOrder, q.ID)
	cp := *q
	return &cp
}

// ListQuoteRequests returns all quote inquiries in insertion order.
func (s *MemStorage) ListQuoteRequests(ctx context.Context) []quotes.QuoteRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]quotes.QuoteRequest, 0, len(s.quoteOrder))
	for _, id := range s.quoteOrder {
		out = append(out, *s.quoteRequests[id])
	}
	return out
}

// =====================================================
// Contact messages
// =====================================================

// CreateContactMessage stores a general inquiry.
func (s *MemStorage) CreateContactMessage(ctx context.Context, req *contact.CreateMessageRequest) *contact.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := &contact.Message{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	s.contactMessages[m.ID] = m
	s.contactOrder = append(s.contactOrder, m.ID)
	cp := *m
	return &cp
}

// ListContactMessages returns all contact messages in insertion order.
func (s *MemStorage) ListContactMessages(ctx context.Context) []contact.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]contact.Message, 0, len(s.contactOrder))
	for _, id := range s.contactOrder {
		out = append(out, *s.contactMessages[id])
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneStringPtr(in *string) *string {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
