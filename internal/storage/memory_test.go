package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanguya-builders/marketing-site/site-backend/internal/contact"
	"kanguya-builders/marketing-site/site-backend/internal/projects"
	"kanguya-builders/marketing-site/site-backend/internal/quotes"
	"kanguya-builders/marketing-site/site-backend/internal/reviews"
)

func newProjectInput() projects.CreateProjectRequest {
	return projects.CreateProjectRequest{
		Title:         "Test Build",
		Description:   "A small test build.",
		ImageURL:      "/project-images/test.jpeg",
		Location:      "Cape Town",
		CompletedYear: "2025",
		Category:      "renovation",
	}
}

func newReviewInput() reviews.CreateReviewRequest {
	return reviews.CreateReviewRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Rating:        "5",
		Title:         "Great work",
		Review:        "They did an excellent job on our kitchen remodel.",
		ServiceUsed:   "carpentry",
	}
}

func TestCreateProjectRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	in := newProjectInput()
	created := s.CreateProject(ctx, &in)
	require.NotEmpty(t, created.ID)

	got, ok := s.GetProject(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)
	assert.Equal(t, "Test Build", got.Title)

	// Omitted optional fields come back as explicit absent values
	assert.Nil(t, got.DetailedDescription)
	assert.Nil(t, got.AdditionalImages)
	assert.Nil(t, got.Duration)
	assert.Nil(t, got.ClientName)
	assert.Nil(t, got.ProjectScope)
	assert.Nil(t, got.Challenges)
	assert.Nil(t, got.Solution)
	assert.Nil(t, got.Materials)
	assert.Nil(t, got.TeamSize)
}

func TestGetProjectUnknownID(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	got, ok := s.GetProject(ctx, "no-such-id")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestListProjectsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	assert.Empty(t, s.ListProjects(ctx))

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		in := newProjectInput()
		in.Title = title
		s.CreateProject(ctx, &in)
	}

	listed := s.ListProjects(ctx)
	require.Len(t, listed, 3)
	for i, p := range listed {
		assert.Equal(t, titles[i], p.Title)
	}
}

func TestSeedCatalogPopulatesProjects(t *testing.T) {
	ctx := context.Background()
	seed := DefaultSeed()
	s := NewMemStorage(seed)

	listed := s.ListProjects(ctx)
	require.Len(t, listed, len(seed))
	for i, p := range listed {
		assert.Equal(t, seed[i].Title, p.Title)
		assert.NotEmpty(t, p.ID)
	}
}

func TestCreateReviewDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	in := newReviewInput()
	r := s.CreateReview(ctx, &in)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "pending", r.IsApproved)
	assert.Equal(t, "yes", r.RecommendToOthers)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Nil(t, r.CustomerPhone)
}

func TestApproveReview(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	in := newReviewInput()
	r := s.CreateReview(ctx, &in)

	// Pending review is not publicly visible
	assert.Empty(t, s.ListApprovedReviews(ctx))
	assert.Len(t, s.ListReviews(ctx), 1)

	approved, ok := s.ApproveReview(ctx, r.ID)
	require.True(t, ok)
	assert.Equal(t, "approved", approved.IsApproved)

	visible := s.ListApprovedReviews(ctx)
	require.Len(t, visible, 1)
	assert.Equal(t, r.ID, visible[0].ID)
}

func TestApproveReviewIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	in := newReviewInput()
	r := s.CreateReview(ctx, &in)

	first, ok := s.ApproveReview(ctx, r.ID)
	require.True(t, ok)
	second, ok := s.ApproveReview(ctx, r.ID)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Len(t, s.ListApprovedReviews(ctx), 1)
}

func TestApproveReviewUnknownID(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	got, ok := s.ApproveReview(ctx, "no-such-id")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRejectReview(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	in := newReviewInput()
	r := s.CreateReview(ctx, &in)

	rejected, ok, err := s.RejectReview(ctx, r.ID)
	require.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.IsApproved)
	assert.Empty(t, s.ListApprovedReviews(ctx))

	// A rejection can be reversed by an approval
	approved, ok := s.ApproveReview(ctx, r.ID)
	require.True(t, ok)
	assert.Equal(t, "approved", approved.IsApproved)

	// But a published review cannot be rejected
	_, ok, err = s.RejectReview(ctx, r.ID)
	require.True(t, ok)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestApprovedReviewsAreStrictSubset(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	var approvedID string
	for i := 0; i < 5; i++ {
		in := newReviewInput()
		r := s.CreateReview(ctx, &in)
		if i == 2 {
			approvedID = r.ID
		}
	}
	_, ok := s.ApproveReview(ctx, approvedID)
	require.True(t, ok)

	all := s.ListReviews(ctx)
	visible := s.ListApprovedReviews(ctx)
	assert.Len(t, all, 5)
	require.Len(t, visible, 1)
	assert.Equal(t, approvedID, visible[0].ID)
	for _, r := range visible {
		assert.Equal(t, "approved", r.IsApproved)
	}
}

func TestCountPendingReviews(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	assert.Zero(t, s.CountPendingReviews(ctx))

	var firstID string
	for i := 0; i < 3; i++ {
		in := newReviewInput()
		r := s.CreateReview(ctx, &in)
		if i == 0 {
			firstID = r.ID
		}
	}
	assert.Equal(t, 3, s.CountPendingReviews(ctx))

	s.ApproveReview(ctx, firstID)
	assert.Equal(t, 2, s.CountPendingReviews(ctx))
}

func TestCreateQuoteRequest(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	q := s.CreateQuoteRequest(ctx, &quotes.CreateQuoteRequestRequest{
		FullName:    "John Builder",
		Phone:       "+27 82 000 0000",
		Email:       "john@example.com",
		ProjectType: "renovation",
		Location:    "Cape Town",
		Description: "Kitchen remodel",
	})
	assert.NotEmpty(t, q.ID)
	assert.Nil(t, q.Budget)
	assert.False(t, q.CreatedAt.IsZero())

	listed := s.ListQuoteRequests(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, q.ID, listed[0].ID)
}

func TestCreateContactMessage(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	m := s.CreateContactMessage(ctx, &contact.CreateMessageRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Do you work in Stellenbosch?",
	})
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.CreatedAt.IsZero())

	listed := s.ListContactMessages(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, m.ID, listed[0].ID)
}

func TestConcurrentCreateProject(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	const n = 50
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := newProjectInput()
			ids[i] = s.CreateProject(ctx, &in).ID
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Len(t, s.ListProjects(ctx), n)
}

func TestListingsReturnCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemStorage(nil)

	in := newReviewInput()
	created := s.CreateReview(ctx, &in)

	listed := s.ListReviews(ctx)
	require.Len(t, listed, 1)
	listed[0].IsApproved = "approved"

	got, ok := s.GetReview(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, "pending", got.IsApproved)
}
