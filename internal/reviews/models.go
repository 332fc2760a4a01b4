package reviews

import "time"

// Review is a customer-submitted testimonial. Rating is stored as the
// submitted string; its parsed value is checked at the validation boundary.
// IsApproved starts at "pending" and only moderation moves it.
type Review struct {
	ID                string    `json:"id"`
	CustomerName      string    `json:"customerName"`
	CustomerEmail     string    `json:"customerEmail"`
	CustomerPhone     *string   `json:"customerPhone"`
	Rating            string    `json:"rating"`
	Title             string    `json:"title"`
	Review            string    `json:"review"`
	ServiceUsed       string    `json:"serviceUsed"`
	ProjectLocation   *string   `json:"projectLocation"`
	RecommendToOthers string    `json:"recommendToOthers"`
	IsApproved        string    `json:"isApproved"`
	CreatedAt         time.Time `json:"createdAt"`
}

// CreateReviewRequest is the public submission payload. Minimum lengths
// mirror the site's review form.
type CreateReviewRequest struct {
	CustomerName      string  `json:"customerName" validate:"required,min=2"`
	CustomerEmail     string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone     *string `json:"customerPhone"`
	Rating            string  `json:"rating" validate:"required,rating"`
	Title             string  `json:"title" validate:"required,min=5"`
	Review            string  `json:"review" validate:"required,min=20"`
	ServiceUsed       string  `json:"serviceUsed" validate:"required"`
	ProjectLocation   *string `json:"projectLocation"`
	RecommendToOthers string  `json:"recommendToOthers" validate:"omitempty,oneof=yes maybe no"`
}
