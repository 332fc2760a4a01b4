package quotes

import "time"

// QuoteRequest is a prospective customer's project inquiry.
type QuoteRequest struct {
	ID          string    `json:"id"`
	FullName    string    `json:"fullName"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	ProjectType string    `json:"projectType"`
	Budget      *string   `json:"budget"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateQuoteRequestRequest is the public submission payload.
type CreateQuoteRequestRequest struct {
	FullName    string  `json:"fullName" validate:"required"`
	Phone       string  `json:"phone" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	ProjectType string  `json:"projectType" validate:"required"`
	Budget      *string `json:"budget"`
	Location    string  `json:"location" validate:"required"`
	Description string  `json:"description" validate:"required"`
}
