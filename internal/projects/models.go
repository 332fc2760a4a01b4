package projects

// Project represents a completed or in-progress construction job shown in
// the portfolio. Optional fields are pointer or slice typed and serialize
// as explicit JSON null when absent, matching the public API contract.
type Project struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	DetailedDescription *string  `json:"detailedDescription"`
	ImageURL            string   `json:"imageUrl"`
	AdditionalImages    []string `json:"additionalImages"`
	Location            string   `json:"location"`
	CompletedYear       string   `json:"completedYear"`
	Category            string   `json:"category"`
	Duration            *string  `json:"duration"`
	ClientName          *string  `json:"clientName"`
	ProjectScope        []string `json:"projectScope"`
	Challenges          *string  `json:"challenges"`
	Solution            *string  `json:"solution"`
	Materials           []string `json:"materials"`
	TeamSize            *string  `json:"teamSize"`
}

// CreateProjectRequest is the insert payload for a portfolio project.
type CreateProjectRequest struct {
	Title               string   `json:"title" validate:"required"`
	Description         string   `json:"description" validate:"required"`
	DetailedDescription *string  `json:"detailedDescription"`
	ImageURL            string   `json:"imageUrl" validate:"required"`
	AdditionalImages    []string `json:"additionalImages"`
	Location            string   `json:"location" validate:"required"`
	CompletedYear       string   `json:"completedYear" validate:"required"`
	Category            string   `json:"category" validate:"required"`
	Duration            *string  `json:"duration"`
	ClientName          *string  `json:"clientName"`
	ProjectScope        []string `json:"projectScope"`
	Challenges          *string  `json:"challenges"`
	Solution            *string  `json:"solution"`
	Materials           []string `json:"materials"`
	TeamSize            *string  `json:"teamSize"`
}
