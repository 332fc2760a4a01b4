package estimator

// EstimateRequest is the cost-estimator form payload. Area is in square
// meters.
type EstimateRequest struct {
	ServiceType string  `json:"serviceType" validate:"required"`
	Area        float64 `json:"area" validate:"required,gte=1"`
	Location    string  `json:"location" validate:"required"`
	Complexity  string  `json:"complexity" validate:"required,oneof=basic standard premium"`
}

// Estimate is an indicative cost calculation, not a binding quote.
type Estimate struct {
	ServiceType string  `json:"serviceType"`
	Area        float64 `json:"area"`
	Complexity  string  `json:"complexity"`
	PricePerSqm float64 `json:"pricePerSqm"`
	Total       float64 `json:"total"`
	Currency    string  `json:"currency"`
}

// ServiceRates lists one service's per-square-meter pricing tiers.
type ServiceRates struct {
	Service  string  `json:"service"`
	Basic    float64 `json:"basic"`
	Standard float64 `json:"standard"`
	Premium  float64 `json:"premium"`
}
