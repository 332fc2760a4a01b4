package estimator

import (
	"errors"
	"sort"
)

// ErrUnknownService means the requested service type has no pricing entry.
var ErrUnknownService = errors.New("unknown service type")

type rates struct {
	basic    float64
	standard float64
	premium  float64
}

// Pricing per square meter in ZAR.
var servicePricing = map[string]rates{
	"tiling":      {basic: 45, standard: 65, premium: 85},
	"plastering":  {basic: 35, standard: 50, premium: 70},
	"brickwork":   {basic: 55, standard: 75, premium: 95},
	"painting":    {basic: 25, standard: 35, premium: 50},
	"paving":      {basic: 40, standard: 60, premium: 80},
	"plumbing":    {basic: 75, standard: 100, premium: 130},
	"carpentry":   {basic: 60, standard: 85, premium: 110},
	"maintenance": {basic: 30, standard: 45, premium: 65},
}

// Service computes indicative project costs from the pricing table.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate calculates area × rate for the selected service and complexity
// tier. The request is assumed validated, so complexity is one of the three
// known tiers; the service type still needs a pricing-table lookup.
func (s *Service) Estimate(req *EstimateRequest) (*Estimate, error) {
	r, ok := servicePricing[req.ServiceType]
	if !ok {
		return nil, ErrUnknownService
	}

	var perSqm float64
	switch req.Complexity {
	case "basic":
		perSqm = r.basic
	case "premium":
		perSqm = r.premium
	default:
		perSqm = r.standard
	}

	return &Estimate{
		ServiceType: req.ServiceType,
		Area:        req.Area,
		Complexity:  req.Complexity,
		PricePerSqm: perSqm,
		Total:       req.Area * perSqm,
		Currency:    "ZAR",
	}, nil
}

// ListServices returns the service catalog with per-tier rates, sorted by
// service name so the output is stable.
func (s *Service) ListServices() []ServiceRates {
	out := make([]ServiceRates, 0, len(servicePricing))
	for name, r := range servicePricing {
		out = append(out, ServiceRates{
			Service:  name,
			Basic:    r.basic,
			Standard: r.standard,
			Premium:  r.premium,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Service < out[j].Service })
	return out
}
