package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"kanguya-builders/marketing-site/site-backend/internal/projects"
)

// LoadSeed reads a seed catalog from a JSON file (an array of project
// inputs). An empty path returns the built-in catalog, so the portfolio is
// never empty at startup. The catalog is sample content, not a contract:
// deployments swap it out without touching code.
func LoadSeed(path string) ([]projects.CreateProjectRequest, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed []projects.CreateProjectRequest
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seed, nil
}

// DefaultSeed returns the built-in portfolio of representative construction
// jobs around Cape Town.
func DefaultSeed() []projects.CreateProjectRequest {
	return []projects.CreateProjectRequest{
		{
			Title:               "Modern Home Renovation",
			Description:         "A complete transformation of a family home, focusing on open-plan living and modern finishes.",
			DetailedDescription: strPtr("Full interior and exterior renovation, new kitchen and bathrooms, and custom carpentry throughout. The result is a bright, functional, and stylish home for a growing family."),
			ImageURL:            "/project-images/modern-home-renovation.jpeg",
			AdditionalImages:    []string{"/project-images/modern-home-renovation-2.jpeg"},
			Location:            "Cape Town",
			CompletedYear:       "2025",
			Category:            "renovation",
			Duration:            strPtr("6 months"),
			ClientName:          strPtr("Smith Family"),
			ProjectScope:        []string{"Full home renovation", "Kitchen and bathroom remodel", "Custom carpentry"},
			Challenges:          strPtr("Tight timeline and maintaining family comfort during construction."),
			Solution:            strPtr("Phased construction and daily clean-up to minimize disruption."),
			Materials:           []string{"Porcelain tiles", "Quartz countertops", "Custom cabinetry"},
			TeamSize:            strPtr("8 specialists"),
		},
		{
			Title:               "Maitland Double Storey Apartments",
			Description:         "Double storey three bedroom apartments with block walls, slab deck, and plastering.",
			DetailedDescription: strPtr("Foundation, block walls, rib-and-block slab deck, upper-storey build, and plastering inside and out. Completed in 2025 over two months."),
			ImageURL:            "/project-images/maitland-apartments.jpeg",
			AdditionalImages:    []string{"/project-images/maitland-apartments-2.jpeg", "/project-images/maitland-apartments-3.jpeg"},
			Location:            "Maitland, Cape Town",
			CompletedYear:       "2025",
			Category:            "apartments",
			Duration:            strPtr("2 months"),
			ClientName:          strPtr("Residential Client"),
			ProjectScope:        []string{"Foundation", "Block walls", "Slab deck", "Plastering"},
			Challenges:          strPtr("Complex structure and time management."),
			Solution:            strPtr("Experienced team and phased construction."),
			Materials:           []string{"Blocks", "Concrete", "Plaster"},
			TeamSize:            strPtr("8 builders"),
		},
		{
			Title:               "Observatory Site Progress",
			Description:         "Site progress and construction activities in Observatory, Cape Town.",
			DetailedDescription: strPtr("Site preparation, building progress, and renovation work in Observatory, Cape Town, 2025."),
			ImageURL:            "/project-images/observatory-site.jpeg",
			AdditionalImages:    []string{"/project-images/observatory-site-2.jpeg"},
			Location:            "Observatory, Cape Town",
			CompletedYear:       "2025",
			Category:            "site work",
			Duration:            strPtr("Ongoing"),
			ClientName:          strPtr("Various"),
			ProjectScope:        []string{"Site preparation", "Building progress", "Renovation"},
			Challenges:          strPtr("Weather and logistics."),
			Solution:            strPtr("Coordinated team and phased work."),
			Materials:           []string{"Bricks", "Tiles", "Concrete"},
			TeamSize:            strPtr("Varies"),
		},
		{
			Title:               "Woodstock Renovation Progress",
			Description:         "Renovation and finishing work in Woodstock, Cape Town.",
			DetailedDescription: strPtr("Renovation and finishing work completed in 2025 in Woodstock, Cape Town."),
			ImageURL:            "/project-images/woodstock-renovation.jpeg",
			AdditionalImages:    []string{"/project-images/woodstock-renovation-2.jpeg"},
			Location:            "Woodstock, Cape Town",
			CompletedYear:       "2025",
			Category:            "renovation",
			Duration:            strPtr("2 weeks"),
			ClientName:          strPtr("Renovation Client"),
			ProjectScope:        []string{"Finishing", "Painting", "Tiling"},
			Challenges:          strPtr("Tight schedule."),
			Solution:            strPtr("Extra team members added."),
			Materials:           []string{"Paint", "Tiles", "Plaster"},
			TeamSize:            strPtr("4"),
		},
		{
			Title:               "Luxury Apartment Upgrade",
			Description:         "High-end finishes and smart home features for a city apartment.",
			DetailedDescription: strPtr("Upgraded flooring, lighting, and integrated smart home systems. Energy-efficient lighting, automated blinds, and a modern kitchen."),
			ImageURL:            "/project-images/luxury-apartment.jpeg",
			Location:            "Cape Town CBD",
			CompletedYear:       "2024",
			Category:            "apartment upgrade",
			Duration:            strPtr("2 months"),
			ClientName:          strPtr("Urban Living Inc."),
			ProjectScope:        []string{"Smart home integration", "Lighting upgrade", "Kitchen remodel"},
			Challenges:          strPtr("Working within a high-rise with strict building regulations."),
			Solution:            strPtr("Coordinated with building management and used noise-minimizing tools."),
			Materials:           []string{"Engineered wood flooring", "LED lighting", "Smart home devices"},
			TeamSize:            strPtr("5 specialists"),
		},
		{
			Title:               "Commercial Office Fit-Out",
			Description:         "A modern, collaborative workspace for a growing tech company.",
			DetailedDescription: strPtr("Open-plan work areas, meeting rooms, and a staff kitchen. Focused on maximizing natural light and flexible workspaces."),
			ImageURL:            "/project-images/office-fitout.jpeg",
			Location:            "Century City, Cape Town",
			CompletedYear:       "2025",
			Category:            "office fit-out",
			Duration:            strPtr("3 months"),
			ClientName:          strPtr("Tech Innovators"),
			ProjectScope:        []string{"Open-plan workspace", "Meeting rooms", "Staff kitchen"},
			Challenges:          strPtr("Maintaining business operations during construction."),
			Solution:            strPtr("Scheduled noisy work after hours and used dust barriers."),
			Materials:           []string{"Glass partitions", "Acoustic panels", "Laminate flooring"},
			TeamSize:            strPtr("10 specialists"),
		},
		{
			Title:               "Outdoor Entertainment Area",
			Description:         "Custom-built patio and braai area for family gatherings.",
			DetailedDescription: strPtr("Covered patio with built-in braai, seating, and lighting. The space is perfect for year-round entertaining."),
			ImageURL:            "/project-images/outdoor-entertainment.jpeg",
			Location:            "Durbanville, Cape Town",
			CompletedYear:       "2024",
			Category:            "outdoor living",
			Duration:            strPtr("1 month"),
			ClientName:          strPtr("The Johnsons"),
			ProjectScope:        []string{"Patio construction", "Built-in braai", "Outdoor lighting"},
			Challenges:          strPtr("Weather delays during construction."),
			Solution:            strPtr("Used weather-resistant materials and scheduled work around forecasts."),
			Materials:           []string{"Face brick", "Outdoor tiles", "Stainless steel"},
			TeamSize:            strPtr("4 specialists"),
		},
		{
			Title:               "Green Point Plastering & Screeding",
			Description:         "Professional plastering and screeding for commercial floors.",
			DetailedDescription: strPtr("Leveling and finishing concrete floors in a Green Point commercial property, including moisture barrier installation and high-performance screed application."),
			ImageURL:            "/project-images/green-point-screeding.jpeg",
			AdditionalImages:    []string{"/project-images/green-point-screeding-2.jpeg"},
			Location:            "Green Point, Cape Town",
			CompletedYear:       "2024",
			Category:            "plastering",
			Duration:            strPtr("1 week"),
			ClientName:          strPtr("Commercial Developer"),
			ProjectScope:        []string{"Floor screeding", "Surface leveling", "Moisture barrier installation"},
			Challenges:          strPtr("Achieving perfect level across large floor areas."),
			Solution:            strPtr("Used laser-guided screeding equipment and high-performance screed materials."),
			Materials:           []string{"Cement screed", "Leveling compound", "Moisture barrier"},
			TeamSize:            strPtr("5 specialists"),
		},
		{
			Title:               "Claremont Tiling Project",
			Description:         "Custom tile patterns and waterproofing for bathrooms and kitchens.",
			DetailedDescription: strPtr("Designer tiles in Claremont, including intricate patterns, bathroom waterproofing, and kitchen backsplash work."),
			ImageURL:            "/project-images/claremont-tiling.jpeg",
			AdditionalImages:    []string{"/project-images/claremont-tiling-2.jpeg"},
			Location:            "Claremont, Cape Town",
			CompletedYear:       "2023",
			Category:            "tiling",
			Duration:            strPtr("4 weeks"),
			ClientName:          strPtr("Homeowner"),
			ProjectScope:        []string{"Bathroom tiling", "Kitchen backsplash", "Custom patterns"},
			Challenges:          strPtr("Maintaining waterproofing integrity with complex tile layouts."),
			Solution:            strPtr("Advanced pattern layout and premium waterproofing systems."),
			Materials:           []string{"Designer tiles", "Waterproof adhesive", "Sealed grout"},
			TeamSize:            strPtr("3 tilers"),
		},
	}
}

func strPtr(s string) *string {
	return &s
}
