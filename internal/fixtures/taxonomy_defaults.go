package fixtures

import "github.com/worklens/worklens-backend-go/internal/domain/reference"

// DefaultTaxonomy is the idle-reason taxonomy served when an org has no
// custom categories configured.
func DefaultTaxonomy() reference.Taxonomy {
	return reference.Taxonomy{
		{
			Key:   "meeting",
			Label: "Meeting",
			Subcategories: []reference.Subcategory{
				{Key: "internal", Label: "Internal meeting"},
				{Key: "client", Label: "Client meeting"},
				{Key: "one_on_one", Label: "One-on-one"},
			},
		},
		{
			Key:   "break",
			Label: "Break",
			Subcategories: []reference.Subcategory{
				{Key: "lunch", Label: "Lunch break"},
				{Key: "short_break", Label: "Short break"},
			},
		},
		{
			Key:   "technical_issue",
			Label: "Technical Issue",
			Subcategories: []reference.Subcategory{
				{Key: "hardware", Label: "Hardware failure"},
				{Key: "network", Label: "Network outage"},
				{Key: "software", Label: "Software problem"},
			},
		},
		{
			Key:   "training",
			Label: "Training",
			Subcategories: []reference.Subcategory{
				{Key: "onboarding", Label: "Onboarding"},
				{Key: "workshop", Label: "Workshop or course"},
			},
		},
		{
			Key:   "other",
			Label: "Other",
			Subcategories: []reference.Subcategory{
				{Key: "offline_work", Label: "Offline work"},
				{Key: "personal", Label: "Personal matter"},
			},
		},
	}
}
