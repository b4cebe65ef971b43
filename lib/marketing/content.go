package marketing

import (
	marketingstore "ats-backend/lib/marketing/store"
	dbmodels "ats-backend/models/db"
)

func defaultContent() marketingstore.Content {
	return marketingstore.Content{
		Testimonials: []dbmodels.Testimonial{
			{
				AuthorName:   "Sarah Johnson",
				AuthorRole:   "Head of Talent",
				Company:      "TechCorp Middle East",
				Quote:        "We cut our time to hire in half within the first quarter.",
				Rating:       5,
				Metrics:      dbmodels.StringMap{"time_to_hire": "-50%"},
				IsFeatured:   true,
				DisplayOrder: 1,
			},
			{
				AuthorName:   "Mike Chen",
				AuthorRole:   "Engineering Manager",
				Company:      "Gulf Digital",
				Quote:        "Structured interview feedback finally lives next to the candidate.",
				Rating:       4.8,
				Metrics:      dbmodels.StringMap{"interviews_per_week": "40+"},
				IsFeatured:   true,
				DisplayOrder: 2,
			},
		},
		PricingPlans: []dbmodels.PricingPlan{
			{
				Name:         "Starter",
				Price:        49,
				Period:       "month",
				Description:  "For small teams hiring occasionally",
				Features:     []string{"Up to 3 recruiters", "Candidate pipeline", "CSV export"},
				IsActive:     true,
				DisplayOrder: 1,
			},
			{
				Name:         "Professional",
				Price:        149,
				Period:       "month",
				Description:  "For growing recruitment teams",
				Features:     []string{"Unlimited recruiters", "Interview scheduling", "Analytics dashboard", "Excel export"},
				IsPopular:    true,
				IsActive:     true,
				DisplayOrder: 2,
			},
			{
				Name:         "Enterprise",
				Price:        0,
				Period:       "custom",
				Description:  "Dedicated support and integrations",
				Features:     []string{"Everything in Professional", "SSO", "Dedicated success manager"},
				IsActive:     true,
				DisplayOrder: 3,
			},
		},
		Features: []dbmodels.Feature{
			{
				Title:        "Visual pipeline",
				Description:  "Move candidates through every hiring stage at a glance.",
				Icon:         "kanban",
				Category:     "pipeline",
				Benefits:     []string{"Drag and drop stages", "Per-stage counts"},
				IsFeatured:   true,
				DisplayOrder: 1,
			},
			{
				Title:        "Interview scheduling",
				Description:  "Plan interviews and collect structured feedback.",
				Icon:         "calendar",
				Category:     "interviews",
				Benefits:     []string{"Email reminders", "Scorecards"},
				IsFeatured:   true,
				DisplayOrder: 2,
			},
			{
				Title:        "Hiring analytics",
				Description:  "Track conversion, sources and time to hire.",
				Icon:         "chart",
				Category:     "analytics",
				Benefits:     []string{"Source effectiveness", "Monthly hires"},
				IsFeatured:   true,
				DisplayOrder: 3,
			},
		},
		Integrations: []dbmodels.Integration{
			{Name: "LinkedIn", Category: "sourcing", IsFeatured: true, DisplayOrder: 1},
			{Name: "Google Calendar", Category: "scheduling", IsFeatured: true, DisplayOrder: 2},
			{Name: "Slack", Category: "communication", IsFeatured: true, DisplayOrder: 3},
		},
		Faqs: []dbmodels.Faq{
			{
				Question:     "Can I import existing candidates?",
				Answer:       "Yes, candidates can be added one by one or migrated by our team on the Enterprise plan.",
				Category:     "general",
				IsActive:     true,
				DisplayOrder: 1,
			},
			{
				Question:     "Is there a free trial?",
				Answer:       "Every plan starts with a 14 day trial.",
				Category:     "billing",
				IsActive:     true,
				DisplayOrder: 2,
			},
		},
	}
}
