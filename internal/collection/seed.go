package collection

import (
	"time"

	"inspilink/internal/domain"
)

// DemoLinks returns the two links a fresh install starts with.
func DemoLinks() []domain.Link {
	return []domain.Link{
		{
			ID:          1,
			URL:         "https://tailwindcss.com",
			Title:       "Tailwind CSS - Rapidly build modern websites without ever leaving your HTML",
			Description: "A utility-first CSS framework packed with classes like flex, pt-4, text-center and rotate-90 that can be composed to build any design, directly in your markup.",
			Thumbnail:   "https://images.unsplash.com/photo-1682687982501-1e58ab814714?auto=format&fit=crop&w=1470&q=80",
			Category:    domain.CategoryDevelopment,
			Tags:        []string{"css", "framework", "frontend"},
			DateAdded:   time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			URL:         "https://react.dev",
			Title:       "React – A JavaScript library for building user interfaces",
			Description: "React makes it painless to create interactive UIs. Design simple views for each state in your application, and React will efficiently update and render just the right components when your data changes.",
			Thumbnail:   "https://images.unsplash.com/photo-1633356122102-3fe60d47b2d2?auto=format&fit=crop&w=1470&q=80",
			Category:    domain.CategoryDevelopment,
			Tags:        []string{"javascript", "framework", "frontend"},
			DateAdded:   time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}
