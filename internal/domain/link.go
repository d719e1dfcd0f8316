package domain

import (
	"strings"
	"time"
)

// Link represents a single saved bookmark in the owner's collection.
type Link struct {
	// ID is unique within the collection. It is the creation time in
	// milliseconds, bumped when two links are created in the same millisecond.
	ID int64 `json:"id"`

	// URL always carries a scheme once the link passed validation.
	URL string `json:"url"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Thumbnail is an optional preview image. It may be empty or broken;
	// renderers substitute their own fallback.
	Thumbnail string `json:"thumbnail,omitempty"`

	Category Category `json:"category"`

	// Tags keep the order they were entered in. Duplicates are allowed.
	Tags []string `json:"tags"`

	// DateAdded is set once when the link is admitted and never changes.
	DateAdded time.Time `json:"dateAdded"`
}

// Category is the closed set offered by the add-link form.
type Category string

const (
	CategoryDevelopment   Category = "Development"
	CategoryDesign        Category = "Design"
	CategoryMarketing     Category = "Marketing"
	CategoryFinance       Category = "Finance"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryTravel        Category = "Travel"
	CategoryEntertainment Category = "Entertainment"

	// CategoryAll is the filter sentinel that matches every category.
	CategoryAll Category = "All"
)

// Categories lists the form categories in display order.
var Categories = []Category{
	CategoryDevelopment,
	CategoryDesign,
	CategoryMarketing,
	CategoryFinance,
	CategoryHealth,
	CategoryEducation,
	CategoryTravel,
	CategoryEntertainment,
}

// CanonicalCategory returns the known category matching name case-insensitively.
func CanonicalCategory(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return Category(name), false
}

// NewLinkParams holds a validated candidate ready to be admitted to a collection.
// ID and DateAdded are assigned by the collection.
type NewLinkParams struct {
	URL         string
	Title       string
	Description string
	Thumbnail   string
	Category    Category
	Tags        []string
}
