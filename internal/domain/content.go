package domain

import (
	"strings"
	"time"
)

// ContentItem is an entry of the read-only discover feed.
type ContentItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
	Creator     string    `json:"creator"`
	SaveCount   int       `json:"saveCount"`
	Featured    bool      `json:"featured"`
	Trending    bool      `json:"trending"`
	Saved       bool      `json:"saved"`
	DateAdded   time.Time `json:"dateAdded"`
}

// FeedCategory is a discover category. The discover feed keeps its own list,
// which overlaps with but is not the same as the form categories.
type FeedCategory struct {
	ID   string
	Name string
}

// FeedCategoryAll is the id that matches every discover category.
const FeedCategoryAll = "all"

// FeedCategories lists the discover categories in display order.
var FeedCategories = []FeedCategory{
	{ID: "design", Name: "Design"},
	{ID: "technology", Name: "Technology"},
	{ID: "finance", Name: "Finance"},
	{ID: "health", Name: "Health"},
	{ID: "travel", Name: "Travel"},
	{ID: "education", Name: "Education"},
	{ID: "productivity", Name: "Productivity"},
	{ID: "career", Name: "Career"},
}

// LookupFeedCategory finds a discover category by id, case-insensitively.
func LookupFeedCategory(id string) (FeedCategory, bool) {
	for _, c := range FeedCategories {
		if strings.EqualFold(c.ID, strings.TrimSpace(id)) {
			return c, true
		}
	}
	return FeedCategory{}, false
}
