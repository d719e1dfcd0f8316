// Package query derives the displayed subset of links and discover items from
// the current filter selection. Every function here is pure: inputs are never
// modified and a fresh slice is always returned.
package query

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"inspilink/internal/domain"
)

// Apply filters links by search term, then by category, then sorts them.
// An empty ActiveCategory behaves like domain.CategoryAll. Unknown sort
// orders keep the filtered order.
func Apply(links []domain.Link, spec domain.FilterSpec) []domain.Link {
	term := normalizeTerm(spec.SearchTerm)

	out := make([]domain.Link, 0, len(links))
	for _, l := range links {
		if !matchesLink(l, term) {
			continue
		}
		if spec.ActiveCategory != "" && spec.ActiveCategory != domain.CategoryAll && l.Category != spec.ActiveCategory {
			continue
		}
		out = append(out, l)
	}

	switch spec.SortOrder {
	case domain.SortNewest:
		slices.SortStableFunc(out, func(a, b domain.Link) int {
			return b.DateAdded.Compare(a.DateAdded)
		})
	case domain.SortOldest:
		slices.SortStableFunc(out, func(a, b domain.Link) int {
			return a.DateAdded.Compare(b.DateAdded)
		})
	case domain.SortAlphabetical:
		// Collators keep internal buffers and are not safe to share.
		c := collate.New(language.English)
		slices.SortStableFunc(out, func(a, b domain.Link) int {
			return c.CompareString(a.Title, b.Title)
		})
	}
	return out
}

func matchesLink(l domain.Link, term string) bool {
	if term == "" {
		return true
	}
	if contains(l.Title, term) || contains(l.Description, term) {
		return true
	}
	return slices.ContainsFunc(l.Tags, func(tag string) bool { return contains(tag, term) })
}

// ApplyFeed narrows the discover feed by tab, category and search term, then
// sorts it. The "new" tab keeps only the NewTabLimit most recent items.
func ApplyFeed(items []domain.ContentItem, spec domain.FeedSpec) []domain.ContentItem {
	out := slices.Clone(items)
	if out == nil {
		out = []domain.ContentItem{}
	}

	switch spec.Tab {
	case domain.TabTrending:
		out = slices.DeleteFunc(out, func(it domain.ContentItem) bool { return !it.Trending })
	case domain.TabNew:
		sortRecent(out)
		if len(out) > NewTabLimit {
			out = out[:NewTabLimit]
		}
	case domain.TabPopular:
		sortPopular(out)
	}

	if id := spec.CategoryID; id != "" && id != domain.FeedCategoryAll {
		// An unknown category id matches nothing.
		cat, ok := domain.LookupFeedCategory(id)
		out = slices.DeleteFunc(out, func(it domain.ContentItem) bool {
			return !ok || !strings.EqualFold(it.Category, cat.Name)
		})
	}

	if term := normalizeTerm(spec.SearchTerm); term != "" {
		out = slices.DeleteFunc(out, func(it domain.ContentItem) bool {
			return !(contains(it.Title, term) ||
				contains(it.Description, term) ||
				contains(it.Category, term) ||
				contains(it.Creator, term))
		})
	}

	switch spec.SortOrder {
	case domain.FeedSortRecent:
		sortRecent(out)
	case domain.FeedSortPopular:
		sortPopular(out)
	}
	return out
}

// NewTabLimit is how many items the "new" tab shows.
const NewTabLimit = 6

func sortRecent(items []domain.ContentItem) {
	slices.SortStableFunc(items, func(a, b domain.ContentItem) int {
		return b.DateAdded.Compare(a.DateAdded)
	})
}

func sortPopular(items []domain.ContentItem) {
	slices.SortStableFunc(items, func(a, b domain.ContentItem) int {
		return cmp.Compare(b.SaveCount, a.SaveCount)
	})
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// contains reports whether the lowercased term occurs in s, ignoring case.
func contains(s, term string) bool {
	return strings.Contains(strings.ToLower(s), term)
}
