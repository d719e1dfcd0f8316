package domain

// SortOrder controls the ordering of the owner's collection.
type SortOrder string

const (
	SortNewest       SortOrder = "newest"
	SortOldest       SortOrder = "oldest"
	SortAlphabetical SortOrder = "alphabetical"
)

// FilterSpec is the current search/category/sort selection over the collection.
// It is never persisted.
type FilterSpec struct {
	SearchTerm     string
	ActiveCategory Category
	SortOrder      SortOrder
}

// DefaultFilter matches everything, newest first.
func DefaultFilter() FilterSpec {
	return FilterSpec{ActiveCategory: CategoryAll, SortOrder: SortNewest}
}

// Tab is the coarse pre-filter of the discover feed.
type Tab string

const (
	TabAll      Tab = "all"
	TabTrending Tab = "trending"
	TabNew      Tab = "new"
	TabPopular  Tab = "popular"
)

// FeedSort controls the ordering of the discover feed.
type FeedSort string

const (
	FeedSortRecent   FeedSort = "recent"
	FeedSortPopular  FeedSort = "popular"
	FeedSortTrending FeedSort = "trending"
)

// FeedSpec is the current selection over the discover feed. CategoryID is one
// of the discover category ids or "all".
type FeedSpec struct {
	Tab        Tab
	CategoryID string
	SearchTerm string
	SortOrder  FeedSort
}

// DefaultFeedSpec matches every item, most recent first.
func DefaultFeedSpec() FeedSpec {
	return FeedSpec{Tab: TabAll, CategoryID: FeedCategoryAll, SortOrder: FeedSortRecent}
}
