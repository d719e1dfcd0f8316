package bot

import (
	"fmt"
	"strconv"
	"strings"

	"inspilink/internal/domain"
	"inspilink/internal/form"
)

// parseCommand splits "/name@bot rest" into a lowercase name and the rest.
// ok is false for text that is not a command.
func parseCommand(text string) (name, args string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, rest, _ := strings.Cut(text[1:], " ")
	head, _, _ = strings.Cut(head, "@")
	if head == "" {
		return "", "", false
	}
	return strings.ToLower(head), strings.TrimSpace(rest), true
}

// parseArgs reads "key=value" pairs. Words without a known key continue the
// previous value, or the search term when nothing came before them, so
// "/list react hooks sort=oldest" searches for "react hooks".
func parseArgs(args string, keys ...string) (map[string]string, error) {
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}

	out := make(map[string]string)
	current := "q"
	for _, word := range strings.Fields(args) {
		if k, v, found := strings.Cut(word, "="); found {
			k = strings.ToLower(k)
			if !known[k] {
				return nil, fmt.Errorf("unknown option %q", k)
			}
			current = k
			out[k] = v
			continue
		}
		if out[current] == "" {
			out[current] = word
		} else {
			out[current] += " " + word
		}
	}
	return out, nil
}

// filterFromArgs builds the collection filter of /list.
func filterFromArgs(args string) (domain.FilterSpec, error) {
	opts, err := parseArgs(args, "q", "category", "sort")
	if err != nil {
		return domain.FilterSpec{}, err
	}

	spec := domain.DefaultFilter()
	spec.SearchTerm = opts["q"]

	if c := opts["category"]; c != "" && !strings.EqualFold(c, string(domain.CategoryAll)) {
		spec.ActiveCategory, _ = domain.CanonicalCategory(c)
	}

	if s := opts["sort"]; s != "" {
		switch order := domain.SortOrder(strings.ToLower(s)); order {
		case domain.SortNewest, domain.SortOldest, domain.SortAlphabetical:
			spec.SortOrder = order
		default:
			return domain.FilterSpec{}, fmt.Errorf("unknown sort %q, use newest, oldest or alphabetical", s)
		}
	}
	return spec, nil
}

// feedSpecFromArgs builds the discover selection of /discover.
func feedSpecFromArgs(args string) (domain.FeedSpec, error) {
	opts, err := parseArgs(args, "q", "tab", "category", "sort")
	if err != nil {
		return domain.FeedSpec{}, err
	}

	spec := domain.DefaultFeedSpec()
	spec.SearchTerm = opts["q"]

	if t := opts["tab"]; t != "" {
		switch tab := domain.Tab(strings.ToLower(t)); tab {
		case domain.TabAll, domain.TabTrending, domain.TabNew, domain.TabPopular:
			spec.Tab = tab
		default:
			return domain.FeedSpec{}, fmt.Errorf("unknown tab %q, use all, trending, new or popular", t)
		}
	}

	if c := opts["category"]; c != "" {
		spec.CategoryID = strings.ToLower(c)
	}

	if s := opts["sort"]; s != "" {
		switch order := domain.FeedSort(strings.ToLower(s)); order {
		case domain.FeedSortRecent, domain.FeedSortPopular, domain.FeedSortTrending:
			spec.SortOrder = order
		default:
			return domain.FeedSpec{}, fmt.Errorf("unknown sort %q, use recent, popular or trending", s)
		}
	}
	return spec, nil
}

// parseAddFields reads "url | title | category | description | tags".
// Missing trailing parts are left empty for the validator to report.
func parseAddFields(args string) form.Fields {
	parts := strings.SplitN(args, "|", 5)
	for len(parts) < 5 {
		parts = append(parts, "")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return form.Fields{
		URL:         parts[0],
		Title:       parts[1],
		Category:    parts[2],
		Description: parts[3],
		Tags:        parts[4],
	}
}

func parseID(args string) (int64, error) {
	args = strings.TrimPrefix(strings.TrimSpace(args), "#")
	id, err := strconv.ParseInt(args, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args)
	}
	return id, nil
}
