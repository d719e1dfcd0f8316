package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"inspilink/internal/domain"
	"inspilink/internal/notify"
)

// maxMessageLen stays below Telegram's 4096 character limit.
const maxMessageLen = 4000

const dateLayout = "Jan 2, 2006"

const helpText = `/add url | title | category | description | tags
/list [search] [category=Design] [sort=newest|oldest|alphabetical]
/remove <id>
/copy <id>
/discover [search] [tab=all|trending|new|popular] [category=design] [sort=recent|popular|trending]
/item <item id>
/save <item id>
/categories
/darkmode`

func renderHome(linkCount int, saving, darkMode bool, featured []domain.ContentItem) string {
	var b strings.Builder
	b.WriteString("InspiLink\nSave, organize and discover links that inspire you.\n\n")

	theme := "light"
	if darkMode {
		theme = "dark"
	}
	fmt.Fprintf(&b, "Your collection: %d %s\n", linkCount, plural(linkCount, "link", "links"))
	if saving {
		b.WriteString("Saving a link...\n")
	}
	fmt.Fprintf(&b, "Theme: %s\n", theme)

	if len(featured) > 0 {
		b.WriteString("\nDiscover Inspiration\n")
		for _, it := range featured {
			fmt.Fprintf(&b, "#%d %s (%s)\n", it.ID, it.Title, it.Creator)
		}
	}

	b.WriteString("\n")
	b.WriteString(helpText)
	return b.String()
}

func renderNotFound() string {
	return "404 Page Not Found\n\nThe page you're looking for doesn't exist or has been moved. " +
		"You'll be redirected to the home page in a few seconds."
}

func renderLink(l domain.Link) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\n%s\n%s · %s", l.ID, l.Title, l.URL, l.Category, l.DateAdded.Format(dateLayout))
	if l.Description != "" {
		b.WriteString("\n" + l.Description)
	}
	if len(l.Tags) > 0 {
		b.WriteString("\nTags: " + strings.Join(l.Tags, ", "))
	}
	return b.String()
}

// renderLinks renders the filtered collection. total is the unfiltered size,
// which decides between the two empty states.
func renderLinks(links []domain.Link, total int) string {
	if len(links) == 0 {
		if total == 0 {
			return "No links found\n\nYou haven't saved any links yet. Use /add to save your first one."
		}
		return "No links found\n\nNo links match your current search or filters. Try adjusting your criteria."
	}

	cards := make([]string, 0, len(links)+1)
	cards = append(cards, fmt.Sprintf("My Link Collection (%d of %d)", len(links), total))
	for _, l := range links {
		cards = append(cards, renderLink(l))
	}
	return strings.Join(cards, "\n\n")
}

func renderItem(it domain.ContentItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\nby %s · %s · %d %s", it.ID, it.Title, it.Creator, categoryName(it.Category),
		it.SaveCount, plural(it.SaveCount, "save", "saves"))
	if it.Trending {
		b.WriteString(" · trending")
	}
	if it.Saved {
		b.WriteString(" · saved")
	}
	fmt.Fprintf(&b, "\n%s\n%s", it.URL, it.Description)
	return b.String()
}

func renderFeed(items []domain.ContentItem, spec domain.FeedSpec) string {
	if len(items) == 0 {
		if spec.SearchTerm != "" {
			return "No content found\n\nNo results match your search. Try different keywords."
		}
		return "No content found\n\nNo content available in this category right now."
	}

	cards := make([]string, 0, len(items)+1)
	cards = append(cards, fmt.Sprintf("Explore Curated Content (%d)", len(items)))
	for _, it := range items {
		cards = append(cards, renderItem(it))
	}
	return strings.Join(cards, "\n\n")
}

// renderCategories lists the categories of the collection followed by the
// discover categories with the ids /discover accepts.
func renderCategories(present []domain.Category) string {
	var b strings.Builder
	b.WriteString("Filter by Category\n")
	for _, c := range present {
		b.WriteString("• " + string(c) + "\n")
	}
	b.WriteString("\nBrowse by Category\n")
	for _, c := range domain.FeedCategories {
		fmt.Fprintf(&b, "• %s (category=%s)\n", c.Name, c.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

// fieldOrder is the order fields appear in on the add-link form.
var fieldOrder = []string{"url", "title", "category", "description", "tags"}

// renderFieldErrors lists one message per failing field. A category error
// also lists the accepted categories, since chat has no dropdown.
func renderFieldErrors(fe map[string]string) string {
	var b strings.Builder
	b.WriteString("Please fix the following:")
	for _, f := range fieldOrder {
		if msg, ok := fe[f]; ok {
			b.WriteString("\n• " + msg)
		}
	}
	if _, ok := fe["category"]; ok {
		names := make([]string, len(domain.Categories))
		for i, c := range domain.Categories {
			names[i] = string(c)
		}
		b.WriteString("\n\nCategories: " + strings.Join(names, ", "))
	}
	return b.String()
}

func renderEvent(ev notify.Event) string {
	switch ev.Kind {
	case notify.Success:
		return "✅ " + ev.Message
	case notify.Error:
		return "⚠️ " + ev.Message
	default:
		return "ℹ️ " + ev.Message
	}
}

func categoryName(id string) string {
	if c, ok := domain.LookupFeedCategory(id); ok {
		return c.Name
	}
	return id
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// chunk splits text on blank lines into messages no longer than limit.
// A single paragraph longer than limit is cut hard.
func chunk(text string, limit int) []string {
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		for len(para) > limit {
			flush()
			cut := limit
			for cut > 0 && !utf8.RuneStart(para[cut]) {
				cut--
			}
			out = append(out, para[:cut])
			para = para[cut:]
		}
		if cur.Len() > 0 && cur.Len()+2+len(para) > limit {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(para)
	}
	flush()
	return out
}
