package discover

import (
	"time"

	"inspilink/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Seed returns the editorial content of the discover feed.
func Seed() []domain.ContentItem {
	return []domain.ContentItem{
		{
			ID:          1,
			Title:       "The Complete Guide to UX Research Methods",
			Description: "Learn how to choose and apply the right research methods for your product design challenges.",
			URL:         "https://example.com/ux-research-guide",
			Thumbnail:   "https://images.unsplash.com/photo-1581291518633-83b4ebd1d83e?auto=format&fit=crop&w=1470&q=80",
			Category:    "Design",
			Creator:     "UX Collective",
			SaveCount:   328,
			Featured:    true,
			Trending:    true,
			DateAdded:   day(2023, time.October, 15),
		},
		{
			ID:          2,
			Title:       "2023 Web Development Trends You Need to Know",
			Description: "Stay ahead of the curve with these emerging technologies and practices in web development.",
			URL:         "https://example.com/web-dev-trends-2023",
			Thumbnail:   "https://images.unsplash.com/photo-1547658719-da2b51169166?auto=format&fit=crop&w=1470&q=80",
			Category:    "Technology",
			Creator:     "Dev Community",
			SaveCount:   245,
			Featured:    true,
			Trending:    true,
			DateAdded:   day(2023, time.September, 28),
		},
		{
			ID:          3,
			Title:       "Personal Finance Dashboard: Track Your Spending",
			Description: "A simple yet powerful spreadsheet to visualize your finances and plan for the future.",
			URL:         "https://example.com/finance-dashboard",
			Thumbnail:   "https://images.unsplash.com/photo-1565514020179-026b92b4a0b5?auto=format&fit=crop&w=1470&q=80",
			Category:    "Finance",
			Creator:     "Personal Finance Club",
			SaveCount:   412,
			Trending:    true,
			DateAdded:   day(2023, time.October, 3),
		},
		{
			ID:          4,
			Title:       "30-Day Mindfulness Challenge: Improve Your Mental Health",
			Description: "Daily exercises to reduce stress, improve focus, and build resilience through mindfulness.",
			URL:         "https://example.com/mindfulness-challenge",
			Thumbnail:   "https://images.unsplash.com/photo-1506126613408-eca07ce68773?auto=format&fit=crop&w=1470&q=80",
			Category:    "Health",
			Creator:     "Mindful Living",
			SaveCount:   198,
			DateAdded:   day(2023, time.September, 10),
		},
		{
			ID:          5,
			Title:       "Hidden Gems of Southeast Asia: Off the Beaten Path",
			Description: "Discover breathtaking locations most tourists never see with this detailed travel guide.",
			URL:         "https://example.com/southeast-asia-gems",
			Thumbnail:   "https://images.unsplash.com/photo-1528181304800-259b08848526?auto=format&fit=crop&w=1470&q=80",
			Category:    "Travel",
			Creator:     "Wanderlust Journal",
			SaveCount:   287,
			Featured:    true,
			DateAdded:   day(2023, time.August, 22),
		},
		{
			ID:          6,
			Title:       "The Science of Learning: How to Study Effectively",
			Description: "Evidence-based techniques to learn faster, remember more, and achieve your educational goals.",
			URL:         "https://example.com/effective-learning",
			Thumbnail:   "https://images.unsplash.com/photo-1488190211105-8b0e65b80b4e?auto=format&fit=crop&w=1470&q=80",
			Category:    "Education",
			Creator:     "Learning Lab",
			SaveCount:   356,
			Trending:    true,
			DateAdded:   day(2023, time.September, 5),
		},
		{
			ID:          7,
			Title:       "Build a Morning Routine That Actually Works",
			Description: "Design a personalized morning ritual to boost productivity and wellbeing based on science.",
			URL:         "https://example.com/morning-routine",
			Thumbnail:   "https://images.unsplash.com/photo-1506368083636-6defb67639a7?auto=format&fit=crop&w=1470&q=80",
			Category:    "Productivity",
			Creator:     "Optimal Living",
			SaveCount:   423,
			Featured:    true,
			Trending:    true,
			DateAdded:   day(2023, time.October, 1),
		},
		{
			ID:          8,
			Title:       "Negotiation Skills: Get What You're Worth",
			Description: "Master the art of negotiation to advance your career and increase your compensation.",
			URL:         "https://example.com/negotiation-skills",
			Thumbnail:   "https://images.unsplash.com/photo-1556761175-b413da4baf72?auto=format&fit=crop&w=1470&q=80",
			Category:    "Career",
			Creator:     "Career Accelerator",
			SaveCount:   189,
			DateAdded:   day(2023, time.August, 15),
		},
		{
			ID:          9,
			Title:       "Responsive Design Patterns for Modern Web Apps",
			Description: "Best practices and code examples for creating fluid, device-agnostic user interfaces.",
			URL:         "https://example.com/responsive-design",
			Thumbnail:   "https://images.unsplash.com/photo-1493119508027-2b584f234d6c?auto=format&fit=crop&w=1470&q=80",
			Category:    "Design",
			Creator:     "Frontend Masters",
			SaveCount:   276,
			DateAdded:   day(2023, time.August, 30),
		},
		{
			ID:          10,
			Title:       "AI Tools for Everyday Productivity",
			Description: "How to leverage artificial intelligence to automate tasks and enhance your workflow.",
			URL:         "https://example.com/ai-productivity",
			Thumbnail:   "https://images.unsplash.com/photo-1620712943543-bcc4688e7485?auto=format&fit=crop&w=1470&q=80",
			Category:    "Technology",
			Creator:     "Future Proof",
			SaveCount:   315,
			Featured:    true,
			Trending:    true,
			DateAdded:   day(2023, time.September, 20),
		},
		{
			ID:          11,
			Title:       "Introduction to Index Fund Investing",
			Description: "A beginner's guide to building wealth through low-cost index funds and passive investing.",
			URL:         "https://example.com/index-investing",
			Thumbnail:   "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?auto=format&fit=crop&w=1470&q=80",
			Category:    "Finance",
			Creator:     "Smart Money",
			SaveCount:   392,
			Featured:    true,
			DateAdded:   day(2023, time.September, 15),
		},
		{
			ID:          12,
			Title:       "Home Office Setup for Maximum Productivity",
			Description: "Design an ergonomic and inspiring workspace that boosts focus and creativity.",
			URL:         "https://example.com/home-office-setup",
			Thumbnail:   "https://images.unsplash.com/photo-1505330622279-bf7d7fc918f4?auto=format&fit=crop&w=1470&q=80",
			Category:    "Productivity",
			Creator:     "Workspace Design",
			SaveCount:   214,
			Trending:    true,
			DateAdded:   day(2023, time.October, 10),
		},
	}
}
