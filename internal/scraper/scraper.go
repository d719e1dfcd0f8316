package scraper

import "context"

// Metadata is what a page says about itself.
type Metadata struct {
	Title       string
	Description string
	// Image is the preview image, usually og:image.
	Image string
}

// Scraper defines the interface for fetching metadata from a URL.
type Scraper interface {
	// ScrapeMetadata fetches the page at url and extracts its metadata.
	// Fields the page does not provide are left empty.
	ScrapeMetadata(ctx context.Context, url string) (Metadata, error)
}
