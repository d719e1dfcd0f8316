package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/sirupsen/logrus"
)

// ErrNoBrowser is returned when no browser executable can be found.
var ErrNoBrowser = errors.New("rod browser dependency not found")

var (
	descriptionSelectors = []string{
		`meta[name="description"]`,
		`meta[property="og:description"]`,
	}
	imageSelectors = []string{
		`meta[property="og:image"]`,
		`meta[name="twitter:image"]`,
	}
)

// RodScraper implements the Scraper interface using a headless browser.
type RodScraper struct {
	log     logrus.FieldLogger
	timeout time.Duration
}

// NewRodScraper creates a scraper that gives each page at most timeout to load.
func NewRodScraper(timeout time.Duration, logger logrus.FieldLogger) *RodScraper {
	return &RodScraper{
		log:     logger.WithField("component", "scraper"),
		timeout: timeout,
	}
}

// ScrapeMetadata launches a browser, loads url and reads its title,
// description and preview image.
func (s *RodScraper) ScrapeMetadata(ctx context.Context, url string) (meta Metadata, err error) {
	log := s.log.WithField("url", url)
	log.Info("Attempting to scrape metadata")

	path, exists := launcher.LookPath()
	if !exists {
		log.Error("Cannot find browser executable for rod")
		return Metadata{}, ErrNoBrowser
	}
	l := launcher.New().Bin(path)
	defer l.Cleanup()

	controlURL, err := l.Launch()
	if err != nil {
		log.WithError(err).Error("Failed to launch rod browser")
		return Metadata{}, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err = browser.Connect(); err != nil {
		log.WithError(err).Error("Failed to connect to rod browser")
		return Metadata{}, fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer func() {
		if closeErr := browser.Close(); closeErr != nil {
			log.WithError(closeErr).Error("Error closing rod browser instance")
		}
	}()

	pageCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	page, err := browser.Context(pageCtx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		log.WithError(err).Error("Failed to create rod page")
		return Metadata{}, fmt.Errorf("failed to create page: %w", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			log.WithError(closeErr).Debug("Error closing rod page")
		}
	}()

	if err = page.WaitLoad(); err != nil {
		if errors.Is(pageCtx.Err(), context.DeadlineExceeded) {
			log.WithError(pageCtx.Err()).Warn("Scraping timed out")
			return Metadata{}, fmt.Errorf("scraping timed out for %s: %w", url, pageCtx.Err())
		}
		log.WithError(err).Error("Failed to wait for page load")
		return Metadata{}, fmt.Errorf("failed waiting for page load: %w", err)
	}

	info, err := page.Info()
	if err != nil {
		log.WithError(err).Warn("Could not read page info")
	} else {
		meta.Title = cleanText(info.Title)
	}
	meta.Description = s.firstContent(page, descriptionSelectors)
	meta.Image = strings.TrimSpace(s.firstContent(page, imageSelectors))

	log.WithFields(logrus.Fields{
		"title":     meta.Title,
		"has_image": meta.Image != "",
	}).Info("Metadata scraping completed successfully")
	return meta, nil
}

// firstContent returns the first non-empty content attribute among the meta
// tags matched by selectors. Missing tags are not an error.
func (s *RodScraper) firstContent(page *rod.Page, selectors []string) string {
	for _, selector := range selectors {
		has, el, err := page.Has(selector)
		if err != nil {
			s.log.WithError(err).WithField("selector", selector).Warn("Error searching for meta tag")
			continue
		}
		if !has {
			continue
		}
		content, err := el.Attribute("content")
		if err != nil {
			s.log.WithError(err).WithField("selector", selector).Warn("Failed to get content attribute from meta tag")
			continue
		}
		if content != nil {
			if v := cleanText(*content); v != "" {
				return v
			}
		}
	}
	return ""
}

// cleanText collapses runs of whitespace into single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
