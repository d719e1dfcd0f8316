// Package service ties validation, the simulated backend, the collection and
// notifications together into the actions the owner can take.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"inspilink/internal/collection"
	"inspilink/internal/domain"
	"inspilink/internal/form"
	"inspilink/internal/notify"
	"inspilink/internal/query"
	"inspilink/internal/scraper"
	"inspilink/internal/simulate"
)

var (
	// ErrSaveFailed wraps any failure after validation. The collection is
	// untouched when it is returned.
	ErrSaveFailed = errors.New("failed to save link")
	// ErrSaveInFlight is returned while another save is still running.
	ErrSaveInFlight = errors.New("a save is already in progress")
	// ErrNotFound is returned for an id that is not in the collection.
	ErrNotFound = errors.New("link not found")
)

// Links handles the owner's actions on their collection.
type Links struct {
	store    *collection.Store
	backend  *simulate.Latency
	notifier notify.Notifier
	scraper  scraper.Scraper
	log      logrus.FieldLogger

	saving atomic.Bool
}

// NewLinks creates the service. scr may be nil to disable metadata prefill.
func NewLinks(store *collection.Store, backend *simulate.Latency, notifier notify.Notifier, scr scraper.Scraper, logger logrus.FieldLogger) *Links {
	return &Links{
		store:    store,
		backend:  backend,
		notifier: notifier,
		scraper:  scr,
		log:      logger.WithField("component", "links_service"),
	}
}

// Save validates the form, waits for the simulated backend and admits the
// link. Validation failures come back as form.FieldErrors and are not
// notified: the caller shows them next to the fields.
func (s *Links) Save(ctx context.Context, fields form.Fields) (domain.Link, error) {
	if !s.saving.CompareAndSwap(false, true) {
		return domain.Link{}, ErrSaveInFlight
	}
	defer s.saving.Store(false)

	log := s.log.WithField("url", fields.URL)

	params, err := form.Validate(fields)
	if err != nil {
		log.WithError(err).Debug("Form rejected")
		return domain.Link{}, err
	}
	params = s.prefill(ctx, params)

	if err := s.backend.Wait(ctx); err != nil {
		log.WithError(err).Error("Simulated save failed")
		s.notifier.Notify(ctx, notify.Event{Kind: notify.Error, Message: notify.MsgLinkSaveFailed})
		return domain.Link{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	link, err := s.store.Add(ctx, params)
	if err != nil {
		s.notifier.Notify(ctx, notify.Event{Kind: notify.Error, Message: notify.MsgLinkSaveFailed})
		return domain.Link{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	s.notifier.Notify(ctx, notify.Event{Kind: notify.Success, Message: notify.MsgLinkSaved})
	return link, nil
}

// Saving reports whether a save is in progress.
func (s *Links) Saving() bool {
	return s.saving.Load()
}

// prefill fetches a missing description and the thumbnail from the page
// itself. Only validated forms get here, so a missing title is still
// reported. Scraper failures keep the form as entered.
func (s *Links) prefill(ctx context.Context, params domain.NewLinkParams) domain.NewLinkParams {
	if s.scraper == nil || params.Description != "" {
		return params
	}
	meta, err := s.scraper.ScrapeMetadata(ctx, params.URL)
	if err != nil {
		s.log.WithError(err).WithField("url", params.URL).Warn("Metadata prefill failed, continuing with form values")
		return params
	}
	params.Description = meta.Description
	params.Thumbnail = meta.Image
	return params
}

// Remove deletes a link. It reports false, without notifying, when no link
// has the given id.
func (s *Links) Remove(ctx context.Context, id int64) (bool, error) {
	removed, err := s.store.Remove(ctx, id)
	if err != nil {
		s.notifier.Notify(ctx, notify.Event{Kind: notify.Error, Message: notify.MsgSomethingFailed})
		return false, err
	}
	if removed {
		s.notifier.Notify(ctx, notify.Event{Kind: notify.Success, Message: notify.MsgLinkRemoved})
	}
	return removed, nil
}

// CopyURL returns the URL of a link for the clipboard.
func (s *Links) CopyURL(ctx context.Context, id int64) (string, error) {
	link, ok := s.store.Get(id)
	if !ok {
		return "", ErrNotFound
	}
	s.notifier.Notify(ctx, notify.Event{Kind: notify.Success, Message: notify.MsgURLCopied})
	return link.URL, nil
}

// List returns the collection narrowed and ordered by the filter.
func (s *Links) List(spec domain.FilterSpec) []domain.Link {
	return query.Apply(s.store.All(), spec)
}

// Categories returns the filter choices: All followed by every category
// present in the collection.
func (s *Links) Categories() []domain.Category {
	return append([]domain.Category{domain.CategoryAll}, s.store.Categories()...)
}

// Count returns the number of saved links.
func (s *Links) Count() int {
	return len(s.store.All())
}
