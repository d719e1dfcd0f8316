// Package discover serves the read-only, editorially seeded discover feed.
package discover

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"inspilink/internal/domain"
	"inspilink/internal/notify"
	"inspilink/internal/simulate"
)

// Errors returned by Feed. ErrLoadFailed and ErrToggleFailed wrap the
// simulated failure and leave the feed unchanged.
var (
	ErrLoadFailed   = errors.New("failed to load content")
	ErrToggleFailed = errors.New("failed to toggle saved state")
	ErrNotFound     = errors.New("content item not found")
	// ErrBusy is returned while a toggle for the same item is still running.
	ErrBusy = errors.New("content item is already being updated")
)

// Feed holds the discover items. Only the saved flag and save count of an
// item ever change, and only in memory.
type Feed struct {
	mu       sync.Mutex
	items    []domain.ContentItem
	inFlight map[int64]bool

	fetch    *simulate.Latency
	toggle   *simulate.Latency
	notifier notify.Notifier
	log      logrus.FieldLogger
}

// NewFeed creates a feed over items. fetch and toggle simulate the remote
// calls behind Fetch and ToggleSave.
func NewFeed(items []domain.ContentItem, fetch, toggle *simulate.Latency, notifier notify.Notifier, logger logrus.FieldLogger) *Feed {
	return &Feed{
		items:    slices.Clone(items),
		inFlight: make(map[int64]bool),
		fetch:    fetch,
		toggle:   toggle,
		notifier: notifier,
		log:      logger.WithField("component", "discover"),
	}
}

// Fetch returns a copy of all items after the simulated load delay.
func (f *Feed) Fetch(ctx context.Context) ([]domain.ContentItem, error) {
	if err := f.fetch.Wait(ctx); err != nil {
		f.log.WithError(err).Error("Error fetching content")
		f.notifier.Notify(ctx, notify.Event{Kind: notify.Error, Message: notify.MsgContentFailed})
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.log.WithField("item_count", len(f.items)).Debug("Content fetched")
	return slices.Clone(f.items), nil
}

// ToggleSave flips the saved state of an item after the simulated delay.
// Saving bumps the save count; unsaving lowers it, never below zero.
// A toggle already running for the same item is rejected with ErrBusy.
func (f *Feed) ToggleSave(ctx context.Context, id int64) (domain.ContentItem, error) {
	log := f.log.WithField("item_id", id)

	f.mu.Lock()
	if slices.IndexFunc(f.items, func(it domain.ContentItem) bool { return it.ID == id }) < 0 {
		f.mu.Unlock()
		return domain.ContentItem{}, ErrNotFound
	}
	if f.inFlight[id] {
		f.mu.Unlock()
		log.Debug("Toggle already in flight")
		return domain.ContentItem{}, ErrBusy
	}
	f.inFlight[id] = true
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.inFlight, id)
		f.mu.Unlock()
	}()

	if err := f.toggle.Wait(ctx); err != nil {
		log.WithError(err).Error("Failed to toggle saved state")
		f.notifier.Notify(ctx, notify.Event{Kind: notify.Error, Message: notify.MsgSomethingFailed})
		return domain.ContentItem{}, fmt.Errorf("%w: %w", ErrToggleFailed, err)
	}

	f.mu.Lock()
	idx := slices.IndexFunc(f.items, func(it domain.ContentItem) bool { return it.ID == id })
	it := &f.items[idx]
	it.Saved = !it.Saved
	if it.Saved {
		it.SaveCount++
	} else {
		it.SaveCount = max(0, it.SaveCount-1)
	}
	updated := *it
	f.mu.Unlock()

	log.WithFields(logrus.Fields{
		"saved":      updated.Saved,
		"save_count": updated.SaveCount,
	}).Info("Saved state toggled")

	if updated.Saved {
		f.notifier.Notify(ctx, notify.Event{Kind: notify.Success, Message: notify.MsgItemSaved})
	} else {
		f.notifier.Notify(ctx, notify.Event{Kind: notify.Info, Message: notify.MsgItemUnsaved})
	}
	return updated, nil
}

// Featured returns the items flagged as featured, in feed order.
func (f *Feed) Featured() []domain.ContentItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.ContentItem
	for _, it := range f.items {
		if it.Featured {
			out = append(out, it)
		}
	}
	return out
}

// Get looks an item up by id.
func (f *Feed) Get(id int64) (domain.ContentItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range f.items {
		if it.ID == id {
			return it, true
		}
	}
	return domain.ContentItem{}, false
}
