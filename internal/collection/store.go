// Package collection owns the owner's saved links and keeps them in sync with
// the persistence collaborator.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"inspilink/internal/domain"
	"inspilink/internal/storage"
)

// Store holds the saved links, most recent first. Every mutation rewrites the
// whole collection under storage.KeySavedLinks, so writes are O(n) in the
// collection size.
type Store struct {
	mu     sync.Mutex
	kv     storage.KV
	log    logrus.FieldLogger
	now    func() time.Time
	seed   []domain.Link
	links  []domain.Link
	lastID int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for ids and DateAdded.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSeed sets the links used when nothing usable is stored yet.
func WithSeed(links []domain.Link) Option {
	return func(s *Store) { s.seed = slices.Clone(links) }
}

// NewStore creates an empty store. Call Load to read persisted links.
func NewStore(kv storage.KV, logger logrus.FieldLogger, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		log: logger.WithField("component", "collection"),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the whole collection from storage and replaces the in-memory
// one. A missing, unreadable or malformed value never fails: it yields the
// seed, which is empty unless WithSeed was given.
func (s *Store) Load(ctx context.Context) []domain.Link {
	s.mu.Lock()
	defer s.mu.Unlock()

	links, err := s.read(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Stored links unusable, starting from seed")
		links = nil
	}
	if links == nil {
		links = slices.Clone(s.seed)
	}

	s.links = links
	s.lastID = 0
	for _, l := range links {
		s.lastID = max(s.lastID, l.ID)
	}

	s.log.WithField("link_count", len(links)).Info("Links loaded")
	return slices.Clone(s.links)
}

// read returns nil links without error when the key is absent.
func (s *Store) read(ctx context.Context) ([]domain.Link, error) {
	raw, ok, err := s.kv.Get(ctx, storage.KeySavedLinks)
	if err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var links []domain.Link
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return nil, fmt.Errorf("failed to unmarshal links: %w", err)
	}
	if links == nil {
		// "null" is as good as absent.
		return nil, nil
	}
	return links, nil
}

// Add admits a validated link at the front of the collection and persists
// the result. On a write failure the collection is left unchanged.
func (s *Store) Add(ctx context.Context, params domain.NewLinkParams) (domain.Link, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}

	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	link := domain.Link{
		ID:          id,
		URL:         params.URL,
		Title:       params.Title,
		Description: params.Description,
		Thumbnail:   params.Thumbnail,
		Category:    params.Category,
		Tags:        slices.Clone(tags),
		DateAdded:   now.UTC(),
	}

	next := make([]domain.Link, 0, len(s.links)+1)
	next = append(next, link)
	next = append(next, s.links...)

	log := s.log.WithFields(logrus.Fields{
		"id":  link.ID,
		"url": link.URL,
	})
	if err := s.write(ctx, next); err != nil {
		log.WithError(err).Error("Failed to persist new link")
		return domain.Link{}, err
	}

	s.links = next
	s.lastID = id
	log.Info("Link added")
	return link, nil
}

// Remove deletes the link with the given id. Removing an unknown id is a
// no-op and reports false.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField("id", id)

	idx := slices.IndexFunc(s.links, func(l domain.Link) bool { return l.ID == id })
	if idx < 0 {
		log.Debug("Remove of unknown link ignored")
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.links), idx, idx+1)
	if err := s.write(ctx, next); err != nil {
		log.WithError(err).Error("Failed to persist link removal")
		return false, err
	}

	s.links = next
	log.Info("Link removed")
	return true, nil
}

// All returns a copy of the collection, most recent first.
func (s *Store) All() []domain.Link {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.links)
}

// Get looks a link up by id.
func (s *Store) Get(id int64) (domain.Link, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.links {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Link{}, false
}

// Categories returns the distinct categories present in the collection, in
// order of first appearance.
func (s *Store) Categories() []domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Category
	for _, l := range s.links {
		if !slices.Contains(out, l.Category) {
			out = append(out, l.Category)
		}
	}
	return out
}

func (s *Store) write(ctx context.Context, links []domain.Link) error {
	b, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}
	if err := s.kv.Set(ctx, storage.KeySavedLinks, string(b)); err != nil {
		return fmt.Errorf("failed to save links: %w", err)
	}
	return nil
}
