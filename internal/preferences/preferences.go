// Package preferences persists the owner's display preferences.
package preferences

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"inspilink/internal/storage"
)

// Preferences reads and writes the dark-mode flag, stored as "true" or "false".
type Preferences struct {
	kv              storage.KV
	defaultDarkMode bool
	log             logrus.FieldLogger
}

// New creates Preferences. defaultDarkMode is used while no valid value is
// stored.
func New(kv storage.KV, defaultDarkMode bool, logger logrus.FieldLogger) *Preferences {
	return &Preferences{
		kv:              kv,
		defaultDarkMode: defaultDarkMode,
		log:             logger.WithField("component", "preferences"),
	}
}

// DarkMode returns the stored flag. Read errors and malformed values yield
// the default.
func (p *Preferences) DarkMode(ctx context.Context) bool {
	raw, ok, err := p.kv.Get(ctx, storage.KeyDarkMode)
	if err != nil {
		p.log.WithError(err).Warn("Failed to read dark mode, using default")
		return p.defaultDarkMode
	}
	if !ok {
		return p.defaultDarkMode
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	p.log.WithField("value", raw).Warn("Malformed dark mode value, using default")
	return p.defaultDarkMode
}

// SetDarkMode stores the flag.
func (p *Preferences) SetDarkMode(ctx context.Context, on bool) error {
	if err := p.kv.Set(ctx, storage.KeyDarkMode, strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("failed to save dark mode: %w", err)
	}
	p.log.WithField("dark_mode", on).Info("Dark mode updated")
	return nil
}

// ToggleDarkMode flips the flag and returns the new value.
func (p *Preferences) ToggleDarkMode(ctx context.Context) (bool, error) {
	next := !p.DarkMode(ctx)
	if err := p.SetDarkMode(ctx, next); err != nil {
		return !next, err
	}
	return next, nil
}
