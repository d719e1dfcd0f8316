package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

// BadgerKV implements the KV interface using BadgerDB.
type BadgerKV struct {
	db  *badger.DB
	log logrus.FieldLogger
}

// NewBadgerKV opens the database at the specified path.
// An empty path opens an in-memory database.
func NewBadgerKV(dbPath string, logger logrus.FieldLogger) (*BadgerKV, error) {
	opts := badger.DefaultOptions(dbPath)
	if dbPath == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = &badgerLogger{logger.WithField("component", "badgerdb")}

	db, err := badger.Open(opts)
	if err != nil {
		logger.WithError(err).Error("Failed to open BadgerDB")
		return nil, fmt.Errorf("failed to open badger db at %s: %w", dbPath, err)
	}
	logger.Info("BadgerDB opened successfully at path: ", dbPath)

	return &BadgerKV{
		db:  db,
		log: logger.WithField("component", "kv"),
	}, nil
}

// Close closes the BadgerDB database connection.
func (s *BadgerKV) Close() error {
	s.log.Info("Closing BadgerDB...")
	if err := s.db.Close(); err != nil {
		s.log.WithError(err).Error("Error closing BadgerDB")
		return err
	}
	s.log.Info("BadgerDB closed.")
	return nil
}

// Get reads the value stored under key.
func (s *BadgerKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		// The slice is only valid inside the transaction.
		b, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		value = string(b)
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("Failed to read key from BadgerDB")
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, overwriting any previous value.
func (s *BadgerKV) Set(ctx context.Context, key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(key), []byte(value)))
	})
	if err != nil {
		s.log.WithError(err).WithField("key", key).Error("Failed to write key to BadgerDB")
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	s.log.WithFields(logrus.Fields{
		"key":   key,
		"bytes": len(value),
	}).Debug("Key written")
	return nil
}

// RunGC periodically reclaims value log space until ctx is cancelled.
// Every write rewrites a whole value, so stale versions pile up quickly.
func (s *BadgerKV) RunGC(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			err := s.db.RunValueLogGC(0.7)
			switch {
			case err == nil:
				s.log.Info("BadgerDB GC completed successfully")
			case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
				s.log.Debug("BadgerDB GC: No rewrite needed")
			default:
				s.log.WithError(err).Error("BadgerDB GC failed")
			}
		case <-ctx.Done():
			s.log.Info("Stopping BadgerDB GC routine due to context cancellation")
			return
		}
	}
}

// badgerLogger adapts logrus.FieldLogger to Badger's logger interface.
type badgerLogger struct {
	logger logrus.FieldLogger
}

func (l *badgerLogger) Errorf(f string, v ...interface{}) {
	l.logger.Errorf(f, v...)
}
func (l *badgerLogger) Warningf(f string, v ...interface{}) {
	l.logger.Warningf(f, v...)
}
func (l *badgerLogger) Infof(f string, v ...interface{}) {
	l.logger.Infof(f, v...)
}
func (l *badgerLogger) Debugf(f string, v ...interface{}) {
	l.logger.Debugf(f, v...)
}
