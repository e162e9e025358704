package queue

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/badger/v4"

	"github.com/sitewright/sitewright/internal/domain"
)

// BadgerQueue is a durable Queue backed by BadgerDB. Pending manifests
// survive a crashed or interrupted build: if the process dies before
// ClearProcessed commits, the whole batch is reprocessed on the next
// invocation, which is safe because artifact writes are idempotent.
type BadgerQueue struct {
	db *badger.DB
}

// BadgerOptions contains options for opening the durable queue
type BadgerOptions struct {
	Directory string
	InMemory  bool
	Logger    bool
}

// NewBadgerQueue opens the durable queue. Badger holds a directory lock,
// and during a dev-session restart the old process may still hold it, so
// opening retries briefly with exponential backoff.
func NewBadgerQueue(opts BadgerOptions) (*BadgerQueue, error) {
	var badgerOpts badger.Options

	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Directory == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			opts.Directory = homeDir + "/.sitewright/queue"
		}

		if err := os.MkdirAll(opts.Directory, 0755); err != nil {
			return nil, err
		}

		badgerOpts = badger.DefaultOptions(opts.Directory)
	}

	if !opts.Logger {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	var db *badger.DB
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = 5 * time.Second

	err := backoff.Retry(func() error {
		var openErr error
		db, openErr = badger.Open(badgerOpts)
		return openErr
	}, b)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest queue: %w", err)
	}

	return &BadgerQueue{db: db}, nil
}

// Enqueue adds a pending manifest
func (q *BadgerQueue) Enqueue(m domain.PendingManifest) error {
	value, err := json.Marshal(m)
	if err != nil {
		return err
	}

	key := []byte(Key(m.PluginName, m.ManifestID))
	return q.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// SnapshotPending returns the pending entries in key order
func (q *BadgerQueue) SnapshotPending() ([]domain.PendingManifest, error) {
	var pending []domain.PendingManifest

	err := q.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(pendingPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var m domain.PendingManifest
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &m)
			})
			if err != nil {
				return err
			}
			pending = append(pending, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return pending, nil
}

// ClearProcessed removes exactly the given entries in one write batch.
// The deletes commit together, so a batch is never half-cleared.
func (q *BadgerQueue) ClearProcessed(batch []domain.PendingManifest) error {
	if len(batch) == 0 {
		return nil
	}

	wb := q.db.NewWriteBatch()
	defer wb.Cancel()

	for _, m := range batch {
		if err := wb.Delete([]byte(Key(m.PluginName, m.ManifestID))); err != nil {
			return err
		}
	}

	return wb.Flush()
}

// Close releases the underlying store
func (q *BadgerQueue) Close() error {
	return q.db.Close()
}
