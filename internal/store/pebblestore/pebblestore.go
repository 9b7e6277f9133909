// Package pebblestore is a store.Store backed by an embedded Pebble database.
//
// Keys are the raw 16 bytes of the identifier and values are labels. Pebble's
// default bytewise comparer therefore iterates records in identifier order.
package pebblestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"go.uber.org/zap"

	"github.com/Lzww0608/ruuid"
	"github.com/Lzww0608/ruuid/internal/store"
)

// Options configures the Pebble store.
type Options struct {
	// DataDir is the path to the Pebble database directory.
	DataDir string
	// Sync forces a WAL sync on every write.
	Sync bool
	// FS overrides the filesystem, e.g. vfs.NewMem() in tests. Optional.
	FS vfs.FS
	// Logger receives debug output. Optional.
	Logger *zap.Logger
}

// Store wraps a Pebble database instance.
type Store struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
	logger    *zap.Logger
}

var _ store.Store = (*Store)(nil)

// Open creates or opens a Pebble database with the provided options.
func Open(opts Options) (*Store, error) {
	if opts.DataDir == "" {
		return nil, errors.New("pebblestore: Options.DataDir is required")
	}

	po := &pebble.Options{}
	if opts.FS != nil {
		po.FS = opts.FS
	}

	db, err := pebble.Open(opts.DataDir, po)
	if err != nil {
		return nil, fmt.Errorf("pebblestore: open %s: %w", opts.DataDir, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	writeOpts := pebble.NoSync
	if opts.Sync {
		writeOpts = pebble.Sync
	}

	logger.Debug("opened pebble store", zap.String("dir", opts.DataDir), zap.Bool("sync", opts.Sync))

	return &Store{db: db, writeOpts: writeOpts, logger: logger}, nil
}

// Put stores rec.Label under rec.ID, replacing any previous label.
func (s *Store) Put(ctx context.Context, rec store.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if err := s.db.Set(rec.ID[:], []byte(rec.Label), s.writeOpts); err != nil {
		return fmt.Errorf("pebblestore: put %s: %w", rec.ID, err)
	}
	s.logger.Debug("put record", zap.Stringer("id", rec.ID))
	return nil
}

// Get copies the label stored for id.
func (s *Store) Get(ctx context.Context, id ruuid.UUID) (store.Record, error) {
	if err := ctx.Err(); err != nil {
		return store.Record{}, err
	}
	val, closer, err := s.db.Get(id[:])
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return store.Record{}, store.ErrNotFound
		}
		return store.Record{}, fmt.Errorf("pebblestore: get %s: %w", id, err)
	}
	defer closer.Close()
	return store.Record{ID: id, Label: string(val)}, nil
}

// Delete removes the record for id.
func (s *Store) Delete(ctx context.Context, id ruuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.db.Delete(id[:], s.writeOpts); err != nil {
		return fmt.Errorf("pebblestore: delete %s: %w", id, err)
	}
	s.logger.Debug("deleted record", zap.Stringer("id", id))
	return nil
}

// List scans every key in order.
func (s *Store) List(ctx context.Context) ([]store.Record, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, fmt.Errorf("pebblestore: new iterator: %w", err)
	}
	defer iter.Close()

	var recs []store.Record
	for iter.First(); iter.Valid(); iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		id, err := ruuid.FromBytes(iter.Key())
		if err != nil {
			return nil, fmt.Errorf("pebblestore: corrupt key %x: %w", iter.Key(), err)
		}
		recs = append(recs, store.Record{ID: id, Label: string(iter.Value())})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("pebblestore: iterate: %w", err)
	}
	return recs, nil
}

// Close closes the Pebble database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
