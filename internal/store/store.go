// Package store defines persistence for labelled identifiers.
//
// Backends key records by the raw 16-byte big-endian value, so their natural
// key order matches ruuid.UUID.Compare and List needs no extra sorting work.
package store

import (
	"context"
	"errors"
	"slices"

	"github.com/Lzww0608/ruuid"
)

// ErrNotFound is returned when no record exists for an identifier.
var ErrNotFound = errors.New("store: record not found")

// MaxLabelLen bounds Record.Label in bytes.
const MaxLabelLen = 255

// ErrLabelTooLong is returned by Put when a label exceeds MaxLabelLen.
var ErrLabelTooLong = errors.New("store: label too long")

// Record is an identifier with a free-form label.
type Record struct {
	ID    ruuid.UUID
	Label string
}

// Store persists records. Implementations are safe for concurrent use.
type Store interface {
	// Put inserts or replaces the record for rec.ID.
	Put(ctx context.Context, rec Record) error
	// Get returns the record for id or ErrNotFound.
	Get(ctx context.Context, id ruuid.UUID) (Record, error)
	// Delete removes the record for id or returns ErrNotFound.
	Delete(ctx context.Context, id ruuid.UUID) error
	// List returns every record in identifier order.
	List(ctx context.Context) ([]Record, error)
	Close() error
}

// Validate checks the constraints shared by all backends.
func (r Record) Validate() error {
	if len(r.Label) > MaxLabelLen {
		return ErrLabelTooLong
	}
	return nil
}

// SortRecords orders records by identifier.
func SortRecords(recs []Record) {
	slices.SortFunc(recs, func(a, b Record) int {
		return a.ID.Compare(b.ID)
	})
}
