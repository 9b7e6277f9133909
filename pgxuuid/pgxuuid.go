// Package pgxuuid converts between ruuid.UUID and the pgx v5 pgtype.UUID
// used for PostgreSQL uuid columns. Both carry the same 16 big-endian bytes.
package pgxuuid

import (
	"errors"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Lzww0608/ruuid"
)

// ErrNull is returned when converting a NULL pgtype.UUID.
var ErrNull = errors.New("pgxuuid: uuid is NULL")

// To returns a valid pgtype.UUID holding id.
func To(id ruuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

// ToNullable is like To but maps ruuid.Nil to SQL NULL.
func ToNullable(id ruuid.UUID) pgtype.UUID {
	if id.IsNil() {
		return pgtype.UUID{}
	}
	return To(id)
}

// From converts v, returning ErrNull when v is not Valid.
func From(v pgtype.UUID) (ruuid.UUID, error) {
	if !v.Valid {
		return ruuid.Nil, ErrNull
	}
	return ruuid.UUID(v.Bytes), nil
}

// FromNullable converts v, mapping SQL NULL to ruuid.Nil.
func FromNullable(v pgtype.UUID) ruuid.UUID {
	if !v.Valid {
		return ruuid.Nil
	}
	return ruuid.UUID(v.Bytes)
}
