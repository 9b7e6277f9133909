package ruuid

import "github.com/google/uuid"

// FromGoogle converts a github.com/google/uuid value. Both types use the
// RFC 4122 byte order, so the conversion is a plain copy.
func FromGoogle(g uuid.UUID) UUID {
	return UUID(g)
}

// Google converts u to a github.com/google/uuid value.
func (u UUID) Google() uuid.UUID {
	return uuid.UUID(u)
}
