// Package idx mints the opaque identifiers that are not database keys:
// request ids in logs and the sid of a session token.
package idx

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

// ID is a ULID in canonical string form.
type ID string

// New returns an ID for now. ulid.Make is monotonic within a millisecond and
// safe for concurrent use.
func New() ID {
	return ID(ulid.Make().String())
}

// Parse accepts only canonical ULIDs, so untrusted input such as an inbound
// X-Request-ID header never ends up in the logs verbatim.
func Parse(s string) (ID, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return "", ErrInvalid
	}
	return ID(u.String()), nil
}

func (id ID) String() string { return string(id) }

// Issued is the time encoded in id; the zero time when id is malformed.
func (id ID) Issued() time.Time {
	u, err := ulid.ParseStrict(string(id))
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}
