package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a ULID in its canonical 26 character form. Every tracker entity
// (users, clients, projects, refresh tokens) is keyed by one.
type ID string

// Zero is the empty ID. It never identifies a stored row.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	once    sync.Once
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
)

func initEntropy() {
	entropy = ulid.Monotonic(rand.Reader, 0)
}

// New returns a new ULID stamped with the current UTC time. IDs generated
// within the same millisecond stay strictly increasing.
func New() ID {
	once.Do(initEntropy)

	mu.Lock()
	defer mu.Unlock()

	return ID(ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String())
}

// Parse validates s as a ULID and returns its canonical form. Path ids and
// the client and user ids of project bodies go through here, so any letter
// case resolves to the stored row.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}

	u, err := ulid.ParseStrict(s)
	if err != nil {
		return Zero, ErrInvalid
	}

	// Canonicalise casing so lookups match what New produced.
	return ID(u.String()), nil
}

// String returns the canonical string form.
func (id ID) String() string { return string(id) }
