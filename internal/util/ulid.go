package util

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropy     = ulid.Monotonic(rand.Reader, 0)
	entropyLock sync.Mutex
)

// NewSessionID generates a ULID for a session started at t.
// ULIDs sort by time, so ids of later sessions compare greater.
func NewSessionID(t time.Time) string {
	entropyLock.Lock()
	defer entropyLock.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// ValidSessionID checks if a string is a valid ULID.
func ValidSessionID(s string) bool {
	_, err := ulid.Parse(s)
	return err == nil
}

// ShortID returns the last 7 characters of an ID in lowercase.
func ShortID(id string) string {
	if len(id) <= 7 {
		return strings.ToLower(id)
	}
	return strings.ToLower(id[len(id)-7:])
}
