package hashutil

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
)

var counter atomic.Uint64

// NewID creates a 7-character hex ID for a record of the given kind.
// Successive calls within one process never share a seed.
func NewID(kind string, at time.Time) string {
	n := counter.Add(1)
	seed := kind + "\x00" + strconv.FormatInt(at.UnixNano(), 10) + "\x00" +
		strconv.FormatInt(time.Now().UnixNano(), 10) + "\x00" + strconv.FormatUint(n, 10)
	return FromSeed(seed)
}

// FromSeed creates a deterministic 7-character hex ID from a seed string.
func FromSeed(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
