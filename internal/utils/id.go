package utils

import (
	"math/rand/v2"
	"strconv"
	"time"
)

// NewRecordID returns an opaque record identifier: two random base-36
// fragments followed by the base-36 millisecond timestamp. It is unique
// without coordination but not unpredictable.
func NewRecordID() string {
	return newRecordID(time.Now())
}

func newRecordID(now time.Time) string {
	return randomBase36() + randomBase36() + strconv.FormatInt(now.UnixMilli(), 36)
}

// randomBase36 yields up to 13 base-36 characters, the width of a 64-bit
// value in base 36 minus its leading digit.
func randomBase36() string {
	s := strconv.FormatUint(rand.Uint64(), 36)
	if len(s) > 11 {
		s = s[:11]
	}
	return s
}
