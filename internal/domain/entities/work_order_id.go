package entities

import (
	"fmt"
	"time"
)

// SynthesizeWorkOrderID builds a display id from the last six digits of the
// millisecond clock. bump offsets the suffix so callers can retry on a
// collision.
func SynthesizeWorkOrderID(t time.Time, bump int) string {
	suffix := (t.UnixMilli() + int64(bump)) % 1_000_000
	if suffix < 0 {
		suffix = -suffix
	}
	return fmt.Sprintf("WO-%06d", suffix)
}
