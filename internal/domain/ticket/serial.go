package ticket

import (
	"context"
	"fmt"
)

// SerialAllocator hands out strictly increasing sequence values for a named
// counter. Next must be atomic with respect to concurrent callers: no value is
// ever handed out twice, and each call observes a value greater than all prior
// calls for the same name.
type SerialAllocator interface {
	Next(ctx context.Context, name string) (int64, error)
}

// FormatSerial renders a sequence value as the human-facing ticket serial.
func FormatSerial(n int64) string {
	return fmt.Sprintf("TKT-%06d", n)
}
