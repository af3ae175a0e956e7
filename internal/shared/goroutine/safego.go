// Package goroutine launches fire-and-forget goroutines with panic recovery.
// Notification sends and other best-effort side work must never take the
// request handler down with them.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"helpdesk/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic inside fn is recovered and logged
// with its stack trace under the given name.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.Errorw("background task panicked",
				"task", name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
		}()
		fn()
	}()
}
