// Package goroutine wraps background goroutine launches with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"smartincident/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic in fn is logged with its stack
// under the given name instead of taking the process down; the notification
// worker runs under this so a bad email task cannot kill the server.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
