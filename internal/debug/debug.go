package debug

import (
	"fmt"
	"log"
	"time"
)

// Output logs a trace line when tracing is enabled for the request.
func Output(enabled bool, format string, args ...interface{}) {
	if !enabled {
		return
	}
	log.Printf("[%s] %s", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Timing logs the duration of an operation when tracing is enabled.
// Call the returned function when the operation completes, typically
// via defer.
func Timing(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	Output(enabled, "starting: %s", operation)

	return func() {
		Output(enabled, "completed: %s (took %v)", operation, time.Since(start))
	}
}
