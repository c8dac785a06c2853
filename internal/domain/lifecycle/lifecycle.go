// Package lifecycle holds shared timeouts for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
