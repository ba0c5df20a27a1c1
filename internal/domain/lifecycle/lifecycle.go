// Package lifecycle holds process-wide lifecycle constants shared by fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks (database ping, server shutdown, publisher flush).
const DefaultTimeout = 10 * time.Second
