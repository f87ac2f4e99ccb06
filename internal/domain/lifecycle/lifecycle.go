// Package lifecycle holds shared timing constants for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (database ping, server shutdown).
const DefaultTimeout = 10 * time.Second
