// Package lifecycle holds shared timeouts for process start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds fx OnStart/OnStop hooks such as DB pings and server shutdown.
	DefaultTimeout = 10 * time.Second
)
