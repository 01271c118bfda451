package config

import "time"

// Size constants.
const (
	KiB = 1 << 10
	MiB = 1 << 20
)

// Script execution defaults.
const (
	// DefaultMaxLineSize is the longest script line accepted by the interpreter.
	DefaultMaxLineSize = 64 * KiB
	// DefaultTimeout bounds a whole run. Zero means no limit.
	DefaultTimeout = time.Duration(0)
)
