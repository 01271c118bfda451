package config

import (
	"os"
	"runtime"
	"strconv"
)

// MetricsTextfile is the default path for the Prometheus textfile written after
// a command. Set with the NODELIST_METRICS_TEXTFILE environment variable; empty
// disables the output.
func MetricsTextfile() string {
	return os.Getenv("NODELIST_METRICS_TEXTFILE")
}

// Jobs is the default number of scripts evaluated at once. Set with the
// NODELIST_JOBS environment variable; falls back to the number of CPUs.
func Jobs() int {
	n, err := strconv.Atoi(os.Getenv("NODELIST_JOBS"))
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}

	return n
}
