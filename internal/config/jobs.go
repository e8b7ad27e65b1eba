package config

import "runtime"

// Worker count resolution chain (highest priority first):
//   1. CLI flag (--jobs)
//   2. Environment variable (NUMFMT_JOBS)
//   3. Hardware estimation (this file)

// ApplyAdaptiveJobs fills in the stream-mode worker count when no explicit
// choice was made.
//
// The function only modifies a zero Jobs value, preserving any
// user-specified override via command-line flag or environment.
func ApplyAdaptiveJobs(cfg AppConfig) AppConfig {
	if cfg.Jobs == 0 {
		cfg.Jobs = EstimateStreamJobs()
	}
	return cfg
}

// EstimateStreamJobs provides a heuristic worker count for stream mode
// without measuring. Formatting one value is sub-microsecond work, so past
// a handful of workers the input scanner becomes the bottleneck and extra
// goroutines only add scheduling overhead.
func EstimateStreamJobs() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 8:
		return numCPU
	default:
		return 8
	}
}
