package bmssp

// runConfig holds the resolved configuration for one SSSP invocation.
type runConfig struct {
	enabled    []bool
	returnPred bool
	parallel   bool
	workers    int
}

// Option configures a Run or RunWithState call via the functional-options
// pattern, matching the caller-facing style of
// github.com/katalvlaran/lvlath's algorithm packages.
type Option func(*runConfig)

// WithEnabledMask gates edges with a parallel boolean mask (§3); a false
// entry makes the corresponding edge behave as absent for this call.
func WithEnabledMask(enabled []bool) Option {
	return func(c *runConfig) { c.enabled = enabled }
}

// WithPredecessors requests the predecessor array described in §3/§6.
// Without it, Run still computes predecessors internally but returns a nil
// predecessor slice.
func WithPredecessors() Option {
	return func(c *runConfig) { c.returnPred = true }
}

// WithParallel enables the optional intra-block parallel relaxation mode
// of §5, fanning a block's relaxation candidates out across workers
// goroutines before applying accepted improvements serially. workers < 1
// is treated as 1 (equivalent to the serial path).
func WithParallel(workers int) Option {
	return func(c *runConfig) {
		c.parallel = true
		c.workers = workers
	}
}

func newRunConfig(opts []Option) runConfig {
	cfg := runConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	return cfg
}
