// Package params defines the tunables of the fork choice estimator.
package params

// EstimatorConfig contains the parameters shared by the message arena and the
// fork choice estimator.
type EstimatorConfig struct {
	ConfigName string `yaml:"CONFIG_NAME"`
	// FirstMessageID is the first id issued by a fresh arena sequence.
	FirstMessageID uint64 `yaml:"FIRST_MESSAGE_ID"`
	// MaxDescentSteps optionally caps both the GHOST descent and every
	// estimate chain walk. 0 leaves them unbounded; cycles are caught from
	// id order either way.
	MaxDescentSteps uint64 `yaml:"MAX_DESCENT_STEPS"`
	// ParallelScoreThreshold is the number of sibling candidates at which
	// child scores are computed concurrently. 0 disables parallel scoring.
	ParallelScoreThreshold int `yaml:"PARALLEL_SCORE_THRESHOLD"`
	// ScoreCacheSize bounds the estimate chain membership cache. 0 disables it.
	ScoreCacheSize int `yaml:"SCORE_CACHE_SIZE"`
}

// DefaultEstimatorConfig returns the configuration used unless overridden.
func DefaultEstimatorConfig() *EstimatorConfig {
	return defaultEstimatorConfig.Copy()
}

// MinimalEstimatorConfig runs everything sequentially and uncached.
func MinimalEstimatorConfig() *EstimatorConfig {
	return minimalEstimatorConfig.Copy()
}

var defaultEstimatorConfig = &EstimatorConfig{
	ConfigName:             ConfigNames[Default],
	FirstMessageID:         0,
	MaxDescentSteps:        0,
	ParallelScoreThreshold: 8,
	ScoreCacheSize:         1 << 16,
}

var minimalEstimatorConfig = &EstimatorConfig{
	ConfigName:             ConfigNames[Minimal],
	FirstMessageID:         0,
	MaxDescentSteps:        0,
	ParallelScoreThreshold: 0,
	ScoreCacheSize:         0,
}
