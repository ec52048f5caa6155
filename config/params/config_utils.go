package params

import (
	"sync"

	"github.com/mohae/deepcopy"
)

var estimatorConfig = DefaultEstimatorConfig()
var estimatorConfigLock sync.RWMutex

// ActiveEstimatorConfig retrieves the active estimator config.
func ActiveEstimatorConfig() *EstimatorConfig {
	estimatorConfigLock.RLock()
	defer estimatorConfigLock.RUnlock()
	return estimatorConfig
}

// OverrideEstimatorConfig by replacing the config. The preferred pattern is to
// call ActiveEstimatorConfig(), copy it, change the specific parameters, and
// then call OverrideEstimatorConfig(c). Arenas and fork choice instances
// created afterwards pick up the new configuration.
func OverrideEstimatorConfig(c *EstimatorConfig) {
	estimatorConfigLock.Lock()
	defer estimatorConfigLock.Unlock()
	estimatorConfig = c
}

// Copy returns a copy of the config object.
func (c *EstimatorConfig) Copy() *EstimatorConfig {
	config, ok := deepcopy.Copy(*c).(EstimatorConfig)
	if !ok {
		config = *c
	}
	return &config
}
