package params

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// UnmarshalConfig parses a yaml document on top of the default config.
// Unknown keys are rejected.
func UnmarshalConfig(data []byte) (*EstimatorConfig, error) {
	conf := DefaultEstimatorConfig()
	// To track if config name is defined inside config file.
	hasConfigName := false
	lines := strings.Split(string(data), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		// PRESET_BASE only selects the starting point, it is not a config field.
		if strings.HasPrefix(line, "PRESET_BASE") {
			if strings.Contains(line, "minimal") {
				conf = MinimalEstimatorConfig()
			}
			continue
		}
		kept = append(kept, line)
	}
	if err := yaml.UnmarshalStrict([]byte(strings.Join(kept, "\n")), conf); err != nil {
		return nil, errors.Wrap(err, "could not parse estimator config yaml")
	}
	if !hasConfigName {
		conf.ConfigName = "custom"
	}
	if conf.ParallelScoreThreshold < 0 || conf.ScoreCacheSize < 0 {
		return nil, errors.New("PARALLEL_SCORE_THRESHOLD and SCORE_CACHE_SIZE must not be negative")
	}
	return conf, nil
}

// LoadEstimatorConfigFile reads, parses and applies a yaml config file.
func LoadEstimatorConfigFile(fileName string) error {
	data, err := os.ReadFile(fileName) // #nosec G304
	if err != nil {
		return errors.Wrap(err, "could not read estimator config file")
	}
	conf, err := UnmarshalConfig(data)
	if err != nil {
		return err
	}
	log.Debugf("Config file values: %+v", conf)
	OverrideEstimatorConfig(conf)
	return nil
}

// ConfigToYaml outputs the config in the format accepted by UnmarshalConfig.
func ConfigToYaml(cfg *EstimatorConfig) []byte {
	lines := []string{}
	lines = append(lines, fmt.Sprintf("CONFIG_NAME: '%s'", cfg.ConfigName))
	lines = append(lines, fmt.Sprintf("FIRST_MESSAGE_ID: %d", cfg.FirstMessageID))
	lines = append(lines, fmt.Sprintf("MAX_DESCENT_STEPS: %d", cfg.MaxDescentSteps))
	lines = append(lines, fmt.Sprintf("PARALLEL_SCORE_THRESHOLD: %d", cfg.ParallelScoreThreshold))
	lines = append(lines, fmt.Sprintf("SCORE_CACHE_SIZE: %d", cfg.ScoreCacheSize))
	return []byte(strings.Join(lines, "\n"))
}
