package params

const (
	Default ConfigName = iota
	Minimal
)

// ConfigNames provides the names of the built in configurations.
var ConfigNames = map[ConfigName]string{
	Default: "default",
	Minimal: "minimal",
}

// ConfigName enum describes a built in configuration.
type ConfigName int

func (n ConfigName) String() string {
	s, ok := ConfigNames[n]
	if !ok {
		return "undefined"
	}
	return s
}

// AllConfigs returns a copy of every built in configuration keyed by name.
func AllConfigs() map[ConfigName]*EstimatorConfig {
	all := make(map[ConfigName]*EstimatorConfig)
	for name := range ConfigNames {
		switch name {
		case Default:
			all[name] = DefaultEstimatorConfig()
		case Minimal:
			all[name] = MinimalEstimatorConfig()
		}
	}
	return all
}
