package params

import "testing"

// SetupTestConfigCleanup preserves the active config and restores it once
// the test finishes, so tests may call OverrideEstimatorConfig freely.
func SetupTestConfigCleanup(t testing.TB) {
	prev := ActiveEstimatorConfig().Copy()
	t.Cleanup(func() {
		OverrideEstimatorConfig(prev)
	})
}
