package configuration

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadVideoDefaults reads the per-error-kind default records. Keys are
// returned lower-cased, nested objects as maps. Keys holding null are
// dropped by viper and read back as absent.
func LoadVideoDefaults(path string) (map[string]map[string]interface{}, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read video defaults %s: %w", path, err)
	}

	defaults := make(map[string]map[string]interface{})
	for kind, raw := range v.AllSettings() {
		record, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("video defaults %s: entry %q is not an object", path, kind)
		}
		defaults[kind] = record
	}
	return defaults, nil
}
