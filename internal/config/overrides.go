package config

import (
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/macrokit/dsge/internal/logging"
)

// ParameterOverride is a single parameter-value override entry.
type ParameterOverride struct {
	// Name is the parameter name as registered on the model.
	Name string `yaml:"name"`

	// Value is the bounded (economic-scale) value to set.
	Value float64 `yaml:"value"`
}

// ParseParameterOverrides parses a YAML payload of parameter overrides.
// Invalid entries are skipped with a log line rather than failing the whole
// payload; duplicate names keep the first entry.
func ParseParameterOverrides(payload []byte) ([]ParameterOverride, error) {
	var raw []ParameterOverride
	if err := yaml.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	out := make([]ParameterOverride, 0, len(raw))
	for _, o := range raw {
		if o.Name == "" {
			logging.Log.Info("Skipping parameter override without a name")
			continue
		}
		if math.IsNaN(o.Value) || math.IsInf(o.Value, 0) {
			logging.Log.Info("Skipping non-finite parameter override",
				"name", o.Name, "value", o.Value)
			continue
		}
		if seen[o.Name] {
			logging.Log.Info("Duplicate parameter override - first entry wins",
				"name", o.Name)
			continue
		}
		seen[o.Name] = true
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
