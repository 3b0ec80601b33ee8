package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load builds Settings from an optional config file, environment variables
// (prefix DSGE_), and the built-in defaults, in decreasing priority.
func Load(path string) (*Settings, error) {
	v := viper.New()
	for _, d := range defaultSettings() {
		v.SetDefault(d.Key, d.Value)
	}
	v.SetEnvPrefix("DSGE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	s := NewSettings()
	s.Set(Setting{KeyNumAnticipatedShocks, v.GetInt(KeyNumAnticipatedShocks),
		"active anticipated policy shocks"})
	s.Set(Setting{KeyNumAnticipatedShocksPadding, v.GetInt(KeyNumAnticipatedShocksPadding),
		"allocated anticipated-shock slots"})
	s.Set(Setting{KeyNumAnticipatedLags, v.GetInt(KeyNumAnticipatedLags),
		"periods of anticipated-shock history"})
	s.Set(Setting{KeyRNGSeed, v.GetInt64(KeyRNGSeed),
		"seed for the model random source"})

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}
