package config

import (
	"fmt"
)

// Setting keys consumed by the model core.
const (
	// KeyNumAnticipatedShocks is the number of active anticipated monetary
	// policy shocks.
	KeyNumAnticipatedShocks = "num_anticipated_shocks"

	// KeyNumAnticipatedShocksPadding is the total number of anticipated-shock
	// slots allocated in the index tables. Slots beyond the active count are
	// fixed at zero.
	KeyNumAnticipatedShocksPadding = "num_anticipated_shocks_padding"

	// KeyNumAnticipatedLags is the number of periods back to incorporate
	// zero-bound expectations.
	KeyNumAnticipatedLags = "num_anticipated_lags"

	// KeyRNGSeed seeds the model-owned random number source.
	KeyRNGSeed = "rng_seed"
)

// Setting is a single named, typed configuration value.
type Setting struct {
	Key         string
	Value       any
	Description string
}

// Settings holds the model configuration as two parallel maps, production and
// test, with a mode flag selecting which one reads resolve against.
type Settings struct {
	production map[string]Setting
	test       map[string]Setting
	testMode   bool
}

// NewSettings returns a Settings populated with the production defaults and an
// empty test map.
func NewSettings() *Settings {
	s := &Settings{
		production: make(map[string]Setting),
		test:       make(map[string]Setting),
	}
	for _, d := range defaultSettings() {
		s.production[d.Key] = d
	}
	return s
}

func defaultSettings() []Setting {
	return []Setting{
		{KeyNumAnticipatedShocks, 6, "active anticipated policy shocks"},
		{KeyNumAnticipatedShocksPadding, 20, "allocated anticipated-shock slots"},
		{KeyNumAnticipatedLags, 24, "periods of anticipated-shock history"},
		{KeyRNGSeed, int64(1), "seed for the model random source"},
	}
}

// Set stores a production setting, overwriting any previous value for the key.
func (s *Settings) Set(st Setting) {
	s.production[st.Key] = st
}

// SetTest stores a test-map setting.
func (s *Settings) SetTest(st Setting) {
	s.test[st.Key] = st
}

// SetTestMode selects which map reads resolve against.
func (s *Settings) SetTestMode(on bool) {
	s.testMode = on
}

// TestMode reports whether the test map is active.
func (s *Settings) TestMode() bool {
	return s.testMode
}

// Get resolves a setting by key. In test mode the test map is consulted first,
// falling back to production so that partial test overrides work.
func (s *Settings) Get(key string) (Setting, error) {
	if s.testMode {
		if st, ok := s.test[key]; ok {
			return st, nil
		}
	}
	if st, ok := s.production[key]; ok {
		return st, nil
	}
	return Setting{}, fmt.Errorf("unknown setting %q", key)
}

// GetInt resolves a setting expected to hold an int.
func (s *Settings) GetInt(key string) (int, error) {
	st, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	switch v := st.Value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("setting %q is %T, not an integer", key, st.Value)
	}
}

// GetInt64 resolves a setting expected to hold an int64 (or int).
func (s *Settings) GetInt64(key string) (int64, error) {
	st, err := s.Get(key)
	if err != nil {
		return 0, err
	}
	switch v := st.Value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("setting %q is %T, not an integer", key, st.Value)
	}
}

// Validate checks cross-setting constraints on the active configuration.
func (s *Settings) Validate() error {
	nant, err := s.GetInt(KeyNumAnticipatedShocks)
	if err != nil {
		return err
	}
	pad, err := s.GetInt(KeyNumAnticipatedShocksPadding)
	if err != nil {
		return err
	}
	lags, err := s.GetInt(KeyNumAnticipatedLags)
	if err != nil {
		return err
	}
	if nant < 0 {
		return fmt.Errorf("%s must be >= 0, got %d", KeyNumAnticipatedShocks, nant)
	}
	if pad < nant {
		return fmt.Errorf("%s (%d) must be >= %s (%d)",
			KeyNumAnticipatedShocksPadding, pad, KeyNumAnticipatedShocks, nant)
	}
	if lags < 0 {
		return fmt.Errorf("%s must be >= 0, got %d", KeyNumAnticipatedLags, lags)
	}
	return nil
}
