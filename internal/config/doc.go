// Package config provides the model's runtime settings: a production map and
// a parallel test map of named, typed values behind one mode flag, loaded from
// defaults, an optional file, and DSGE_-prefixed environment variables.
//
// All values are validated on load: counts are non-negative and the
// anticipated-shock padding is at least the active count.
package config
