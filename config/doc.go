// Package config loads and validates the tunables a belief-propagation
// run needs: convergence thresholds, iteration caps, combine strategy,
// and log verbosity. Values come from Default, a YAML file, and
// functional Option overrides — in that order of precedence from lowest
// to highest.
package config
