// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"
)

// MetricsDriver identifies a metrics backend.
type MetricsDriver string

const (
	MetricsNone       MetricsDriver = "none"       // discard observations
	MetricsExpvar     MetricsDriver = "expvar"     // process-local expvar counters
	MetricsPrometheus MetricsDriver = "prometheus" // prometheus registry
)

// Config holds the resolved settings.
type Config struct {
	LogLevel string
	Metrics  MetricsDriver
	Trace    bool
}

// Load reads settings from the environment.
//
//	CLEANCORE_LOG_LEVEL: debug|info|warn|error (default info)
//	CLEANCORE_METRICS: none|expvar|prometheus (default none)
//	CLEANCORE_TRACE: true writes JSON trace lines to stderr
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads settings through the supplied lookup function.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel: strings.ToLower(strings.TrimSpace(getenv("CLEANCORE_LOG_LEVEL"))),
		Metrics:  MetricsNone,
		Trace:    strings.EqualFold(getenv("CLEANCORE_TRACE"), "true"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if raw := strings.TrimSpace(getenv("CLEANCORE_METRICS")); raw != "" {
		driver, err := ParseMetricsDriver(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Metrics = driver
	}
	return cfg, nil
}

// ParseMetricsDriver validates a metrics driver name.
func ParseMetricsDriver(raw string) (MetricsDriver, error) {
	switch d := MetricsDriver(strings.ToLower(raw)); d {
	case MetricsNone, MetricsExpvar, MetricsPrometheus:
		return d, nil
	default:
		return "", fmt.Errorf("unknown metrics driver %s", raw)
	}
}
