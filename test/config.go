package test

import (
	"github.com/kelseyhightower/envconfig"
)

// Config tunes the integration scenarios, so slow CI machines can relax
// the timings without touching the tests.
type Config struct {
	PollInterval string `envconfig:"IT_POLL_INTERVAL" default:"10ms"`
	// IT_SCENARIO_TIMEOUT bounds each full meeting scenario
	ScenarioTimeout string `envconfig:"IT_SCENARIO_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
