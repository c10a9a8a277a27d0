package config

import "time"

// RateLimitConfig controls the fixed-window request limiter. Limit
// requests are allowed per client IP and route within each Window.
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Window  time.Duration
	Prefix  string
}

// LoadRateLimitConfig reads the limiter settings from the environment,
// clamping nonsensical values back to the defaults.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		Limit:   envInt("RATE_LIMIT_PER_WINDOW", 60),
		Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
		Prefix:  envStr("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Limit < 1 {
		cfg.Limit = 60
	}
	// The limiter keys windows by whole seconds; anything shorter would
	// divide by zero there.
	if cfg.Window < time.Second {
		cfg.Window = time.Minute
	}
	return cfg
}
