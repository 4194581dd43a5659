// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - Load parses the environment into a struct once per type and caches the
//     result. The default .env file is read on first use if present.
//   - LoadEnv reads explicit .env files, for example one passed on the
//     command line.
//   - Parse fills a struct without caching, for short-lived tools and tests.
//   - MustLoad panics on failure for configuration the process cannot run
//     without.
//
// # Usage
//
//	type SessionConfig struct {
//	    MaxSessions int           `env:"SESSION_MAX" envDefault:"1024"`
//	    IdleTTL     time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer. ResetCache clears
// cached values between tests.
package config
