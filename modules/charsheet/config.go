package charsheet

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/charsheet/pkg/form"
)

// Directory drivers.
const (
	DirectoryMemory   = "memory"
	DirectoryRedis    = "redis"
	DirectoryPostgres = "postgres"
)

// Config holds the sheet service settings.
type Config struct {
	Layout    string `env:"CHARSHEET_LAYOUT" envDefault:"sectioned"`
	Directory string `env:"CHARSHEET_EMAIL_DIRECTORY" envDefault:"memory"`
	RedisKey  string `env:"CHARSHEET_REDIS_KEY" envDefault:"charsheet:registered_emails"`

	// LookupDelay slows down the in-memory directory to mimic a remote check.
	LookupDelay time.Duration `env:"CHARSHEET_LOOKUP_DELAY" envDefault:"2s"`
	// LookupTrigger is one of change, blur or submit.
	LookupTrigger string `env:"CHARSHEET_LOOKUP_TRIGGER" envDefault:"blur"`

	SessionCapacity int           `env:"CHARSHEET_SESSION_CAPACITY" envDefault:"1024"`
	SessionIdleTTL  time.Duration `env:"CHARSHEET_SESSION_IDLE_TTL" envDefault:"30m"`
	SweepInterval   time.Duration `env:"CHARSHEET_SWEEP_INTERVAL" envDefault:"1m"`
	SubmitTimeout   time.Duration `env:"CHARSHEET_SUBMIT_TIMEOUT" envDefault:"10s"`

	// MessagesPath points to a YAML table merged over the built-in messages.
	MessagesPath string `env:"CHARSHEET_MESSAGES_PATH"`

	// Removal guard expressions, see form.ExprGuard. Empty keeps the default:
	// an entry cannot be removed while it is required.
	EmailGuard string `env:"CHARSHEET_EMAIL_REMOVAL_GUARD"`
	PhoneGuard string `env:"CHARSHEET_PHONE_REMOVAL_GUARD"`

	// RegisterOnSubmit adds the addresses of every accepted sheet to the
	// directory.
	RegisterOnSubmit bool `env:"CHARSHEET_REGISTER_ON_SUBMIT" envDefault:"false"`
}

// DefaultConfig mirrors the env defaults, for callers that skip env parsing.
func DefaultConfig() Config {
	return Config{
		Layout:          string(LayoutSectioned),
		Directory:       DirectoryMemory,
		RedisKey:        DefaultRedisKey,
		LookupDelay:     2 * time.Second,
		LookupTrigger:   "blur",
		SessionCapacity: 1024,
		SessionIdleTTL:  30 * time.Minute,
		SweepInterval:   time.Minute,
		SubmitTimeout:   10 * time.Second,
	}
}

func parseTrigger(s string) (form.Trigger, error) {
	switch s {
	case "", "blur":
		return form.OnBlur, nil
	case "change":
		return form.OnChange, nil
	case "submit":
		return form.OnSubmit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTrigger, s)
	}
}
