package charsheet

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/charsheet/pkg/form"
)

// DuplicateRule is the name of the duplicate e-mail check.
const DuplicateRule = "duplicate"

// SeedEmails are registered in every directory on startup.
var SeedEmails = []string{"Race.Underwood@agvance.net"}

// EmailDirectory knows which e-mail addresses are already taken. Addresses
// compare case-insensitively.
type EmailDirectory interface {
	Exists(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, emails ...string) error
}

// UniqueEmail is the async rule rejecting addresses found in dir.
func UniqueEmail(dir EmailDirectory) form.AsyncRule[string] {
	return form.AsyncRule[string]{
		Name: DuplicateRule,
		Check: func(ctx context.Context, email string) (bool, error) {
			exists, err := dir.Exists(ctx, email)
			if err != nil {
				return false, fmt.Errorf("%w: %w", ErrDirectory, err)
			}
			return !exists, nil
		},
	}
}

func canonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MemoryDirectory is an in-process directory. Lookups wait for the configured
// delay to behave like a remote call.
type MemoryDirectory struct {
	mu     sync.RWMutex
	emails map[string]struct{}
	delay  time.Duration
}

// NewMemoryDirectory creates a directory holding seed.
func NewMemoryDirectory(delay time.Duration, seed ...string) *MemoryDirectory {
	d := &MemoryDirectory{emails: make(map[string]struct{}, len(seed)), delay: delay}
	for _, e := range seed {
		d.emails[canonicalEmail(e)] = struct{}{}
	}
	return d
}

func (d *MemoryDirectory) Exists(ctx context.Context, email string) (bool, error) {
	if d.delay > 0 {
		t := time.NewTimer(d.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-t.C:
		}
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.emails[canonicalEmail(email)]
	return ok, nil
}

func (d *MemoryDirectory) Register(_ context.Context, emails ...string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range emails {
		if e = canonicalEmail(e); e != "" {
			d.emails[e] = struct{}{}
		}
	}
	return nil
}
