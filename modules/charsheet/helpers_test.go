package charsheet_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/charsheet/modules/charsheet"
	"github.com/dmitrymomot/charsheet/pkg/form"
)

func set(t *testing.T, root form.Node, values map[string]any) {
	t.Helper()
	for path, v := range values {
		f, err := form.ResolveField(root, path)
		require.NoError(t, err, path)
		require.NoError(t, f.SetAny(v), path)
	}
}

func settle(t *testing.T, root form.Node, path string) {
	t.Helper()
	f, err := form.ResolveField(root, path)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.Settle(ctx))
}

func collect(t *testing.T, root form.Node) []string {
	t.Helper()
	errs, err := form.NewCollector(nil).Collect(root)
	require.NoError(t, err)
	return errs
}

// validFlat holds a complete flat sheet.
func validFlat() map[string]any {
	return map[string]any{
		"firstName":                  "Race",
		"lastName":                   "Underwood",
		"address":                    "12 Main Street",
		"emails.0.email":             "race@example.com",
		"emails.0.isPrimary":         true,
		"phoneNumbers.0.phoneNumber": "(555) 123-4567",
		"class":                      3,
		"level":                      "7",
	}
}

func validSectioned() map[string]any {
	return map[string]any{
		"personal.firstName":         "Race",
		"personal.lastName":          "Underwood",
		"personal.address":           "12 Main Street",
		"emails.0.email":             "race@example.com",
		"phoneNumbers.0.phoneNumber": "(555) 123-4567",
		"characterInfo.class":        float64(13),
		"characterInfo.level":        float64(20),
	}
}

func newService(t *testing.T, dir charsheet.EmailDirectory, mutate ...func(*charsheet.Config)) *charsheet.Service {
	t.Helper()
	cfg := charsheet.DefaultConfig()
	cfg.SubmitTimeout = 2 * time.Second
	for _, m := range mutate {
		m(&cfg)
	}
	svc, err := charsheet.NewService(cfg, dir)
	require.NoError(t, err)
	return svc
}
