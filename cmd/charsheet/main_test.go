package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCommands(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "commands.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no arguments", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, exitUsage, run(nil))
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, exitUsage, run([]string{"frobnicate"}))
	})

	t.Run("check without file", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, exitUsage, run([]string{"check"}))
	})

	t.Run("check missing file", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, exitError, run([]string{"check", filepath.Join(t.TempDir(), "nope.json")}))
	})

	t.Run("check malformed json", func(t *testing.T) {
		t.Parallel()
		path := writeCommands(t, `{"op":`)
		assert.Equal(t, exitError, run([]string{"check", path}))
	})

	t.Run("check accepted sheet", func(t *testing.T) {
		t.Parallel()
		path := writeCommands(t, `[
			{"op":"change","path":"personal.firstName","value":"Race"},
			{"op":"change","path":"personal.lastName","value":"Underwood"},
			{"op":"change","path":"personal.address","value":"12 Main Street"},
			{"op":"change","path":"emails.0.email","value":"race@example.com"},
			{"op":"change","path":"phoneNumbers.0.phoneNumber","value":"(555) 123-4567"},
			{"op":"change","path":"characterInfo.class","value":9},
			{"op":"change","path":"characterInfo.level","value":"5"}
		]`)
		assert.Equal(t, exitOK, run([]string{"check", path}))
	})

	t.Run("check flat layout", func(t *testing.T) {
		t.Parallel()
		path := writeCommands(t, `[
			{"op":"change","path":"firstName","value":"Race"},
			{"op":"change","path":"lastName","value":"Underwood"},
			{"op":"change","path":"address","value":"12 Main Street"},
			{"op":"change","path":"emails.0.email","value":"race@example.com"},
			{"op":"change","path":"phoneNumbers.0.phoneNumber","value":"(555) 123-4567"},
			{"op":"change","path":"class","value":1},
			{"op":"change","path":"level","value":1}
		]`)
		assert.Equal(t, exitOK, run([]string{"check", "-layout", "flat", path}))
	})

	t.Run("check rejected sheet", func(t *testing.T) {
		t.Parallel()
		path := writeCommands(t, `[
			{"op":"change","path":"emails.0.email","value":"race.underwood@agvance.net"}
		]`)
		assert.Equal(t, exitRejected, run([]string{"check", path}))
	})

	t.Run("check unknown command", func(t *testing.T) {
		t.Parallel()
		path := writeCommands(t, `[{"op":"teleport"}]`)
		assert.Equal(t, exitError, run([]string{"check", path}))
	})

	t.Run("check unknown layout", func(t *testing.T) {
		t.Parallel()
		path := writeCommands(t, `[]`)
		assert.Equal(t, exitError, run([]string{"check", "-layout", "grid", path}))
	})
}
