//go:build !windows

package bridge

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchforge/pitchforge/internal/config"
	"github.com/pitchforge/pitchforge/internal/types"
)

// fakeInterpreter writes a shell script that stands in for the Python
// binary and returns a bridge configured to use it.
func fakeInterpreter(t *testing.T, script string) *Bridge {
	t.Helper()
	dir := t.TempDir()
	bin := filepath.Join(dir, "fakepython")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"+script), 0o755))

	cfg := config.DefaultConfig()
	cfg.Bridge.PythonBin = bin
	cfg.Bridge.ScriptDir = dir
	cfg.Bridge.InvokeTimeout = 5 * time.Second

	return New(cfg, slog.New(slog.DiscardHandler))
}

func TestInvoke_ParsesStdout(t *testing.T) {
	b := fakeInterpreter(t, `echo '{"title": "Bridge Product", "price": "$9.99"}'`)

	raw, err := b.Invoke(context.Background(), "https://example.com/p/1")
	require.NoError(t, err)

	assert.Equal(t, "Bridge Product", raw.Title)
	assert.Equal(t, "$9.99", raw.Price)
}

func TestInvoke_DriverScriptIsCleanedUp(t *testing.T) {
	b := fakeInterpreter(t, `echo '{}'`)

	_, err := b.Invoke(context.Background(), "https://example.com/p/1")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(b.cfg.ScriptDir, driverName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInvoke_NonZeroExit(t *testing.T) {
	b := fakeInterpreter(t, `echo "boom" >&2; exit 3`)

	_, err := b.Invoke(context.Background(), "https://example.com/p/1")

	var bridgeErr *types.BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	assert.Equal(t, 3, bridgeErr.ExitCode)
	assert.Contains(t, bridgeErr.Stderr, "boom")
}

func TestInvoke_Timeout(t *testing.T) {
	b := fakeInterpreter(t, `sleep 10`)
	b.cfg.InvokeTimeout = 100 * time.Millisecond

	_, err := b.Invoke(context.Background(), "https://example.com/p/1")

	require.ErrorIs(t, err, types.ErrBridgeTimeout)
}

func TestAvailable(t *testing.T) {
	assert.True(t, fakeInterpreter(t, `echo OK`).Available(context.Background()))
	assert.False(t, fakeInterpreter(t, `exit 1`).Available(context.Background()))
}

func TestInvoke_GarbageStdout(t *testing.T) {
	b := fakeInterpreter(t, `echo "Traceback (most recent call last):"`)

	_, err := b.Invoke(context.Background(), "https://example.com/p/1")

	var bridgeErr *types.BridgeError
	require.ErrorAs(t, err, &bridgeErr)
	assert.Contains(t, bridgeErr.Stdout, "Traceback")
}
