// Package bridge invokes the out-of-process Python scraper and adapts its
// JSON stdout into the shared raw-field record. The Python implementation
// is preferred when present because it extracts richer data than the
// native extractors for some sites.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/pitchforge/pitchforge/internal/config"
	"github.com/pitchforge/pitchforge/internal/types"
)

// driverName is the fixed path of the disposable driver script, written
// next to the Python scraper so its import resolves.
const driverName = "temp_scraper.py"

// driverScript runs the Python scraper against a single URL and prints the
// result as one JSON document on stdout.
const driverScript = `import sys
import json
from python_scraper import ProductScraper

if len(sys.argv) > 1:
    url = sys.argv[1]
    scraper = ProductScraper()
    result = scraper.scrape_product(url)
    print(json.dumps(result))
else:
    print(json.dumps({"error": "No URL provided"}))
`

// probeScript verifies the Python runtime and the scraper's dependencies
// in one shot.
const probeScript = `import requests, bs4, selenium; print("OK")`

// Bridge spawns the external Python scraper as a subprocess.
type Bridge struct {
	cfg    *config.BridgeConfig
	logger *slog.Logger
}

// New creates a bridge from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Bridge {
	return &Bridge{
		cfg:    &cfg.Bridge,
		logger: logger.With("component", "bridge"),
	}
}

// Available reports whether the external scraper can run. It never fails:
// any probe error, including the 5-second timeout, just means unavailable.
// The probe is deliberately re-run before every scrape so the answer
// tracks the environment, at the cost of a process spawn per request.
func (b *Bridge) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.ProbeTimeout)
	defer cancel()

	err := exec.CommandContext(ctx, b.cfg.PythonBin, "-c", probeScript).Run()
	available := err == nil
	b.logger.Debug("bridge availability probe", "available", available)
	return available
}

// Invoke runs the external scraper against a URL and parses its stdout.
// The subprocess is bounded by a hard wall-clock timeout; on expiry it is
// killed before Invoke returns. The driver script is removed best-effort
// regardless of outcome.
func (b *Bridge) Invoke(ctx context.Context, rawURL string) (types.RawFields, error) {
	scriptPath := filepath.Join(b.cfg.ScriptDir, driverName)
	if err := os.WriteFile(scriptPath, []byte(driverScript), 0o644); err != nil {
		return types.RawFields{}, fmt.Errorf("write driver script: %w", err)
	}
	defer func() {
		if err := os.Remove(scriptPath); err != nil {
			b.logger.Warn("could not delete driver script", "path", scriptPath, "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, b.cfg.InvokeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, b.cfg.PythonBin, scriptPath, rawURL)
	cmd.Dir = b.cfg.ScriptDir
	cmd.WaitDelay = 5 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return types.RawFields{}, &types.BridgeError{
			Stdout: stdout.String(),
			Stderr: stderr.String(),
			Err:    types.ErrBridgeTimeout,
		}
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return types.RawFields{}, &types.BridgeError{
			ExitCode: exitCode,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Err:      err,
		}
	}

	b.logger.Debug("bridge scrape complete", "url", rawURL, "duration", duration)

	return parseOutput(stdout.Bytes())
}

// parseOutput decodes the subprocess's stdout as a single raw-field
// record. An unparsable payload is fatal and carries the raw output for
// diagnostics. An embedded "error" field is passed through untouched; the
// orchestrator decides what to do with it.
func parseOutput(out []byte) (types.RawFields, error) {
	var raw types.RawFields
	if err := json.Unmarshal(bytes.TrimSpace(out), &raw); err != nil {
		return types.RawFields{}, &types.BridgeError{
			Stdout: string(out),
			Err:    fmt.Errorf("parse bridge output: %w", err),
		}
	}
	return raw, nil
}
