package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/OrderClean/internal/config"
	"github.com/JonMunkholm/OrderClean/internal/orders"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Paths: config.PathsConfig{
			Input:  filepath.Join(dir, "raw", "orders.csv"),
			Output: filepath.Join(dir, "cleaned", "orders.csv"),
			Report: filepath.Join(dir, "reports", "report.txt"),
		},
		Generator: config.GeneratorConfig{Rows: 120, Seed: 7},
		Runs:      config.RunsConfig{MaxRetained: 5, MaxConcurrent: 1},
	}
}

func TestRun_GenerateThenClean(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, []string{"generate"}, &out))
	assert.Contains(t, out.String(), "Total rows: 120")
	assert.Contains(t, out.String(), "DATA QUALITY ISSUES SUMMARY")

	out.Reset()
	html := filepath.Join(filepath.Dir(cfg.Paths.Report), "report.html")
	require.NoError(t, run(ctx, cfg, []string{"clean", "-html", html}, &out))
	assert.Contains(t, out.String(), "Original dataset: 120 rows")
	assert.Contains(t, out.String(), cfg.Paths.Output)
	assert.Contains(t, out.String(), html)

	cleaned, err := orders.Load(cfg.Paths.Output)
	require.NoError(t, err)
	assert.LessOrEqual(t, cleaned.Len(), 120)

	for _, p := range []string{cfg.Paths.Report, html} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestRun_DefaultCommandIsClean(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()
	require.NoError(t, run(ctx, cfg, []string{"generate", "-rows", "30"}, &bytes.Buffer{}))

	var out bytes.Buffer
	require.NoError(t, run(ctx, cfg, nil, &out))
	assert.Contains(t, out.String(), "Original dataset: 30 rows")
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown command", func(t *testing.T) {
		err := run(ctx, testConfig(t), []string{"publish"}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "unknown command")
	})

	t.Run("missing input", func(t *testing.T) {
		err := run(ctx, testConfig(t), []string{"clean"}, &bytes.Buffer{})
		assert.ErrorIs(t, err, orders.ErrSourceNotFound)
	})

	t.Run("output overwrites input", func(t *testing.T) {
		cfg := testConfig(t)
		err := run(ctx, cfg, []string{"clean", "-output", cfg.Paths.Input}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "overwrite")
	})

	t.Run("non-positive rows", func(t *testing.T) {
		err := run(ctx, testConfig(t), []string{"generate", "-rows", "0"}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "rows must be positive")
	})
}
