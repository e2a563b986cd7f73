package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"tictac/config"
)

func parseOverrides(t *testing.T, args ...string) overrides {
	t.Helper()
	over := overrides{ticks: -1}
	fs := flag.NewFlagSet("tictac", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&over.ticks, "ticks", -1, "")
	fs.Func("seed", "", over.setSeed)
	require.NoError(t, fs.Parse(args))
	return over
}

func TestOverrides(t *testing.T) {
	t.Run("absent flags keep the file values", func(t *testing.T) {
		cfg := config.Default()
		cfg.Run.Seed = 42
		cfg.Run.Ticks = 10
		parseOverrides(t).apply(cfg)
		require.Equal(t, uint64(42), cfg.Run.Seed)
		require.Equal(t, 10, cfg.Run.Ticks)
	})

	t.Run("zero seed overrides a configured seed", func(t *testing.T) {
		cfg := config.Default()
		cfg.Run.Seed = 42
		parseOverrides(t, "-seed", "0", "-ticks", "0").apply(cfg)
		require.Zero(t, cfg.Run.Seed, "An explicit -seed 0 should switch back to clock seeding")
		require.Zero(t, cfg.Run.Ticks)
	})

	t.Run("bad seed", func(t *testing.T) {
		var over overrides
		require.Error(t, over.setSeed("-3"))
		require.Nil(t, over.seed)
	})
}
