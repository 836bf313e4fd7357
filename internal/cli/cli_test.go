package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cobench/cachesim"
	"github.com/katalvlaran/cobench/grid"
	"github.com/katalvlaran/cobench/internal/cli"
	"github.com/katalvlaran/cobench/kernel"
)

// run executes a fresh command with args and returns the Env seen by Run
// (nil if Run was not reached), the captured output and the error.
func run(t *testing.T, args ...string) (*cli.Env, string, error) {
	t.Helper()
	var got *cli.Env
	cmd := cli.NewCommand(cli.Spec{
		Use:      "prog",
		DefaultN: 8,
		Run: func(env *cli.Env) error {
			got = env
			return nil
		},
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return got, out.String(), err
}

func TestCommand_Selector(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{}, {"fast"}, {"naive", "tiled"}} {
		env, out, err := run(t, args...)
		require.ErrorIs(t, err, kernel.ErrInvalidArgument, "args %v", args)
		assert.Nil(t, env)
		assert.Contains(t, out, "Usage:")
	}

	env, _, err := run(t, "tiled")
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.Equal(t, kernel.Tiled, env.Variant)
	assert.Equal(t, 8, env.N)
	assert.Nil(t, env.Sim)
	assert.NotNil(t, env.Ctx)
}

func TestCommand_Flags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{"n power of two", []string{"naive", "--n", "16"}, true},
		{"n not power of two", []string{"naive", "--n", "12"}, false},
		{"threshold zero means auto", []string{"recursive", "--threshold", "0"}, true},
		{"threshold not power of two", []string{"recursive", "--threshold", "3"}, false},
		{"threshold above n", []string{"recursive", "--threshold", "16"}, false},
		{"tile zero", []string{"tiled", "--tile", "0"}, false},
		{"negative workers", []string{"recursive", "--workers", "-2"}, false},
		{"bad policy", []string{"naive", "--policy", "mru"}, false},
		{"bad log level", []string{"naive", "--log-level", "loud"}, false},
		{"simulate defaults", []string{"naive", "--simulate"}, true},
		{"simulate bad ways", []string{"naive", "--simulate", "--ways", "3"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			env, _, err := run(t, tc.args...)
			if tc.ok {
				require.NoError(t, err)
				require.NotNil(t, env)
			} else {
				assert.Error(t, err)
				assert.Nil(t, env)
			}
		})
	}
}

func TestCommand_SimulatorWiring(t *testing.T) {
	t.Parallel()

	env, _, err := run(t, "naive", "--simulate", "--cache-size", "64", "--line-size", "4", "--ways", "0", "--policy", "fifo")
	require.NoError(t, err)
	require.NotNil(t, env.Sim)

	cfg := env.Sim.Config()
	assert.Equal(t, 64, cfg.Size)
	assert.Equal(t, 4, cfg.LineSize)
	assert.Equal(t, 0, cfg.Ways)
	assert.Equal(t, cachesim.FIFO, cfg.Policy)

	m, err := env.Alloc()
	require.NoError(t, err)
	assert.True(t, m.Observed())
	m.Store(0, 1)
	assert.Equal(t, uint64(1), env.Sim.Stats().Accesses)

	require.NoError(t, env.Measure("noop", func() error { return nil }))
	assert.Equal(t, uint64(0), env.Sim.Stats().Accesses)
}

func TestAutoThreshold(t *testing.T) {
	t.Parallel()

	per := cli.CacheLineBytes() / 4
	require.Positive(t, per)

	big := cli.AutoThreshold(4, 1<<20)
	assert.True(t, grid.IsPowerOfTwo(big))
	assert.LessOrEqual(t, big, per)
	assert.Greater(t, 2*big, per)

	assert.Equal(t, 1, cli.AutoThreshold(4, 1))
	assert.LessOrEqual(t, cli.AutoThreshold(4, 2), 2)
	assert.Equal(t, 1, cli.AutoThreshold(1<<20, 64))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := cli.NewLogger(&buf, "warn")
	require.NoError(t, err)
	log.Info("hidden")
	log.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown k=1")

	_, err = cli.NewLogger(&buf, "chatty")
	assert.Error(t, err)
}

func TestMain_ExitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		err  error
		want int
	}{
		{"ok", []string{"naive"}, nil, 0},
		{"missing selector", []string{}, nil, 1},
		{"unknown selector", []string{"bogus"}, nil, 1},
		{"run failed", []string{"naive"}, errors.New("boom"), 1},
		{"interrupted", []string{"naive"}, fmt.Errorf("read: %w", context.Canceled), 130},
	}
	for _, tc := range tests {
		cmd := cli.NewCommand(cli.Spec{
			Use:      "prog",
			DefaultN: 8,
			Run:      func(*cli.Env) error { return tc.err },
		})
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(tc.args)
		assert.Equal(t, tc.want, cli.Main(cmd), tc.name)
	}
}
