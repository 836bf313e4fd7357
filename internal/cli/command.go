// SPDX-License-Identifier: MIT
// Package: cobench/internal/cli
//
// command.go - cobra root command for one kernel program.
//
// Contract:
//   - Exactly one positional selector; missing or unknown ⇒
//     kernel.ErrInvalidArgument, usage printed, exit status 1.
//   - Flag and selector errors print usage; runtime errors do not.
//   - Run receives a fully resolved Env; it never parses flags.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cobench/cachesim"
	"github.com/katalvlaran/cobench/kernel"
)

// Spec describes one kernel program.
type Spec struct {
	Use      string // command name
	Short    string
	Long     string
	DefaultN int
	Run      func(env *Env) error
}

// NewCommand builds the root command for s. The caller adds its own file
// flags to cmd.Flags() before executing.
func NewCommand(s Spec) *cobra.Command {
	var f commonFlags
	cmd := &cobra.Command{
		Use:       s.Use + " <" + strings.Join(kernel.VariantNames(), "|") + ">",
		Short:     s.Short,
		Long:      s.Long,
		Args:      selectorArg,
		ValidArgs: kernel.VariantNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			env, err := f.env(cmd, args[0])
			if err != nil {
				return err
			}

			return s.Run(env)
		},
	}
	f.bind(cmd.Flags(), s.DefaultN)
	_ = cmd.RegisterFlagCompletionFunc("policy", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return cachesim.PolicyNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("log-level", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// selectorArg accepts exactly one known variant token.
func selectorArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("want exactly one variant (%s), got %d arguments: %w",
			strings.Join(kernel.VariantNames(), "|"), len(args), kernel.ErrInvalidArgument)
	}
	_, err := kernel.ParseVariant(args[0])

	return err
}

// env resolves flags and the selector into an Env.
func (f *commonFlags) env(cmd *cobra.Command, selector string) (*Env, error) {
	v, err := kernel.ParseVariant(selector)
	if err != nil {
		return nil, err
	}
	log, err := NewLogger(cmd.ErrOrStderr(), f.logLevel)
	if err != nil {
		return nil, err
	}

	env := &Env{
		Ctx:     cmd.Context(),
		Log:     log,
		Variant: v,
		N:       f.n,
		Opts:    f.kernelOptions(),
	}
	if env.Ctx == nil {
		env.Ctx = context.Background()
	}
	if f.simulate {
		cfg := f.simConfig()
		if env.Sim, err = cachesim.New(cfg); err != nil {
			return nil, err
		}
		log.Debug("simulating", "size", cfg.Size, "line", cfg.LineSize, "ways", cfg.Ways, "policy", cfg.Policy.String())
	}
	log.Debug("resolved",
		"variant", v.String(), "n", f.n, "threshold", f.resolvedThreshold(),
		"tile", f.tile, "workers", f.workers, "host_line_bytes", CacheLineBytes())

	return env, nil
}

// Main executes cmd with a context cancelled on SIGINT/SIGTERM and returns
// the process exit status.
func Main(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}

		return 1
	}

	return 0
}
