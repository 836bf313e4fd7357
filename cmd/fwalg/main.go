// Command fwalg computes all-pairs shortest paths (Floyd–Warshall) in place
// over an N×N distance matrix read from a text file.
//
// Missing edges must be encoded as a large value (for example 1<<20, the
// gendata default) small enough that two of them sum without overflow.
//
// Usage:
//
//	fwalg recursive --n 1024 --in W_data --out SP_data
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cobench/internal/cli"
	"github.com/katalvlaran/cobench/kernel"
)

func main() {
	os.Exit(cli.Main(newRootCmd()))
}

func newRootCmd() *cobra.Command {
	var inPath, outPath string
	cmd := cli.NewCommand(cli.Spec{
		Use:      "fwalg",
		Short:    "All-pairs shortest paths over an N×N int32 distance matrix",
		DefaultN: 1024,
		Run: func(env *cli.Env) error {
			w, err := env.Load(inPath)
			if err != nil {
				return err
			}
			err = env.Measure("closure", func() error {
				return kernel.Closure(env.Ctx, env.Variant, w, env.Opts...)
			})
			if err != nil {
				return err
			}

			return env.Save(outPath, w)
		},
	})
	cmd.Flags().StringVar(&inPath, "in", "W_data", "distance matrix file")
	cmd.Flags().StringVar(&outPath, "out", "SP_data", "shortest-path output file")

	return cmd
}
