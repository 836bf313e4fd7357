// Command mattrans transposes an N×N integer matrix read from a text file.
//
// Usage:
//
//	mattrans recursive --n 2048 --in P_data --out P_transposed
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
		Use:      "mattrans",
		Short:    "Transpose an N×N int32 matrix",
		DefaultN: 2048,
		Run: func(env *cli.Env) error {
			src, err := env.Load(inPath)
			if err != nil {
				return err
			}
			dst, err := env.Alloc()
			if err != nil {
				return err
			}
			err = env.Measure("transpose", func() error {
				return kernel.Transpose(env.Ctx, env.Variant, src, dst, env.Opts...)
			})
			if err != nil {
				return err
			}

			return env.Save(outPath, dst)
		},
	})
	cmd.Flags().StringVar(&inPath, "in", "P_data", "input matrix file")
	cmd.Flags().StringVar(&outPath, "out", "P_transposed", "transposed output file")

	return cmd
}
