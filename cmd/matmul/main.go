// Command matmul multiplies two N×N integer matrices read from text files
// and writes the product.
//
// Usage:
//
//	matmul recursive --n 1024 --a A_data --b B_data --out C_data
//	matmul naive --n 256 --simulate --cache-size 1024 --line-size 16
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
	var aPath, bPath, outPath string
	cmd := cli.NewCommand(cli.Spec{
		Use:      "matmul",
		Short:    "C = A·B over N×N int32 matrices",
		DefaultN: 1024,
		Run: func(env *cli.Env) error {
			a, err := env.Load(aPath)
			if err != nil {
				return err
			}
			b, err := env.Load(bPath)
			if err != nil {
				return err
			}
			c, err := env.Alloc()
			if err != nil {
				return err
			}
			err = env.Measure("multiply", func() error {
				return kernel.Multiply(env.Ctx, env.Variant, a, b, c, env.Opts...)
			})
			if err != nil {
				return err
			}

			return env.Save(outPath, c)
		},
	})
	cmd.Flags().StringVar(&aPath, "a", "A_data", "left operand file")
	cmd.Flags().StringVar(&bPath, "b", "B_data", "right operand file")
	cmd.Flags().StringVar(&outPath, "out", "C_data", "product output file")

	return cmd
}
