// Command gendata writes input files for matmul, mattrans and fwalg.
//
// Usage:
//
//	gendata dense --n 1024 --seed 1 A_data B_data P_data
//	gendata graph --n 1024 --family sparse --p 0.01 --seed 1 W_data
//	gendata graph --n 1024 --family grid --cols 32 W_data
package main

import (
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cobench/grid"
	"github.com/katalvlaran/cobench/internal/cli"
	"github.com/katalvlaran/cobench/kernel"
	"github.com/katalvlaran/cobench/textio"
	"github.com/katalvlaran/cobench/workload"
)

func main() {
	os.Exit(cli.Main(newRootCmd()))
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:   "gendata",
		Short: "Generate input matrices for the benchmark programs",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", cli.DefaultLogLevel, "log level (debug|info|warn|error)")
	root.AddCommand(newDenseCmd(&logLevel), newGraphCmd(&logLevel))

	return root
}

// families maps --family tokens to distance-matrix generators over n vertices.
var families = map[string]func(n int, g graphFlags, opts []workload.Option) (*grid.Dense[int32], error){
	"cycle": func(n int, _ graphFlags, opts []workload.Option) (*grid.Dense[int32], error) {
		return workload.Cycle[int32](n, opts...)
	},
	"path": func(n int, _ graphFlags, opts []workload.Option) (*grid.Dense[int32], error) {
		return workload.Path[int32](n, opts...)
	},
	"complete": func(n int, _ graphFlags, opts []workload.Option) (*grid.Dense[int32], error) {
		return workload.Complete[int32](n, opts...)
	},
	"grid": func(n int, g graphFlags, opts []workload.Option) (*grid.Dense[int32], error) {
		if g.cols < 1 || n%g.cols != 0 {
			return nil, fmt.Errorf("--cols=%d must divide --n=%d: %w", g.cols, n, kernel.ErrInvalidArgument)
		}
		return workload.Grid[int32](n/g.cols, g.cols, opts...)
	},
	"sparse": func(n int, g graphFlags, opts []workload.Option) (*grid.Dense[int32], error) {
		return workload.RandomSparse[int32](n, g.p, opts...)
	},
}

type graphFlags struct {
	n          int
	family     string
	p          float64
	cols       int
	seed       int64
	minW, maxW int64
	inf        int64
	undirected bool
}

// checkRange rejects flag bounds that are reversed or outside int32, the
// element type of every generated file.
func checkRange(loName, hiName string, lo, hi int64) error {
	if lo < math.MinInt32 || hi > math.MaxInt32 || !workload.ValidRange(lo, hi) {
		return fmt.Errorf("%s=%d, %s=%d: want %s ≤ %s within int32: %w",
			loName, lo, hiName, hi, loName, hiName, kernel.ErrInvalidArgument)
	}

	return nil
}

func newDenseCmd(logLevel *string) *cobra.Command {
	var (
		n         int
		seed      int64
		low, high int64
	)
	cmd := &cobra.Command{
		Use:   "dense <out>...",
		Short: "Write uniform random N×N matrices, one per output path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRange("--lo", "--hi", low, high); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			log, err := cli.NewLogger(cmd.ErrOrStderr(), *logLevel)
			if err != nil {
				return err
			}
			for i, path := range args {
				m, err := workload.Random[int32](n,
					workload.WithSeed(seed+int64(i)), workload.WithRange(low, high))
				if err != nil {
					return err
				}
				if err = textio.WriteFile(path, m.Data()); err != nil {
					return err
				}
				log.Info("wrote", "path", path, "n", n, "seed", seed+int64(i))
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 1024, "matrix side")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed of the first matrix; later paths use seed+1, seed+2, ...")
	cmd.Flags().Int64Var(&low, "lo", workload.DefaultLow, "smallest value")
	cmd.Flags().Int64Var(&high, "hi", workload.DefaultHigh, "largest value")

	return cmd
}

func newGraphCmd(logLevel *string) *cobra.Command {
	var g graphFlags
	names := lo.Keys(families)
	slices.Sort(names)
	cmd := &cobra.Command{
		Use:   "graph <out>",
		Short: "Write an N×N distance matrix of a graph family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := families[g.family]
			if !ok {
				return fmt.Errorf("--family=%q: want one of %s: %w",
					g.family, strings.Join(names, "|"), kernel.ErrInvalidArgument)
			}
			if err := checkRange("--min-weight", "--max-weight", g.minW, g.maxW); err != nil {
				return err
			}
			if g.inf <= 0 {
				return fmt.Errorf("--inf=%d must be > 0: %w", g.inf, kernel.ErrInvalidArgument)
			}
			cmd.SilenceUsage = true

			log, err := cli.NewLogger(cmd.ErrOrStderr(), *logLevel)
			if err != nil {
				return err
			}
			opts := []workload.Option{
				workload.WithSeed(g.seed),
				workload.WithWeightFn(workload.UniformWeight(g.minW, g.maxW)),
				workload.WithInf(g.inf),
			}
			if g.undirected {
				opts = append(opts, workload.WithUndirected())
			}

			m, err := gen(g.n, g, opts)
			if err != nil {
				return err
			}
			if err = textio.WriteFile(args[0], m.Data()); err != nil {
				return err
			}
			log.Info("wrote", "path", args[0], "family", g.family, "n", m.Side(), "seed", g.seed)

			return nil
		},
	}
	cmd.Flags().IntVar(&g.n, "n", 1024, "vertex count (matrix side)")
	cmd.Flags().StringVar(&g.family, "family", "sparse", "graph family ("+strings.Join(names, "|")+")")
	cmd.Flags().Float64Var(&g.p, "p", 0.01, "edge probability for the sparse family")
	cmd.Flags().IntVar(&g.cols, "cols", 32, "lattice width for the grid family")
	cmd.Flags().Int64Var(&g.seed, "seed", 1, "random seed")
	cmd.Flags().Int64Var(&g.minW, "min-weight", 1, "smallest edge weight")
	cmd.Flags().Int64Var(&g.maxW, "max-weight", 100, "largest edge weight")
	cmd.Flags().Int64Var(&g.inf, "inf", workload.DefaultInf, "value written for missing edges")
	cmd.Flags().BoolVar(&g.undirected, "undirected", false, "mirror every edge")
	_ = cmd.RegisterFlagCompletionFunc("family", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
