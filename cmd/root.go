package cmd

import (
	"fmt"
	"os"

	"randgen/numgen"

	"github.com/spf13/cobra"
	prettyconsole "github.com/thessem/zap-prettyconsole"
	"go.uber.org/zap"
)

var logger *zap.Logger

type Flags struct {
	Kind     string
	Min      float64
	Max      float64
	Count    int
	Examples bool
}

var flags Flags

var rootCmd = &cobra.Command{
	Use:           "randgen",
	Short:         "Generate uniform random integers or floats",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flags.Examples {
			return printExamples()
		}
		return generate()
	},
}

func generate() error {
	kind, err := numgen.ParseKind(flags.Kind)
	if err != nil {
		return err
	}

	values, err := numgen.Many(kind, flags.Count, flags.Min, flags.Max)
	if err != nil {
		return err
	}

	for _, v := range values {
		printValue(kind, v)
	}

	return nil
}

func printValue(kind numgen.Kind, v float64) {
	if kind == numgen.KindInt {
		fmt.Println(int64(v))
	} else {
		fmt.Println(v)
	}
}

func printExamples() error {
	fmt.Println("Examples:")
	fmt.Println()

	single, err := numgen.Int(1, 10)
	if err != nil {
		return err
	}
	fmt.Println("Single int [1, 10]:", single)

	f, err := numgen.Float(0.0, 1.0)
	if err != nil {
		return err
	}
	fmt.Println("Single float [0.0, 1.0]:", f)

	ints, err := numgen.Many(numgen.KindInt, 5, 10, 20)
	if err != nil {
		return err
	}
	fmt.Println("Five ints [10, 20]:", ints)

	floats, err := numgen.Many(numgen.KindFloat, 5, 1.5, 2.5)
	if err != nil {
		return err
	}
	fmt.Println("Five floats [1.5, 2.5]:", floats)

	return nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("Exit with error", zap.Error(err))
		os.Exit(1)
	}
}

func init() {
	logger = prettyconsole.NewLogger(zap.DebugLevel)

	flags = Flags{
		Kind:  "int",
		Min:   0,
		Max:   100,
		Count: 1,
	}

	rootCmd.Flags().StringVar(&flags.Kind, "kind", flags.Kind, "Type of number to generate (int or float)")
	rootCmd.Flags().Float64Var(&flags.Min, "min", flags.Min, "Minimum value (inclusive)")
	rootCmd.Flags().Float64Var(&flags.Max, "max", flags.Max, "Maximum value (inclusive)")
	rootCmd.Flags().IntVarP(&flags.Count, "count", "n", flags.Count, "How many numbers to generate")
	rootCmd.Flags().BoolVar(&flags.Examples, "examples", false, "Print a few example outputs instead of generating")
}
