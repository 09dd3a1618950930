package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"aoc2023"
	"aoc2023/solutions"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var (
		cfg   aoc.Config
		debug bool
	)
	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Run Advent of Code 2023 solutions",
		Long: `Runs the registered Advent of Code 2023 solvers. Each part is
checked against its embedded sample before the real input, which is
fetched from adventofcode.com (see AOC_SESSION) and cached on disk.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			aoc.Run(2023, solutions.Source, solutions.New(), cfg)
		},
	}
	rootCmd.Flags().IntVar(&cfg.Day, "day", 0, "day to run (0 runs all)")
	rootCmd.Flags().StringVar(&cfg.Part, "part", "", "part to run (empty runs all)")
	rootCmd.Flags().BoolVar(&cfg.OnlySample, "sample", false, "only run samples")
	rootCmd.Flags().BoolVar(&cfg.SkipSample, "skip-sample", false, "skip samples")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
