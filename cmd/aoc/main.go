// Command aoc runs registered Advent of Code solvers.
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rangemap/aoc"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

//go:embed day*.go
var sources embed.FS

func main() {
	aoc.Add(
		day5,
	)
	if err := loadSamples(sources); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSamples(fsys fs.FS) error {
	files, err := fs.Glob(fsys, "day*.go")
	if err != nil {
		return err
	}
	for _, name := range files {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		if err := aoc.ExtractSamples(src); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(runCmd())
	cmd.AddCommand(listCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range aoc.Names() {
				p, err := aoc.Lookup(name)
				if err != nil {
					return err
				}
				sample := "no sample"
				if p.Sample != nil {
					sample = "sample want=" + p.Sample.Want
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tday %d\t%s\n", p.Name, p.Day, sample)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aoc version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}
