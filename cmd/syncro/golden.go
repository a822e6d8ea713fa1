package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"syncro/internal/golden"
	"syncro/internal/shell"
)

// newGoldenCmd builds the record/run/diff commands for golden script tests.
func newGoldenCmd(opts *rootOptions) *cobra.Command {
	var dir string

	runner := func() *golden.Runner {
		return golden.NewRunner(dir, func(out io.Writer) (*shell.App, error) {
			return shell.NewApp(opts.cfg, shell.WithTestMode(true), shell.WithOutput(out))
		})
	}

	goldenCmd := &cobra.Command{
		Use:   "golden",
		Short: "Record and verify golden script output",
		Long: `Run .syncro scripts and compare their output with recorded .expected files.
Output is always produced in test mode, without colors.`,
	}
	goldenCmd.PersistentFlags().StringVar(&dir, "dir", "test/golden", "Directory holding .syncro scripts and .expected files")

	recordCmd := &cobra.Command{
		Use:   "record <name>...",
		Short: "Record the expected output of scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := runner()
			for _, name := range args {
				if err := r.Record(cmd.Context(), name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "recorded %s\n", name)
			}
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [name]...",
		Short: "Compare scripts with their recordings",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := runner()

			var results []golden.Result
			if len(args) == 0 {
				all, err := r.RunAll(cmd.Context())
				if err != nil {
					return err
				}
				results = all
			} else {
				for _, name := range args {
					res, err := r.Run(cmd.Context(), name)
					if err != nil {
						res = golden.Result{Name: name, Actual: "error: " + err.Error()}
					}
					results = append(results, res)
				}
			}

			var failed []string
			for _, res := range results {
				if res.Passed {
					fmt.Fprintf(cmd.OutOrStdout(), "PASS %s\n", res.Name)
					continue
				}
				failed = append(failed, res.Name)
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n", res.Name)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nResults: %d passed, %d failed\n", len(results)-len(failed), len(failed))

			if len(failed) > 0 {
				return fmt.Errorf("tests failed: %v", failed)
			}
			return nil
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff <name>",
		Short: "Show how a script's output differs from its recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runner().Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), golden.Diff(res.Name, res.Expected, res.Actual))
			return err
		},
	}

	goldenCmd.AddCommand(recordCmd, runCmd, diffCmd)
	return goldenCmd
}
