package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"golang.org/x/sync/errgroup"

	"qak/internal/driver"
	"qak/internal/source"
)

var batchCmd = &cobra.Command{
	Use:   "batch [flags] <file.qak>...",
	Short: "Compile several Qak source files as independent units",
	Long:  `Batch compiles every listed file concurrently. Each file is a fully independent compilation unit with its own source buffer, token vector, arena, and diagnostic sink; nothing is shared across units.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	opts, err := compileOptions(cmd)
	if err != nil {
		return err
	}

	results := make([]*driver.Result, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reg := source.NewRegistry()
			result, err := driver.CompileFile(reg, path, opts)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Report in argument order, not completion order, so output is
	// stable across runs.
	anyDiagnostics := false
	for i, result := range results {
		if result.Bag.Len() == 0 {
			fmt.Fprintf(os.Stdout, "%s: ok\n", args[i])
			continue
		}
		anyDiagnostics = true
		printDiagnostics(cmd, result)
	}
	if anyDiagnostics {
		exitCode = 2
	}
	return nil
}
