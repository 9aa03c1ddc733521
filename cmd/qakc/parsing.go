package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qak/internal/diagfmt"
	"qak/internal/driver"
	"qak/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.qak>",
	Short: "Parse a Qak source file and output its AST",
	Long:  `Parse analyzes a Qak source file and outputs its abstract syntax tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	opts, err := compileOptions(cmd)
	if err != nil {
		return err
	}

	reg := source.NewRegistry()
	result, err := driver.CompileFile(reg, args[0], opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		printDiagnostics(cmd, result)
		exitCode = 2
		return nil
	}

	switch format {
	case "pretty":
		return diagfmt.FormatASTPretty(os.Stdout, result.Module, result.Builder, result.File)
	case "json":
		return diagfmt.FormatASTJSON(os.Stdout, result.Module, result.Builder, result.File)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
