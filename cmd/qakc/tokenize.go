package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qak/internal/diagfmt"
	"qak/internal/driver"
	"qak/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.qak>",
	Short: "Tokenize a Qak source file",
	Long:  `Tokenize breaks down a Qak source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
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
	result, err := driver.TokenizeFile(reg, args[0], opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		printDiagnostics(cmd, result)
		exitCode = 2
	}

	switch diagfmt.ParseFormat(format) {
	case diagfmt.FormatJSON:
		return diagfmt.FormatTokensJSON(os.Stdout, result.File, result.Tokens)
	case diagfmt.FormatMsgpack:
		return diagfmt.FormatTokensMsgpack(os.Stdout, result.File, result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(os.Stdout, result.File, result.Tokens)
	}
}
