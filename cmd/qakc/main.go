package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"golang.org/x/term"

	"qak/internal/config"
	"qak/internal/diagfmt"
	"qak/internal/driver"
	"qak/internal/source"
	"qak/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "qakc [flags] <file.qak>",
	Short: "Qak language compiler front end",
	Long:  `qakc tokenizes and parses a Qak source file, reporting diagnostics with carets or dumping the resulting AST`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRoot,
}

// exitCode is what main exits with after Execute returns nil: 0 by
// default, 2 when compilation reported diagnostics. I/O and usage
// failures surface as errors from Execute and exit 1.
var exitCode int

// main configures the root CLI command (sets the version, registers
// subcommands, and defines persistent flags) and then executes it.
func main() {
	defaults := loadDefaults()

	rootCmd.Version = version.Version
	rootCmd.SilenceErrors = true

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)

	maxDiag := defaults.Output.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = 100
	}
	rootCmd.PersistentFlags().String("color", defaults.Output.Color, "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", maxDiag, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "qakc: %v\n", err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

// loadDefaults reads the optional .qakcrc.toml from the working
// directory; a broken file is reported but never fatal, since the
// built-in defaults always work.
func loadDefaults() config.Config {
	wd, err := os.Getwd()
	if err != nil {
		return config.Default()
	}
	cfg, _, err := config.Load(wd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qakc: %v\n", err)
		return config.Default()
	}
	return cfg
}

// runRoot compiles the single positional source file: diagnostics go
// to stderr in caret format, the AST dump to stdout on success. With
// no argument it prints usage and exits 0.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	cmd.SilenceUsage = true

	opts, err := compileOptions(cmd)
	if err != nil {
		return err
	}

	reg := source.NewRegistry()
	result, err := driver.CompileFile(reg, args[0], opts)
	if err != nil {
		return err
	}

	if result.Bag.Len() > 0 {
		printDiagnostics(cmd, result)
		exitCode = 2
		return nil
	}
	return diagfmt.FormatASTPretty(os.Stdout, result.Module, result.Builder, result.File)
}

func compileOptions(cmd *cobra.Command) (driver.Options, error) {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return driver.Options{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return driver.Options{MaxDiagnostics: maxDiagnostics}, nil
}

// printDiagnostics renders result's bag to stderr, colorized per the
// --color flag and stderr's terminal-ness.
func printDiagnostics(cmd *cobra.Command, result *driver.Result) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		colorFlag = "auto"
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr))
	diagfmt.Pretty(os.Stderr, result.Bag, result.File, diagfmt.PrettyOpts{
		Color:   useColor,
		Context: 2,
	})
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
