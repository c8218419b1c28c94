package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/unbound-force/arith/internal/arith"
	"github.com/unbound-force/arith/internal/config"
	"github.com/unbound-force/arith/internal/report"
	"github.com/unbound-force/arith/internal/scaffold"
	"github.com/unbound-force/arith/internal/taxonomy"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

// reportVersion is the version of the JSON report layout.
const reportVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	format     string
	precision  int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "arith",
		Short: "arith - integer addition and checked floating-point division",
		Long: `arith adds two integers or divides two floating-point numbers.
Division by zero is reported as a DivisionByZero failure and a
non-zero exit status, never as an infinite or NaN result.

Negative operands must follow "--", e.g. arith add -- -2 2.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}
		},
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "",
		"path to config file (default: "+config.DefaultFile+" if present)")
	root.PersistentFlags().StringVar(&flags.format, "format", "",
		"output format: text or json (default: from config, else text)")
	root.PersistentFlags().IntVar(&flags.precision, "precision", -1,
		"digits after the decimal point for division results (-1 = shortest)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false,
		"enable debug logging")

	root.AddCommand(newAddCmd(&flags))
	root.AddCommand(newDivideCmd(&flags))
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newInitCmd())

	return root
}

// outputOptions is the resolved rendering configuration.
type outputOptions struct {
	format    string
	precision int
}

// resolveOutput merges the config file with any flags the user set.
// Flags win over the file.
func resolveOutput(cmd *cobra.Command, flags *rootFlags) (outputOptions, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return outputOptions{}, err
	}
	out := outputOptions{
		format:    cfg.Output.Format,
		precision: cfg.Output.Precision,
	}
	if flags.format != "" {
		out.format = flags.format
	}
	if cmd.Flags().Changed("precision") {
		out.precision = flags.precision
	}
	return out, nil
}

// addParams holds the parsed arguments for the add command.
type addParams struct {
	a, b   string
	output outputOptions
	stdout io.Writer
}

// runAdd is the extracted, testable body of the add command.
func runAdd(p addParams) error {
	if err := validateOutput(p.output); err != nil {
		return err
	}

	a, err := strconv.Atoi(p.a)
	if err != nil {
		return fmt.Errorf("parsing addend %q: %w", p.a, err)
	}
	b, err := strconv.Atoi(p.b)
	if err != nil {
		return fmt.Errorf("parsing addend %q: %w", p.b, err)
	}

	start := time.Now()
	sum := arith.New().Add(a, b)
	logger.Debug("computed sum", "a", a, "b", b, "sum", sum)

	result := taxonomy.NewSuccess(taxonomy.OpAdd, taxonomy.IntNumber(sum),
		taxonomy.IntNumber(a), taxonomy.IntNumber(b))
	return writeReport(p.stdout, p.output, []taxonomy.Result{result}, start)
}

func newAddCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add A B",
		Short: "Add two integers",
		Long: `Add two integers. Overflow wraps using two's complement,
matching Go's int arithmetic.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := resolveOutput(cmd, flags)
			if err != nil {
				return err
			}
			return runAdd(addParams{
				a:      args[0],
				b:      args[1],
				output: out,
				stdout: cmd.OutOrStdout(),
			})
		},
	}
}

// divideParams holds the parsed arguments for the divide command.
type divideParams struct {
	dividend, divisor string
	output            outputOptions
	stdout            io.Writer
}

// runDivide is the extracted, testable body of the divide command.
// A zero divisor still produces a report, then returns an error
// wrapping arith.ErrDivisionByZero.
func runDivide(p divideParams) error {
	if err := validateOutput(p.output); err != nil {
		return err
	}

	a, err := strconv.ParseFloat(p.dividend, 64)
	if err != nil {
		return fmt.Errorf("parsing dividend %q: %w", p.dividend, err)
	}
	b, err := strconv.ParseFloat(p.divisor, 64)
	if err != nil {
		return fmt.Errorf("parsing divisor %q: %w", p.divisor, err)
	}

	start := time.Now()
	operands := []taxonomy.Number{taxonomy.FloatNumber(a), taxonomy.FloatNumber(b)}

	quotient, divErr := arith.New().Divide(a, b)
	var result taxonomy.Result
	switch {
	case errors.Is(divErr, arith.ErrDivisionByZero):
		logger.Warn("division rejected", "dividend", a, "divisor", b)
		result = taxonomy.NewFailure(taxonomy.OpDivide, taxonomy.DivisionByZero, divErr, operands...)
	case divErr != nil:
		return divErr
	default:
		logger.Debug("computed quotient", "dividend", a, "divisor", b, "quotient", quotient)
		result = taxonomy.NewSuccess(taxonomy.OpDivide, taxonomy.FloatNumber(quotient), operands...)
	}

	if err := writeReport(p.stdout, p.output, []taxonomy.Result{result}, start); err != nil {
		return err
	}
	if divErr != nil {
		return fmt.Errorf("dividing %s by %s: %w", operands[0], operands[1], divErr)
	}
	return nil
}

func newDivideCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "divide DIVIDEND DIVISOR",
		Short: "Divide two floating-point numbers",
		Long: `Divide two float64 values under IEEE-754 rules. A divisor of
zero (including -0) fails with DivisionByZero and exits non-zero.
Infinite and NaN operands are accepted and follow IEEE-754.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := resolveOutput(cmd, flags)
			if err != nil {
				return err
			}
			return runDivide(divideParams{
				dividend: args[0],
				divisor:  args[1],
				output:   out,
				stdout:   cmd.OutOrStdout(),
			})
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for arith output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of arith --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.DefaultFile + " to the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scaffold.Run(scaffold.Options{
				Force:   force,
				Version: version,
				Stdout:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"overwrite an existing config file")

	return cmd
}

func validateOutput(out outputOptions) error {
	if err := config.ValidateFormat(out.format); err != nil {
		return err
	}
	return config.ValidatePrecision(out.precision)
}

// writeReport outputs results in the requested format.
func writeReport(w io.Writer, out outputOptions, results []taxonomy.Result, start time.Time) error {
	switch out.format {
	case config.FormatJSON:
		md := &taxonomy.Metadata{
			ArithVersion: version,
			GoVersion:    runtime.Version(),
			Timestamp:    start,
			Duration:     time.Since(start),
		}
		return report.WriteJSONWithMetadata(w, results, reportVersion, md)
	default:
		return report.WriteTextOptions(w, results, report.TextOptions{Precision: out.precision})
	}
}
