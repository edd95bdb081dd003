package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const usageLine = "Usage: pretee source-file.pre"

// errReported means the failure was already written to the user.
var errReported = errors.New("reported")

type cliParams struct {
	verbose bool
	noColor bool
	symbols bool
	format  string
	ast     bool
}

func (p *cliParams) logger(stderr io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(stderr)
	l.SetLevel(logrus.WarnLevel)
	if p.verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

var (
	bannerColor  = color.New(color.Bold)
	errorColor   = color.New(color.FgRed)
	warningColor = color.New(color.FgYellow)
)

func newRootCommand() *cobra.Command {
	params := &cliParams{}

	root := &cobra.Command{
		Use:   "pretee <file>",
		Short: "PreTee - a prefix expression interpreter",
		Long: `PreTee compiles a prefix-notation source file, prints it back as infix
source and then executes it.`,
		Example: `  pretee examples/prog1.pre
  pretee check --format yaml examples/prog1.pre
  pretee eval '= x + 3 4; @x'`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if params.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return nil
			}
			return runFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], params)
		},
	}
	root.PersistentFlags().BoolVarP(&params.verbose, "verbose", "v", false, "Show verbose compilation details")
	root.PersistentFlags().BoolVar(&params.noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVarP(&params.symbols, "symbols", "s", false, "Print the symbol table after execution")

	root.AddCommand(
		&cobra.Command{
			Use:   "run <file>",
			Short: "Compile, print as infix and execute a .pre file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], params)
			},
		},
		&cobra.Command{
			Use:   "emit <file>",
			Short: "Print a .pre file as infix source",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return emitFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], params)
			},
		},
		&cobra.Command{
			Use:   "eval <code>",
			Short: "Evaluate inline PreTee code; ';' separates lines",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return evalCode(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], params)
			},
		},
		newCheckCommand(params),
		&cobra.Command{
			Use:   "repl",
			Short: "Start an interactive PreTee session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return newREPL(cmd.OutOrStdout(), params.logger(cmd.ErrOrStderr())).Loop()
			},
		},
	)

	return root
}

func newCheckCommand(params *cliParams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a .pre file and report syntax errors",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			switch params.format {
			case formatText, formatJSON, formatYAML:
				return nil
			}
			return fmt.Errorf("unknown format %q (want %s, %s or %s)", params.format, formatText, formatJSON, formatYAML)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], params)
		},
	}
	cmd.Flags().StringVarP(&params.format, "format", "f", formatText, "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&params.ast, "ast", false, "Include the s-expression of every parsed statement")
	return cmd
}

func loadProgram(stderr io.Writer, filename string, params *cliParams) (*Program, error) {
	log := params.logger(stderr)
	log.WithField("file", filename).Debug("compiling")
	p, err := DecodeFile(filename, &ParseOptions{Logger: log})
	if err != nil {
		errorColor.Fprintf(stderr, "Error reading file %s: %v\n", filename, err)
		return nil, errReported
	}
	log.WithFields(logrus.Fields{"statements": len(p.Trees), "errors": p.Errors.Len()}).Debug("compiled")
	return p, nil
}

func runFile(stdout, stderr io.Writer, filename string, params *cliParams) error {
	bannerColor.Fprintf(stdout, "PRETEE: Compiling %s...\n", filename)
	p, err := loadProgram(stderr, filename, params)
	if err != nil {
		return err
	}
	return runProgram(stdout, p, params)
}

func evalCode(stdout, stderr io.Writer, code string, params *cliParams) error {
	log := params.logger(stderr)
	log.WithField("code", code).Debug("evaluating")
	p, err := Parse([]byte(strings.ReplaceAll(code, ";", "\n")), &ParseOptions{Logger: log})
	if err != nil {
		return err
	}
	return runProgram(stdout, p, params)
}

// runProgram reports syntax errors, prints the infix source and executes.
func runProgram(stdout io.Writer, p *Program, params *cliParams) error {
	printSyntaxErrors(stdout, p)

	bannerColor.Fprintln(stdout, "\nPRETEE: Infix source...")
	if err := p.Emit(stdout); err != nil {
		return err
	}

	bannerColor.Fprintln(stdout, "\nPRETEE: Executing...")
	err := p.Evaluate(stdout)
	var rt *RuntimeError
	switch {
	case err == nil:
	case errors.Is(err, ErrEvaluationSkipped):
		warningColor.Fprintf(stdout, "*** Execution skipped: %d syntax error(s)\n", p.Errors.Len())
	case errors.As(err, &rt):
		errorColor.Fprintf(stdout, "*** Runtime error: %s\n", rt.Error())
	default:
		return err
	}

	if params.symbols {
		fmt.Fprintln(stdout)
		if err := renderSymbols(stdout, p.Symbols); err != nil {
			return err
		}
	}

	if err != nil {
		return errReported
	}
	return nil
}

func emitFile(stdout, stderr io.Writer, filename string, params *cliParams) error {
	p, err := loadProgram(stderr, filename, params)
	if err != nil {
		return err
	}
	printSyntaxErrors(stderr, p)
	if err := p.Emit(stdout); err != nil {
		return err
	}
	if p.Errors.HasErrors() {
		return errReported
	}
	return nil
}

func checkFile(stdout, stderr io.Writer, filename string, params *cliParams) error {
	p, err := loadProgram(stderr, filename, params)
	if err != nil {
		return err
	}
	if err := writeCheckReport(stdout, newCheckReport(filename, p, params.ast), params.format); err != nil {
		return err
	}
	if p.Errors.HasErrors() {
		return errReported
	}
	return nil
}

func printSyntaxErrors(w io.Writer, p *Program) {
	for _, err := range p.Errors.All() {
		errorColor.Fprintf(w, "Line %d: %s\n", err.Line, err.Error())
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
