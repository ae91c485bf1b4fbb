// Package cli implements the cobra commands of the salary binary.
//
//   salary serve   Web form and JSON API (see api package)
//   salary calc    One calculation printed to the terminal
//
// Both commands are hosts around the payroll package: they gather the five
// inputs, supply today's date, and render the report.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/warp/salary-engine/generic"
	"github.com/warp/salary-engine/payroll"
)

// Version is set from main at build time.
var Version = "dev"

// ExitCode is the process status for a failed command.
type ExitCode int

const (
	ExitGeneralError ExitCode = 1
	ExitInvalidInput ExitCode = 2
)

// CLIError carries an exit code alongside the message.
type CLIError struct {
	Code    ExitCode
	Message string
	Err     error
}

func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error { return e.Err }

// wrapError maps domain errors onto exit codes and user messages.
func wrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case generic.IsInvalidInput(err):
		return &CLIError{Code: ExitInvalidInput, Message: payroll.InvalidInputMessage, Err: err}
	case generic.IsClientError(err):
		return &CLIError{Code: ExitInvalidInput, Message: "invalid argument", Err: err}
	default:
		return err
	}
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "salary",
		Short: "Monthly salary breakdown calculator",
		Long: `salary computes a monthly salary breakdown from five inputs: base salary,
tax, medical deduction, leave days and dabba kada units.

A month with five Mondays pays one extra day's salary.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	root.AddCommand(NewCalcCommand())
	root.AddCommand(NewServeCommand())

	return root
}

// Execute runs the root command and exits with the mapped status.
func Execute(root *cobra.Command) {
	if err := root.Execute(); err != nil {
		os.Exit(int(printError(root.ErrOrStderr(), err)))
	}
}

// printError writes err and returns the exit code it maps to.
func printError(w io.Writer, err error) ExitCode {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Code == ExitInvalidInput && cliErr.Message == payroll.InvalidInputMessage {
			fmt.Fprintln(w, cliErr.Message)
		} else {
			fmt.Fprintf(w, "Error: %s\n", cliErr.Error())
		}
		return cliErr.Code
	}
	fmt.Fprintf(w, "Error: %s\n", err)
	return ExitGeneralError
}
