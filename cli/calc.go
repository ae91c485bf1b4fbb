package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/warp/salary-engine/generic"
	"github.com/warp/salary-engine/payroll"
)

// calcFlags holds the flag values for the calc command.
// Numeric inputs stay as text so bad values reach the payroll parser.
type calcFlags struct {
	raw     payroll.RawInputs
	date    string
	file    string
	jsonOut bool
}

// now is the calc command's clock.
var now = time.Now

// NewCalcCommand creates the "calc" command.
func NewCalcCommand() *cobra.Command {
	flags := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate one monthly salary breakdown",
		Long: `Calculate a salary breakdown and print it.

Inputs come from flags, or from a YAML file with the keys base_salary,
tax_amount, medical_amount, leave_days and misc_units. Flags given on the
command line override values from the file. Missing inputs are zero.

Examples:
  salary calc --base 30000
  salary calc --base 45000 --tax 2500 --medical 1200.50 --leave 2 --misc 10
  salary calc --file march.yaml --date 2024-07-01 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wrapError(runCalc(cmd, flags))
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.raw.BaseSalary, "base", "", "Monthly base salary (₹)")
	f.StringVar(&flags.raw.TaxAmount, "tax", "", "Tax amount (₹)")
	f.StringVar(&flags.raw.MedicalAmount, "medical", "", "Medical deduction (₹)")
	f.StringVar(&flags.raw.LeaveDays, "leave", "", "Leave days taken")
	f.StringVar(&flags.raw.MiscUnits, "misc", "", "Dabba kada units")
	f.StringVar(&flags.date, "date", "", "Reference date YYYY-MM-DD (default today)")
	f.StringVarP(&flags.file, "file", "f", "", "YAML file with the five inputs")
	f.BoolVar(&flags.jsonOut, "json", false, "Output in JSON format")

	return cmd
}

func runCalc(cmd *cobra.Command, flags *calcFlags) error {
	raw := flags.raw
	if flags.file != "" {
		fromFile, err := readInputsFile(flags.file)
		if err != nil {
			return &CLIError{Code: ExitGeneralError, Message: "cannot read inputs file", Err: err}
		}
		raw = mergeInputs(fromFile, flags.raw, cmd)
	}

	ref := generic.FromTime(now())
	if flags.date != "" {
		parsed, err := generic.ParseDate(flags.date)
		if err != nil {
			return err
		}
		ref = parsed
	}

	report, err := payroll.CalculateText(raw, payroll.CalculationContext{ReferenceDate: ref})
	if err != nil {
		return err
	}

	if flags.jsonOut {
		return writeReportJSON(cmd.OutOrStdout(), report)
	}
	return writeReportText(cmd.OutOrStdout(), report)
}

func readInputsFile(path string) (payroll.RawInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return payroll.RawInputs{}, err
	}
	var raw payroll.RawInputs
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return payroll.RawInputs{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, nil
}

// mergeInputs overlays flags the user actually set onto file values.
func mergeInputs(file, fromFlags payroll.RawInputs, cmd *cobra.Command) payroll.RawInputs {
	set := cmd.Flags().Changed
	if set("base") {
		file.BaseSalary = fromFlags.BaseSalary
	}
	if set("tax") {
		file.TaxAmount = fromFlags.TaxAmount
	}
	if set("medical") {
		file.MedicalAmount = fromFlags.MedicalAmount
	}
	if set("leave") {
		file.LeaveDays = fromFlags.LeaveDays
	}
	if set("misc") {
		file.MiscUnits = fromFlags.MiscUnits
	}
	return file
}

func writeReportText(w io.Writer, report payroll.ResultReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, line := range report.Lines {
		fmt.Fprintf(tw, "%s\t%s\n", line.Label, line.Value)
	}
	return tw.Flush()
}

type reportJSON struct {
	Period string               `json:"period"`
	Lines  []payroll.ResultLine `json:"lines"`
}

func writeReportJSON(w io.Writer, report payroll.ResultReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reportJSON{Period: report.Period, Lines: report.Lines})
}
