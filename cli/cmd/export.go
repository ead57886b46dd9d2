// ABOUTME: Export command for roadmap CLI
// ABOUTME: Calculates a scenario and writes the CSV export to a file or stdout

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/furnaceworks/automation-roadmap/cli/internal/client"
	"github.com/spf13/cobra"
)

var (
	exportOutput  string
	exportNoCosts bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a calculation as CSV",
	Long: `Run a roadmap calculation and export the result as CSV.

Takes the same scenario flags as calculate.

Example:
  roadmap export --heat 20 --output roadmap.csv
  roadmap export --heat 20 --no-costs > roadmap.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		req, err := buildRequest()
		if err != nil {
			return err
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("cannot create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		c := client.New(GetAPIURL())
		if err := c.ExportCSV(ctx, req, !exportNoCosts, out); err != nil {
			return err
		}

		if exportOutput != "" {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write CSV to a file instead of stdout")
	exportCmd.Flags().BoolVar(&exportNoCosts, "no-costs", false, "Omit cost and investment columns")

	// Scenario flags are shared with calculate via the package-level
	// variables; register the same set here
	exportCmd.Flags().StringVar(&kkFlag, "kk", "no", "KK practice active (yes/no)")
	exportCmd.Flags().Float64Var(&heatPerDay, "heat", 20, "Heats per day")
	exportCmd.Flags().Float64Var(&plateLife, "plate-life", 2, "Plate life in heats")
	exportCmd.Flags().Float64Var(&cntLife, "cnt-life", 1, "CNT life in heats")
	exportCmd.Flags().Float64Var(&inLife, "in-life", 9, "IN life in heats")
	exportCmd.Flags().Float64Var(&ppLife, "pp-life", 20, "PP life in heats")
	exportCmd.Flags().Float64Var(&o2SuccessRate, "o2-success", 0.95, "O2 avoidance success rate (0..1)")
	exportCmd.Flags().Float64Var(&daysPerMonth, "days-month", 22, "Working days per month")
	exportCmd.Flags().Float64Var(&daysPerYear, "days-year", 250, "Working days per year")
	exportCmd.Flags().BoolVar(&crewModel, "crew-model", false, "Enable the crew & labor cost model")
	exportCmd.Flags().Float64Var(&crewBaseline, "crew-baseline", 3, "Crew per shift today")
	exportCmd.Flags().Float64Var(&shiftsPerDay, "shifts", 3, "Shifts per day")
	exportCmd.Flags().Float64Var(&hseMinCrew, "hse-min", 1, "Minimum crew per shift (HSE floor)")
	exportCmd.Flags().Float64Var(&operatorCost, "operator-cost", 70000, "Average operator cost per year [EUR]")
	exportCmd.Flags().Float64Var(&automatedCrew, "automated-crew", 1, "Crew per shift once automated")
	exportCmd.Flags().StringArrayVar(&disabledOps, "disable", nil, "Exclude an operation from scope (repeatable)")
	exportCmd.Flags().StringArrayVar(&phaseOverrides, "phase", nil, `Override an operation's phase, e.g. "Plate exchange=Phase 2" (repeatable)`)
}
