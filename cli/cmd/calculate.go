// ABOUTME: Non-interactive and wizard-driven roadmap calculation command
// ABOUTME: Renders per-phase savings, investment, and crew figures

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/furnaceworks/automation-roadmap/cli/internal/client"
	"github.com/furnaceworks/automation-roadmap/cli/internal/styles"
	"github.com/spf13/cobra"
)

var (
	kkFlag          string
	heatPerDay      float64
	plateLife       float64
	cntLife         float64
	inLife          float64
	ppLife          float64
	o2SuccessRate   float64
	daysPerMonth    float64
	daysPerYear     float64
	crewModel       bool
	crewBaseline    float64
	shiftsPerDay    float64
	hseMinCrew      float64
	operatorCost    float64
	automatedCrew   float64
	disabledOps     []string
	phaseOverrides  []string
	interactiveMode bool
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run a roadmap calculation",
	Long: `Run an automation roadmap calculation against the backend.

All scenario inputs are flags; pass --interactive to fill them in a wizard.

Example:
  roadmap calculate --heat 20 --plate-life 2 --cnt-life 1 --in-life 9 --pp-life 20
  roadmap calculate --heat 20 --phase "Plate exchange=Phase 2" --disable "PP exchange"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if interactiveMode {
			if err := runInputWizard(); err != nil {
				return err
			}
		}

		req, err := buildRequest()
		if err != nil {
			return err
		}

		c := client.New(GetAPIURL())
		return runCalculate(ctx, c, os.Stdout, req, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(calculateCmd)

	calculateCmd.Flags().StringVar(&kkFlag, "kk", "no", "KK practice active (yes/no)")
	calculateCmd.Flags().Float64Var(&heatPerDay, "heat", 20, "Heats per day")
	calculateCmd.Flags().Float64Var(&plateLife, "plate-life", 2, "Plate life in heats")
	calculateCmd.Flags().Float64Var(&cntLife, "cnt-life", 1, "CNT life in heats")
	calculateCmd.Flags().Float64Var(&inLife, "in-life", 9, "IN life in heats")
	calculateCmd.Flags().Float64Var(&ppLife, "pp-life", 20, "PP life in heats")
	calculateCmd.Flags().Float64Var(&o2SuccessRate, "o2-success", 0.95, "O2 avoidance success rate (0..1)")
	calculateCmd.Flags().Float64Var(&daysPerMonth, "days-month", 22, "Working days per month")
	calculateCmd.Flags().Float64Var(&daysPerYear, "days-year", 250, "Working days per year")

	calculateCmd.Flags().BoolVar(&crewModel, "crew-model", false, "Enable the crew & labor cost model")
	calculateCmd.Flags().Float64Var(&crewBaseline, "crew-baseline", 3, "Crew per shift today")
	calculateCmd.Flags().Float64Var(&shiftsPerDay, "shifts", 3, "Shifts per day")
	calculateCmd.Flags().Float64Var(&hseMinCrew, "hse-min", 1, "Minimum crew per shift (HSE floor)")
	calculateCmd.Flags().Float64Var(&operatorCost, "operator-cost", 70000, "Average operator cost per year [EUR]")
	calculateCmd.Flags().Float64Var(&automatedCrew, "automated-crew", 1, "Crew per shift once automated")

	calculateCmd.Flags().StringArrayVar(&disabledOps, "disable", nil, "Exclude an operation from scope (repeatable)")
	calculateCmd.Flags().StringArrayVar(&phaseOverrides, "phase", nil, `Override an operation's phase, e.g. "Plate exchange=Phase 2" (repeatable)`)
	calculateCmd.Flags().BoolVarP(&interactiveMode, "interactive", "i", false, "Fill scenario inputs in a wizard")
}

// runInputWizard collects the core scenario inputs with a huh form.
func runInputWizard() error {
	heat := strconv.FormatFloat(heatPerDay, 'g', -1, 64)
	plate := strconv.FormatFloat(plateLife, 'g', -1, 64)
	cnt := strconv.FormatFloat(cntLife, 'g', -1, 64)
	o2 := strconv.FormatFloat(o2SuccessRate, 'g', -1, 64)

	positiveNumber := func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("enter a number > 0")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("KK practice active?").
				Options(huh.NewOption("no", "no"), huh.NewOption("yes", "yes")).
				Value(&kkFlag),
			huh.NewInput().
				Title("Heats per day").
				Validate(positiveNumber).
				Value(&heat),
			huh.NewInput().
				Title("Plate life [heats]").
				Validate(positiveNumber).
				Value(&plate),
			huh.NewInput().
				Title("CNT life [heats]").
				Validate(positiveNumber).
				Value(&cnt),
			huh.NewInput().
				Title("O2 avoidance success rate (0..1)").
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v < 0 || v > 1 {
						return fmt.Errorf("enter a number between 0 and 1")
					}
					return nil
				}).
				Value(&o2),
			huh.NewConfirm().
				Title("Enable crew & labor cost model?").
				Value(&crewModel),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	heatPerDay, _ = strconv.ParseFloat(heat, 64)
	plateLife, _ = strconv.ParseFloat(plate, 64)
	cntLife, _ = strconv.ParseFloat(cnt, 64)
	o2SuccessRate, _ = strconv.ParseFloat(o2, 64)
	return nil
}

// buildRequest assembles the calculation request from the flag values.
func buildRequest() (*client.CalculationRequest, error) {
	req := &client.CalculationRequest{
		Inputs: client.ScenarioInputs{
			KK:                  kkFlag,
			HeatPerDay:          heatPerDay,
			PlateLife:           plateLife,
			CNTLife:             cntLife,
			INLife:              inLife,
			PPLife:              ppLife,
			O2SuccessRate:       o2SuccessRate,
			WorkingDaysPerMonth: daysPerMonth,
			WorkingDaysPerYear:  daysPerYear,
		},
	}

	if crewModel {
		req.Inputs.CrewModelEnabled = true
		req.Inputs.CrewPerShiftBaseline = crewBaseline
		req.Inputs.ShiftsPerDay = shiftsPerDay
		req.Inputs.MinCrewPerShiftHSE = hseMinCrew
		req.Inputs.AvgOperatorCostPerYear = operatorCost
		req.Inputs.AutomatedCrewPerShift = automatedCrew
	}

	overrides := map[string]client.OperationOverride{}
	for _, name := range disabledOps {
		disabled := false
		ov := overrides[name]
		ov.Enabled = &disabled
		overrides[name] = ov
	}
	for _, spec := range phaseOverrides {
		name, phase, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --phase %q, expected \"Operation=Phase N\"", spec)
		}
		name = strings.TrimSpace(name)
		phase = strings.TrimSpace(phase)
		ov := overrides[name]
		ov.SelectedPhase = &phase
		overrides[name] = ov
	}
	if len(overrides) > 0 {
		req.Overrides = overrides
	}

	return req, nil
}

func runCalculate(ctx context.Context, c *client.Client, w io.Writer, req *client.CalculationRequest, jsonOut bool) error {
	result, err := c.Calculate(ctx, req)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(w, styles.Title.Render("Automation Roadmap"))
	fmt.Fprintf(w, "Baseline workload: %s h/day\n\n",
		styles.ValueStyle.Render(fmt.Sprintf("%.2f", result.BaselineWorkloadHoursPerDay)))

	for n := 1; n <= 3; n++ {
		phase, ok := result.Phases[n]
		if !ok {
			continue
		}
		fmt.Fprintln(w, renderPhaseCard(n, phase, result.CrewModelEnabled))
	}

	return nil
}

// renderPhaseCard renders one evaluation phase as a bordered block.
func renderPhaseCard(n int, p client.PhaseResult, crew bool) string {
	var b strings.Builder

	b.WriteString(styles.PhaseTitle.Render(fmt.Sprintf("Phase %d", n)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Saving:     %s h/day (%s)  %s\n",
		styles.SavingStyle.Render(fmt.Sprintf("%.2f", p.SavedWorkloadHoursPerDay)),
		fmt.Sprintf("%.1f%%", p.SavingFraction*100),
		styles.SavingBar(p.SavingFraction, 20)))
	b.WriteString(fmt.Sprintf("Remaining:  %.2f h/day\n", p.RemainingWorkloadHoursPerDay))
	b.WriteString(fmt.Sprintf("Per year:   %.0f h\n", p.SavedHoursPerYear))
	b.WriteString(fmt.Sprintf("Investment: %s kEUR total (%s kEUR new)\n",
		formatEUR(p.InvestmentTotalKEUR), formatEUR(p.InvestmentIncrementalKEUR)))
	if crew {
		b.WriteString(fmt.Sprintf("Crew:       %.0f per shift, %.0f heads saved, %s EUR/year\n",
			p.CrewPerShiftRequired, p.PaidHeadcountSaved, formatEUR(p.AnnualLaborCostReduction)))
	}
	if len(p.SolutionsUsed) > 0 {
		b.WriteString(styles.Subtitle.Render("Solutions: " + strings.Join(p.SolutionsUsed, "; ")))
	} else {
		b.WriteString(styles.Subtitle.Render("Solutions: none"))
	}

	return styles.PhaseCard.Render(b.String())
}

// formatEUR renders an amount with thin spacing between thousands
// groups, e.g. 1234567 -> "1 234 567".
func formatEUR(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 0, 64)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	return out
}
