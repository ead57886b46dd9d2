// ABOUTME: CSV export of a calculation request/response pair
// ABOUTME: Tabular layout: header metadata, scenario inputs, scope rows, phase rows

package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/furnaceworks/automation-roadmap/models"
)

const (
	exportToolName    = "Automation Roadmap Analyzer"
	exportToolVersion = "v1.0.0"
)

// ExportOptions controls which sections the CSV export carries. The
// crew section follows the request's crew model flag.
type ExportOptions struct {
	IncludeCosts bool
	ExportedAt   time.Time
}

// yesNo renders a boolean the way the scope rows expect it.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// num renders an input value without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCSV serializes one request/response pair as CSV. The layout is
// fixed: tool metadata, scenario inputs, the baseline figure, the
// per-operation scope, and one row per evaluation phase.
func WriteCSV(w io.Writer, defs []models.OperationDefinition, req models.CalculationRequest, resp models.CalculationResponse, opts ExportOptions) error {
	in := req.Inputs
	includeCrew := resp.CrewModelEnabled

	exportedAt := opts.ExportedAt
	if exportedAt.IsZero() {
		exportedAt = time.Now()
	}

	cw := csv.NewWriter(w)

	rows := [][]string{
		{exportToolName, exportToolVersion},
		{"Export date", exportedAt.Format("2006-01-02")},
		{},
		{"SCENARIO INPUTS"},
		{"KK", in.KK},
		{"Heat/day", num(in.HeatPerDay)},
		{"Plate life", num(in.PlateLife)},
		{"CNT life", num(in.CNTLife)},
		{"IN life", num(in.INLife)},
		{"PP life", num(in.PPLife)},
		{"O2 success rate", num(in.O2SuccessRate)},
		{"Working days per month", num(in.WorkingDaysPerMonth)},
		{"Working days per year", num(in.WorkingDaysPerYear)},
		{"Show cost & investment", yesNo(opts.IncludeCosts)},
		{"Enable crew & labor cost model", yesNo(includeCrew)},
	}

	if includeCrew {
		rows = append(rows,
			[]string{"Crew per shift (baseline)", num(in.CrewPerShiftBaseline)},
			[]string{"Number of shifts per day", num(in.ShiftsPerDay)},
			[]string{"Minimum crew per shift (HSE floor)", num(in.MinCrewPerShiftHSE)},
			[]string{"Average operator cost per year [EUR]", num(in.AvgOperatorCostPerYear)},
			[]string{"When automated: crew per shift", num(in.AutomatedCrewPerShift)},
		)
	}

	rows = append(rows,
		[]string{},
		[]string{"Baseline workload (h/day)", fmt.Sprintf("%.4f", resp.BaselineWorkloadHoursPerDay)},
		[]string{},
		[]string{"OPERATIONS (scope)"},
	)

	scopeHeader := []string{"Use", "Function", "Phase", "Time/op [min]"}
	if opts.IncludeCosts {
		scopeHeader = append(scopeHeader, "Cost [kEUR]")
	}
	scopeHeader = append(scopeHeader, "Crew per shift (manual)")
	rows = append(rows, scopeHeader)

	for _, op := range req.Overrides.ResolveAll(defs) {
		row := []string{
			yesNo(op.Enabled),
			op.Definition.Name,
			string(op.SelectedPhase),
			fmt.Sprintf("%.4f", op.TimeMinutes),
		}
		if opts.IncludeCosts {
			row = append(row, fmt.Sprintf("%.4f", op.CostKEUR))
		}
		row = append(row, fmt.Sprintf("%.2f", op.ManualCrewPerShift))
		rows = append(rows, row)
	}

	rows = append(rows, []string{}, []string{"RESULTS BY PHASE"})

	resultHeader := []string{
		"Phase", "Saving [h/day]", "Remaining [h/day]", "Reduction [%]",
		"Saving [h/month]", "Saving [h/year]",
	}
	if opts.IncludeCosts {
		resultHeader = append(resultHeader, "Investment incremental [kEUR]", "Investment total [kEUR]")
	}
	resultHeader = append(resultHeader, "Solutions used")
	if includeCrew {
		resultHeader = append(resultHeader,
			"Crew per shift required",
			"Total paid headcount (baseline)",
			"Total paid headcount required",
			"Total paid headcount saved",
			"Annual labor cost reduction [EUR]",
		)
	}
	rows = append(rows, resultHeader)

	for _, n := range evaluationPhases {
		r := resp.Phases[n]
		row := []string{
			fmt.Sprintf("Phase %d", n),
			fmt.Sprintf("%.6f", r.SavedWorkloadHoursPerDay),
			fmt.Sprintf("%.6f", r.RemainingWorkloadHoursPerDay),
			fmt.Sprintf("%.2f", r.SavingFraction*100),
			fmt.Sprintf("%.3f", r.SavedHoursPerMonth),
			fmt.Sprintf("%.3f", r.SavedHoursPerYear),
		}
		if opts.IncludeCosts {
			row = append(row,
				fmt.Sprintf("%.3f", r.InvestmentIncrementalKEUR),
				fmt.Sprintf("%.3f", r.InvestmentTotalKEUR),
			)
		}
		row = append(row, joinSolutions(r.SolutionsUsed))
		if includeCrew {
			row = append(row,
				fmt.Sprintf("%.0f", r.CrewPerShiftRequired),
				fmt.Sprintf("%.0f", r.PaidHeadcountBaseline),
				fmt.Sprintf("%.0f", r.PaidHeadcountRequired),
				fmt.Sprintf("%.0f", r.PaidHeadcountSaved),
				fmt.Sprintf("%.2f", r.AnnualLaborCostReduction),
			)
		}
		rows = append(rows, row)
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// joinSolutions renders the cumulative solution list for one phase.
func joinSolutions(solutions []string) string {
	out := ""
	for i, s := range solutions {
		if i > 0 {
			out += "; "
		}
		out += s
	}
	return out
}
