// ABOUTME: Catalogue command for roadmap CLI
// ABOUTME: Lists the operation catalogue with site defaults

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/furnaceworks/automation-roadmap/cli/internal/client"
	"github.com/furnaceworks/automation-roadmap/cli/internal/styles"
	"github.com/spf13/cobra"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "List the operation catalogue",
	Long:  `List the ten maintenance operations with their default time, phase, cost, and crew settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		c := client.New(GetAPIURL())
		return runCatalogue(ctx, c, os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(catalogueCmd)
}

func runCatalogue(ctx context.Context, c *client.Client, w io.Writer, jsonOut bool) error {
	resp, err := c.Catalogue(ctx)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Fprintln(w, styles.Title.Render("Operation Catalogue"))
	fmt.Fprintf(w, "%-36s %10s  %-8s %12s %6s\n", "Operation", "Time [min]", "Phase", "Cost [kEUR]", "Crew")
	for _, op := range resp.Operations {
		name := op.Name
		if op.ResidualOnAutomation {
			name += " *"
		}
		fmt.Fprintf(w, "%-36s %10.1f  %-8s %12.0f %6.0f\n",
			name, op.DefaultTimeMinutes, op.DefaultPhase, op.DefaultCostKEUR, op.DefaultManualCrewPerShift)
	}
	fmt.Fprintln(w, styles.Subtitle.Render("* keeps a failure-driven residual workload after automation"))
	return nil
}
