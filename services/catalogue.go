// ABOUTME: Site catalogue defaults loaded from an optional YAML file
// ABOUTME: Lets a plant tune per-operation default time, cost, phase, and crew

package services

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/furnaceworks/automation-roadmap/models"
)

// catalogueFile is the on-disk shape of a site defaults file:
//
//	operations:
//	  "Plate exchange":
//	    time_per_occurrence_minutes: 9
//	    cost_k_eur: 150
//	    default_phase: "Phase 2"
//	    manual_crew_per_shift: 1
type catalogueFile struct {
	Operations map[string]catalogueEntry `yaml:"operations"`
}

type catalogueEntry struct {
	TimePerOccurrenceMinutes *float64 `yaml:"time_per_occurrence_minutes"`
	CostKEUR                 *float64 `yaml:"cost_k_eur"`
	DefaultPhase             *string  `yaml:"default_phase"`
	ManualCrewPerShift       *float64 `yaml:"manual_crew_per_shift"`
}

// LoadCatalogue returns the operation catalogue with site defaults from
// path applied. An empty path returns the built-in catalogue unchanged.
// The file may only reference catalogue operations; operation identity
// and order are fixed.
func LoadCatalogue(path string) ([]models.OperationDefinition, error) {
	defs := models.Catalogue()
	if path == "" {
		return defs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue file: %w", err)
	}

	var file catalogueFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue file %s: %w", path, err)
	}

	byName := make(map[string]int, len(defs))
	for i, d := range defs {
		byName[d.Name] = i
	}

	for name, entry := range file.Operations {
		i, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("catalogue file %s: unknown operation %q", path, name)
		}
		if err := applyEntry(&defs[i], entry); err != nil {
			return nil, fmt.Errorf("catalogue file %s: operation %q: %w", path, name, err)
		}
	}

	return defs, nil
}

// applyEntry validates and applies one file entry to a definition.
func applyEntry(def *models.OperationDefinition, entry catalogueEntry) error {
	if entry.TimePerOccurrenceMinutes != nil {
		if *entry.TimePerOccurrenceMinutes <= 0 {
			return fmt.Errorf("time_per_occurrence_minutes must be > 0")
		}
		def.DefaultTimeMinutes = *entry.TimePerOccurrenceMinutes
	}
	if entry.CostKEUR != nil {
		if *entry.CostKEUR < 0 {
			return fmt.Errorf("cost_k_eur must be >= 0")
		}
		def.DefaultCostKEUR = *entry.CostKEUR
	}
	if entry.DefaultPhase != nil {
		phase := models.Phase(*entry.DefaultPhase)
		if !phase.Valid() {
			return fmt.Errorf("default_phase %q is not a valid phase", *entry.DefaultPhase)
		}
		def.DefaultPhase = phase
	}
	if entry.ManualCrewPerShift != nil {
		if *entry.ManualCrewPerShift < 0 {
			return fmt.Errorf("manual_crew_per_shift must be >= 0")
		}
		def.DefaultManualCrewPerShift = *entry.ManualCrewPerShift
	}
	return nil
}
