/*
Package config loads simulation configuration from YAML, the same
config-loading idiom annotate.LoadDatabases uses for its Databases map
(struct tags decoded with gopkg.in/yaml.v3), repurposed here for strand
definitions, energy-model knobs, the RNG seed, and stop conditions instead
of BLAST/Diamond database locations.
*/
package config

import (
	"fmt"
	"os"

	"github.com/foldwright/kinetics/checks"
	"github.com/foldwright/kinetics/stopcond"
	"gopkg.in/yaml.v3"
)

// StrandSpec names one input strand: a stable id (referenced by stop
// clauses), a display name, and its sequence.
type StrandSpec struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Sequence string `yaml:"sequence"`
	// Structure is this strand's initial dot-bracket structure, in
	// isolation; joins across strands are not expressed at config load
	// time (spec.md's bimolecular moves discover those at runtime).
	Structure string `yaml:"structure"`
}

// EnergyModelSpec carries the knobs strand.SimpleModel needs; a real
// nearest-neighbor model (the external collaborator of spec.md §1) would
// take a superset of these plus its parameter tables.
type EnergyModelSpec struct {
	VolumeEnergy float64 `yaml:"volume_energy"`
	AssocEnergy  float64 `yaml:"assoc_energy"`
	JoinRate     float64 `yaml:"join_rate"`
	Arrhenius    bool    `yaml:"arrhenius"`
	Wobble       bool    `yaml:"wobble"`
}

// StopClauseSpec mirrors stopcond.Clause with YAML tags; Percent, when
// nonzero, is converted to a raw base-pair Count against the clause's
// Structure length at load time (spec.md §4.6: "callers converts
// percentages to raw counts beforehand").
type StopClauseSpec struct {
	Type      string `yaml:"type"` // bound | disassoc | structure | loose | percent_or_count
	StrandIDs []int  `yaml:"strand_ids"`
	Structure string `yaml:"structure"`
	Count     int    `yaml:"count"`
	Percent   float64 `yaml:"percent"`
}

// StopSpecSpec is a named list of clauses (a "stop condition" in driver
// terms); Simulation.StopConditions may list several, any of which halts
// the trajectory (disjunction across StopSpecSpecs, conjunction within one).
type StopSpecSpec struct {
	Name    string           `yaml:"name"`
	Clauses []StopClauseSpec `yaml:"clauses"`
}

// Simulation is the full YAML-parsed simulation configuration: strands,
// energy model, RNG seed, trajectory mode, and stop conditions.
type Simulation struct {
	Strands        []StrandSpec   `yaml:"strands"`
	EnergyModel    EnergyModelSpec `yaml:"energy_model"`
	Seed           int64          `yaml:"seed"`
	Mode           string         `yaml:"mode"` // trajectory | firstpassage | transition | standard
	TrajectoryRuns int            `yaml:"trajectory_runs"`
	StopConditions []StopSpecSpec `yaml:"stop_conditions"`
}

// Load reads and validates a Simulation from path.
func Load(path string) (Simulation, error) {
	f, err := os.Open(path)
	if err != nil {
		return Simulation{}, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()

	var sim Simulation
	if err := yaml.NewDecoder(f).Decode(&sim); err != nil {
		return Simulation{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := sim.Validate(); err != nil {
		return Simulation{}, err
	}
	return sim, nil
}

// Validate checks strand sequences and stop-condition structures before
// they reach the engine, converting percentages to counts in place.
func (s *Simulation) Validate() error {
	for _, strand := range s.Strands {
		if !checks.IsDNA(strand.Sequence) && !checks.IsRNA(strand.Sequence) {
			return fmt.Errorf("config: strand %d (%s): %q is not a valid DNA or RNA sequence", strand.ID, strand.Name, strand.Sequence)
		}
		if strand.Structure != "" && !checks.IsValidDotBracketStructure(strand.Structure) {
			return fmt.Errorf("config: strand %d (%s): %q is not valid dot-bracket notation", strand.ID, strand.Name, strand.Structure)
		}
		if strand.Structure != "" && len(strand.Structure) != len(strand.Sequence) {
			return fmt.Errorf("config: strand %d (%s): structure length %d does not match sequence length %d", strand.ID, strand.Name, len(strand.Structure), len(strand.Sequence))
		}
	}
	for i := range s.StopConditions {
		for j := range s.StopConditions[i].Clauses {
			clause := &s.StopConditions[i].Clauses[j]
			if clause.Structure == "" {
				continue
			}
			if !checks.IsValidLooseStructure(clause.Structure) {
				return fmt.Errorf("config: stop condition %q clause %d: %q is not a valid structure pattern", s.StopConditions[i].Name, j, clause.Structure)
			}
			if clause.Percent > 0 {
				clause.Count = int(clause.Percent / 100.0 * float64(len(clause.Structure)))
			}
		}
	}
	return nil
}

// ToStopSpec converts a StopSpecSpec loaded from YAML into the stopcond
// types the kinetics engine consumes.
func (spec StopSpecSpec) ToStopSpec() (stopcond.Spec, error) {
	out := stopcond.Spec{Clauses: make([]stopcond.Clause, len(spec.Clauses))}
	for i, c := range spec.Clauses {
		clauseType, err := parseClauseType(c.Type)
		if err != nil {
			return stopcond.Spec{}, fmt.Errorf("config: stop condition %q: %w", spec.Name, err)
		}
		out.Clauses[i] = stopcond.Clause{
			Type:      clauseType,
			StrandIDs: c.StrandIDs,
			Structure: c.Structure,
			Count:     c.Count,
		}
	}
	return out, out.Validate()
}

func parseClauseType(name string) (stopcond.ClauseType, error) {
	switch name {
	case "bound":
		return stopcond.Bound, nil
	case "disassoc":
		return stopcond.Disassoc, nil
	case "structure":
		return stopcond.Structure, nil
	case "loose":
		return stopcond.LooseStructure, nil
	case "percent_or_count":
		return stopcond.PercentOrCountStructure, nil
	default:
		return 0, fmt.Errorf("unknown stop clause type %q", name)
	}
}
