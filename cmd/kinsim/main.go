// Command kinsim runs a kinetic trajectory from a YAML simulation
// configuration: it builds the initial population, repeatedly draws and
// executes a single Gillespie step, and reports/stores each step until a
// stop condition fires or the step budget is exhausted.
package main

import (
	"flag"
	"math"
	"math/rand"
	"os"

	"github.com/foldwright/kinetics/config"
	"github.com/foldwright/kinetics/kinetics"
	"github.com/foldwright/kinetics/report"
	"github.com/foldwright/kinetics/store"
	"github.com/foldwright/kinetics/strand"
	"github.com/lunny/log"
)

func main() {
	configPath := flag.String("config", "", "path to a simulation YAML file")
	journalPath := flag.String("journal", ":memory:", "sqlite3 trajectory journal path")
	maxSteps := flag.Int("steps", 10000, "maximum number of Gillespie steps to run")
	flag.Parse()

	if *configPath == "" {
		log.Error("kinsim: -config is required")
		os.Exit(2)
	}

	sim, err := config.Load(*configPath)
	if err != nil {
		log.Errorf("kinsim: loading config: %v", err)
		os.Exit(1)
	}

	em := strand.SimpleModel{
		Volume:    sim.EnergyModel.VolumeEnergy,
		Assoc:     sim.EnergyModel.AssocEnergy,
		Join:      sim.EnergyModel.JoinRate,
		Arrhenius: sim.EnergyModel.Arrhenius,
	}

	journal, err := store.Open(*journalPath)
	if err != nil {
		log.Errorf("kinsim: opening journal: %v", err)
		os.Exit(1)
	}
	defer journal.Close()

	population := kinetics.NewList(em, sim.EnergyModel.Wobble)
	for _, s := range sim.Strands {
		population.AddComplex(strand.NewRefComplex(s.ID, s.Name, s.Sequence, em, sim.EnergyModel.Wobble, 1.0, 1.0))
	}
	population.InitializeList()

	rng := rand.New(rand.NewSource(sim.Seed))

	log.Infof("kinsim: starting run with %d strands, seed=%d, mode=%s", len(sim.Strands), sim.Seed, sim.Mode)

	simTime := 0.0
	for step := 0; step < *maxSteps; step++ {
		total := population.GetTotalFlux()
		if total <= 0 {
			log.Infof("kinsim: no moves remain at step %d, stopping", step)
			break
		}

		dt := logUniform(rng) / total
		simTime += dt
		choice := rng.Float64() * total
		population.DoBasicChoice(choice, simTime)

		snapshot := report.Snapshot{Step: step, Time: simTime}
		for _, entry := range population.Entries() {
			structure := entry.Complex.GetStructure()
			snapshot.Complexes = append(snapshot.Complexes, report.ComplexSnapshot{
				ID:        entry.ID,
				Names:     entry.Complex.GetStrandNames(),
				Sequence:  entry.Complex.GetSequence(),
				Structure: structure,
				Energy:    entry.Energy,
			})
			if err := journal.Append(store.Event{
				Step:      step,
				Time:      simTime,
				ComplexID: entry.ID,
				Energy:    entry.Energy,
				Structure: structure,
			}); err != nil {
				log.Warnf("kinsim: journal append failed at step %d: %v", step, err)
			}
		}
		log.Debug(report.Render(snapshot))

		for _, stopSpecSpec := range sim.StopConditions {
			spec, err := stopSpecSpec.ToStopSpec()
			if err != nil {
				log.Errorf("kinsim: stop condition %q: %v", stopSpecSpec.Name, err)
				continue
			}
			ok, err := population.CheckStopComplexList(spec)
			if err != nil {
				log.Errorf("kinsim: evaluating stop condition %q: %v", stopSpecSpec.Name, err)
				continue
			}
			if ok {
				log.Infof("kinsim: stop condition %q satisfied at step %d, t=%e", stopSpecSpec.Name, step, simTime)
				return
			}
		}
	}
}

// logUniform draws -ln(U) for U uniform on (0, 1), the waiting-time
// transform a Gillespie step needs; rand.Float64 already excludes 1 but can
// return 0, which is resampled to avoid a -Inf step.
func logUniform(rng *rand.Rand) float64 {
	u := rng.Float64()
	for u == 0 {
		u = rng.Float64()
	}
	return -math.Log(u)
}
