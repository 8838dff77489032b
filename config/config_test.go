package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/foldwright/kinetics/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
strands:
  - id: 1
    name: a
    sequence: ACCGGGGGT
    structure: .........
energy_model:
  volume_energy: 1.96
  assoc_energy: 1.96
  join_rate: 1.0
  arrhenius: false
  wobble: false
seed: 42
mode: trajectory
trajectory_runs: 10
stop_conditions:
  - name: done
    clauses:
      - type: disassoc
        strand_ids: [1]
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeTemp(t, validYAML)
	sim, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, sim.Strands, 1)
	assert.Equal(t, int64(42), sim.Seed)
	assert.Equal(t, "trajectory", sim.Mode)
	assert.Len(t, sim.StopConditions, 1)
}

func TestLoadRejectsBadSequence(t *testing.T) {
	bad := `
strands:
  - id: 1
    name: a
    sequence: ACCXGGGGT
`
	path := writeTemp(t, bad)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMismatchedStructureLength(t *testing.T) {
	bad := `
strands:
  - id: 1
    name: a
    sequence: ACCGGGGGT
    structure: ...
`
	path := writeTemp(t, bad)
	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestPercentConvertedToCount(t *testing.T) {
	yamlSrc := `
strands:
  - id: 1
    name: a
    sequence: AAAA
stop_conditions:
  - name: s
    clauses:
      - type: percent_or_count
        structure: "(..)"
        percent: 50
`
	path := writeTemp(t, yamlSrc)
	sim, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, sim.StopConditions[0].Clauses[0].Count)
}

func TestToStopSpecRejectsUnknownType(t *testing.T) {
	spec := config.StopSpecSpec{
		Name: "bad",
		Clauses: []config.StopClauseSpec{
			{Type: "nonsense"},
		},
	}
	_, err := spec.ToStopSpec()
	assert.Error(t, err)
}

func TestToStopSpecRoundTrip(t *testing.T) {
	spec := config.StopSpecSpec{
		Name: "ok",
		Clauses: []config.StopClauseSpec{
			{Type: "bound", StrandIDs: []int{1}},
		},
	}
	out, err := spec.ToStopSpec()
	require.NoError(t, err)
	assert.Len(t, out.Clauses, 1)
}
