package tacle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexFile = `
tacle_root_path = "/opt/tacle-bench"

[TACLE_BENCHSET_LIST.kernel]
benchset_path = "kernel"
benchs = [
  { name = "fft", exec = "fft/fft.elf", entry_point = "main" },
  { name = "lift", exec = "lift/lift.elf", entry_point = "lift_main" },
]

[TACLE_BENCHSET_LIST.sequential]
benchset_path = "sequential"
benchs = [
  { name = "adpcm_dec", exec = "adpcm_dec/adpcm_dec.elf", entry_point = "main" },
]
`

func writeIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tacle.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndExpand(t *testing.T) {
	suite, err := Load(writeIndex(t, indexFile))
	require.NoError(t, err)
	assert.Equal(t, "/opt/tacle-bench", suite.RootPath)

	pairs, err := suite.ExecEntryPairs("kernel")
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, Pair{Exec: "/opt/tacle-bench/kernel/fft/fft.elf", EntryPoint: "main"}, pairs[0])
	assert.Equal(t, Pair{Exec: "/opt/tacle-bench/kernel/lift/lift.elf", EntryPoint: "lift_main"}, pairs[1])

	pairs, err = suite.ExecEntryPairs("sequential")
	require.NoError(t, err)
	require.Len(t, pairs, 1)
}

func TestUnknownBenchsetIsAnError(t *testing.T) {
	suite, err := Load(writeIndex(t, indexFile))
	require.NoError(t, err)

	_, err = suite.ExecEntryPairs("parallel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parallel")
}

func TestLoadRejectsMissingRootPath(t *testing.T) {
	_, err := Load(writeIndex(t, `[TACLE_BENCHSET_LIST.kernel]
benchset_path = "kernel"
benchs = []
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tacle_root_path")
}

func TestLoadRejectsIncompleteBench(t *testing.T) {
	_, err := Load(writeIndex(t, `tacle_root_path = "/opt/tacle-bench"

[TACLE_BENCHSET_LIST.kernel]
benchset_path = "kernel"
benchs = [ { name = "fft", exec = "fft/fft.elf" } ]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry_point")
}
