// Package tacle reads a TACLe benchmark-suite index and expands benchset
// names into pairs of executable path and analysis entry point. The index is
// a TOML file shipped alongside the suite:
//
//	tacle_root_path = "/opt/tacle-bench"
//
//	[TACLE_BENCHSET_LIST.kernel]
//	benchset_path = "kernel"
//	benchs = [
//	  { name = "fft", exec = "fft/fft.elf", entry_point = "main" },
//	]
package tacle

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Bench is one benchmark of a benchset.
type Bench struct {
	Name       string `toml:"name"`
	Exec       string `toml:"exec"`
	EntryPoint string `toml:"entry_point"`
}

// Benchset is a named group of benchmarks under a common directory.
type Benchset struct {
	Path    string  `toml:"benchset_path"`
	Benches []Bench `toml:"benchs"`
}

// Suite is a parsed benchmark-suite index.
type Suite struct {
	RootPath  string              `toml:"tacle_root_path"`
	Benchsets map[string]Benchset `toml:"TACLE_BENCHSET_LIST"`
}

// Pair is one runnable benchmark: the full executable path and the entry
// point the analysis starts from.
type Pair struct {
	Exec       string
	EntryPoint string
}

// Load reads and validates a suite index file.
func Load(path string) (*Suite, error) {
	var suite Suite
	if _, err := toml.DecodeFile(path, &suite); err != nil {
		return nil, fmt.Errorf("failed to parse suite index %s: %w", path, err)
	}
	if suite.RootPath == "" {
		return nil, fmt.Errorf("suite index %s has no tacle_root_path", path)
	}
	for name, set := range suite.Benchsets {
		for i, bench := range set.Benches {
			if bench.Exec == "" || bench.EntryPoint == "" {
				return nil, fmt.Errorf("suite index %s: benchset %q, bench %d (%q) needs both exec and entry_point",
					path, name, i, bench.Name)
			}
		}
	}
	return &suite, nil
}

// ExecEntryPairs expands one benchset into its (executable, entry point)
// pairs, in index order. Executable paths are joined under the suite root.
// Naming a benchset the index does not define is an error.
func (s *Suite) ExecEntryPairs(benchset string) ([]Pair, error) {
	set, ok := s.Benchsets[benchset]
	if !ok {
		return nil, fmt.Errorf("benchset %q is not defined in the suite index", benchset)
	}
	pairs := make([]Pair, 0, len(set.Benches))
	for _, bench := range set.Benches {
		pairs = append(pairs, Pair{
			Exec:       filepath.Join(s.RootPath, set.Path, bench.Exec),
			EntryPoint: bench.EntryPoint,
		})
	}
	return pairs, nil
}
