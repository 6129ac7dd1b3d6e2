package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/FTOD/zexp/internal/ctxlog"
	"github.com/FTOD/zexp/internal/model"
	"github.com/FTOD/zexp/internal/tacle"
)

// Option keys that trigger benchmark-suite expansion, and the derived
// option keys the expansion injects.
const (
	optSuitePath   = "TACLE_SCRIPT_PATH"
	optBenchsets   = "TACLE_BENCHSET_TO_RUN"
	optExecList    = "tacle_exec"
	optEntryPoints = "tacle_entry_point"
)

// expandSuiteSections rewrites every section that references a TACLe suite
// index: the index is loaded and the requested benchsets are flattened into
// the tacle_exec and tacle_entry_point option lists the section's provided
// variables bind from. Sections without suite options pass through
// untouched. Relative index paths resolve against the script's directory.
func expandSuiteSections(ctx context.Context, doc *model.Document, baseDir string) error {
	logger := ctxlog.FromContext(ctx)

	for _, sec := range doc.Sections {
		pathOpt, hasPath := sec.Options[optSuitePath]
		setsOpt, hasSets := sec.Options[optBenchsets]
		if !hasPath && !hasSets {
			continue
		}
		if !hasPath || !hasSets {
			return fmt.Errorf("section %q must set both %s and %s to use a benchmark suite",
				sec.Name, optSuitePath, optBenchsets)
		}

		indexPath := pathOpt.Scalar()
		if !filepath.IsAbs(indexPath) {
			indexPath = filepath.Join(baseDir, indexPath)
		}
		suite, err := tacle.Load(indexPath)
		if err != nil {
			return fmt.Errorf("section %q: %w", sec.Name, err)
		}

		var execs, entries []string
		for _, benchset := range setsOpt.List() {
			pairs, err := suite.ExecEntryPairs(benchset)
			if err != nil {
				return fmt.Errorf("section %q: %w", sec.Name, err)
			}
			for _, pair := range pairs {
				execs = append(execs, pair.Exec)
				entries = append(entries, pair.EntryPoint)
			}
		}

		sec.Options[optExecList] = model.ListValue(execs...)
		sec.Options[optEntryPoints] = model.ListValue(entries...)
		logger.Debug("suite expanded",
			"section", sec.Name,
			"index", indexPath,
			"benchmarks", len(execs),
		)
	}
	return nil
}
