package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FTOD/zexp/internal/ctxlog"
	"github.com/FTOD/zexp/internal/engine"
	"github.com/FTOD/zexp/internal/executor"
	"github.com/FTOD/zexp/internal/fsutil"
	"github.com/FTOD/zexp/internal/loader"
)

// Run resolves every experiment script under ScriptPath and executes the
// resulting command matrices, one independent pass per script.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run started.", "script_path", a.config.ScriptPath)

	scripts, err := a.findScripts()
	if err != nil {
		return err
	}
	a.logger.Debug("Scripts discovered.", "count", len(scripts))

	for _, script := range scripts {
		if err := a.runScript(ctx, script); err != nil {
			return fmt.Errorf("script %s: %w", script, err)
		}
	}

	a.logger.Debug("App.Run finished.")
	return nil
}

// findScripts resolves ScriptPath into the list of script files to run.
func (a *App) findScripts() ([]string, error) {
	info, err := os.Stat(a.config.ScriptPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access script path: %w", err)
	}
	if !info.IsDir() {
		return []string{a.config.ScriptPath}, nil
	}

	scripts, err := fsutil.FindFilesByExtensions(a.config.ScriptPath, loader.Extensions())
	if err != nil {
		return nil, err
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("no experiment scripts found under %s", a.config.ScriptPath)
	}
	return scripts, nil
}

// runScript performs one full resolution pass over a single script and
// executes its runs.
func (a *App) runScript(ctx context.Context, path string) error {
	logger := a.logger.With("script", path)
	ctx = ctxlog.WithLogger(ctx, logger)

	ld, err := a.loaderFor(path)
	if err != nil {
		return err
	}
	doc, err := ld.Load(ctx, path)
	if err != nil {
		return err
	}

	if err := expandSuiteSections(ctx, doc, filepath.Dir(path)); err != nil {
		return err
	}

	resolution, err := engine.Resolve(ctx, doc)
	if err != nil {
		return err
	}

	invocations, err := resolution.Invocations()
	if err != nil {
		return err
	}
	if len(invocations) == 0 {
		logger.Warn("run set is empty, nothing to execute")
		return nil
	}

	logger.Info("starting execution",
		"runs", len(invocations),
		"workers", a.config.Workers,
		"dry_run", a.config.DryRun,
	)
	exec := executor.New(a.config.Workers, a.config.DryRun, a.config.FailFast)
	results, err := exec.Run(ctx, invocations)
	if err != nil {
		return err
	}

	logger.Info("execution finished", "runs", len(results))
	return nil
}

func (a *App) loaderFor(path string) (loader.Loader, error) {
	if a.config.Format != "" {
		return loader.ForFormat(a.config.Format)
	}
	return loader.ForPath(path)
}
