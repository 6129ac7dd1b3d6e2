package engine

import (
	"context"
	"fmt"

	"github.com/FTOD/zexp/internal/ctxlog"
	"github.com/FTOD/zexp/internal/expand"
	"github.com/FTOD/zexp/internal/model"
	"github.com/FTOD/zexp/internal/registry"
	"github.com/FTOD/zexp/internal/template"
)

// Invocation is one resolved command line paired with its optional task
// name. TaskName is empty when no section provides TASK_NAME.
type Invocation struct {
	TaskName string
	Command  string
}

// Resolution is the outcome of one successful resolution pass. The registry
// and plan it holds are read-only.
type Resolution struct {
	registry *registry.Registry
	template *template.Template
	plan     *expand.Plan
}

// Resolve validates the document, registers every section's provided
// variables in document order, derives their bindings, checks the command
// template against the provider table, and expands the run matrix.
func Resolve(ctx context.Context, doc *model.Document) (*Resolution, error) {
	logger := ctxlog.FromContext(ctx)

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	reg := registry.New()
	var bindings []registry.Binding
	for _, sec := range doc.Sections {
		if err := reg.Register(sec.Name, sec.ProvidedVars); err != nil {
			return nil, err
		}
		secBindings, err := registry.BindSection(sec)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, secBindings...)
		logger.Debug("section registered", "section", sec.Name, "vars", len(sec.ProvidedVars))
	}

	tmpl := template.Parse(doc.Command)
	if err := tmpl.Validate(reg); err != nil {
		return nil, err
	}

	plan := expand.Expand(bindings)
	logger.Debug("resolution pass complete",
		"sections", len(doc.Sections),
		"bindings", len(bindings),
		"runs", plan.Count(),
	)

	return &Resolution{registry: reg, template: tmpl, plan: plan}, nil
}

// Plan exposes the expanded run matrix.
func (r *Resolution) Plan() *expand.Plan { return r.plan }

// Registry exposes the provider table, primarily for tests.
func (r *Resolution) Registry() *registry.Registry { return r.registry }

// Invocations substitutes every concrete run into the command template, in
// run order. An empty slice with a nil error means the run set is empty and
// there is nothing to execute; the caller decides whether that is an error.
func (r *Resolution) Invocations() ([]Invocation, error) {
	invocations := make([]Invocation, 0, r.plan.Count())
	err := r.plan.Each(func(run expand.Run) error {
		command, err := r.template.Substitute(run, r.registry)
		if err != nil {
			return fmt.Errorf("run %d: %w", run.Index, err)
		}
		taskName, _ := run.TaskName()
		invocations = append(invocations, Invocation{TaskName: taskName, Command: command})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return invocations, nil
}
