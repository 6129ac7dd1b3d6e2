package expand

import (
	"github.com/FTOD/zexp/internal/model"
	"github.com/FTOD/zexp/internal/registry"
)

// Run is one fully resolved, scalar-only binding set: the input of a single
// command substitution.
type Run struct {
	// Index is the position of the run in the expansion order.
	Index int
	// Values holds the visible bindings, keyed by variable name.
	Values map[string]string
	// Meta holds the hidden bindings. They never substitute into the
	// command; they exist for bookkeeping and logging.
	Meta map[string]string
}

// TaskName returns the hidden TASK_NAME metadata value, when some section
// provides it.
func (r Run) TaskName() (string, bool) {
	name, ok := r.Meta[model.KeyTaskName.String()]
	return name, ok
}

// Plan is the expansion of a binding set. It is cheap to hold: runs are
// built on demand, and the plan can be traversed any number of times.
type Plan struct {
	scalars []registry.Binding
	lists   []registry.Binding
	count   int
}

// Expand partitions the bindings into scalar and list-valued ones and
// prepares the cross product over the lists. Bindings must be passed in
// declaration order across sections; that order fixes the run sequence.
func Expand(bindings []registry.Binding) *Plan {
	p := &Plan{count: 1}
	for _, b := range bindings {
		if b.Value.IsList() {
			p.lists = append(p.lists, b)
			p.count *= b.Value.Len()
		} else {
			p.scalars = append(p.scalars, b)
		}
	}
	return p
}

// Count returns the total number of concrete runs: the product of all list
// lengths, or 1 when no binding is list-valued. An empty list makes the
// count zero, which is a distinct, non-error outcome.
func (p *Plan) Count() int { return p.count }

// Each calls fn once per concrete run, in expansion order. It stops at the
// first error fn returns. Each may be called repeatedly; every traversal
// yields the identical sequence.
func (p *Plan) Each(fn func(Run) error) error {
	if p.count == 0 {
		return nil
	}

	elem := make([]int, len(p.lists))
	for index := 0; index < p.count; index++ {
		if err := fn(p.buildRun(index, elem)); err != nil {
			return err
		}

		// Odometer step: the last declared list varies fastest.
		for pos := len(elem) - 1; pos >= 0; pos-- {
			elem[pos]++
			if elem[pos] < p.lists[pos].Value.Len() {
				break
			}
			elem[pos] = 0
		}
	}
	return nil
}

// Runs materializes the full sequence. Intended for small plans and tests;
// Each is the streaming form.
func (p *Plan) Runs() []Run {
	runs := make([]Run, 0, p.count)
	_ = p.Each(func(r Run) error {
		runs = append(runs, r)
		return nil
	})
	return runs
}

func (p *Plan) buildRun(index int, elem []int) Run {
	run := Run{
		Index:  index,
		Values: make(map[string]string, len(p.scalars)+len(p.lists)),
		Meta:   make(map[string]string),
	}
	for _, b := range p.scalars {
		run.set(b, b.Value.Scalar())
	}
	for i, b := range p.lists {
		run.set(b, b.Value.List()[elem[i]])
	}
	return run
}

func (r Run) set(b registry.Binding, value string) {
	if b.Hidden {
		r.Meta[b.Variable] = value
		return
	}
	r.Values[b.Variable] = value
}
