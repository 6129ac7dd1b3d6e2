package expand

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FTOD/zexp/internal/model"
	"github.com/FTOD/zexp/internal/registry"
)

func scalar(section, name, value string) registry.Binding {
	return registry.Binding{Variable: name, Section: section, Value: model.ScalarValue(value)}
}

func list(section, name string, values ...string) registry.Binding {
	return registry.Binding{Variable: name, Section: section, Value: model.ListValue(values...)}
}

func hidden(section, name, value string) registry.Binding {
	return registry.Binding{Variable: name, Section: section, Hidden: true, Value: model.ScalarValue(value)}
}

func TestExpandScalarsOnly(t *testing.T) {
	plan := Expand([]registry.Binding{
		scalar("OTAWA", "otawa_app", "/opt/otawa/bin/owcet"),
		hidden("TACLE", "TASK_NAME", "wcet"),
	})

	require.Equal(t, 1, plan.Count())
	runs := plan.Runs()
	require.Len(t, runs, 1)
	assert.Equal(t, map[string]string{"otawa_app": "/opt/otawa/bin/owcet"}, runs[0].Values)

	name, ok := runs[0].TaskName()
	require.True(t, ok)
	assert.Equal(t, "wcet", name)
}

func TestExpandCrossProduct(t *testing.T) {
	// m x n lists from two sections, one scalar replicated across all runs.
	plan := Expand([]registry.Binding{
		list("A", "exec", "e1", "e2", "e3"),
		scalar("B", "app", "owcet"),
		list("B", "opt", "o1", "o2"),
	})

	require.Equal(t, 6, plan.Count())
	runs := plan.Runs()
	require.Len(t, runs, 6)

	// Declaration order across sections, last list varying fastest.
	expected := [][2]string{
		{"e1", "o1"}, {"e1", "o2"},
		{"e2", "o1"}, {"e2", "o2"},
		{"e3", "o1"}, {"e3", "o2"},
	}
	for i, run := range runs {
		assert.Equal(t, i, run.Index)
		assert.Equal(t, expected[i][0], run.Values["exec"], "run %d", i)
		assert.Equal(t, expected[i][1], run.Values["opt"], "run %d", i)
		assert.Equal(t, "owcet", run.Values["app"], "scalars replicate into every run")
	}
}

func TestExpandEmptyListYieldsZeroRuns(t *testing.T) {
	plan := Expand([]registry.Binding{
		scalar("B", "app", "owcet"),
		list("A", "exec"),
	})

	assert.Equal(t, 0, plan.Count())
	assert.Empty(t, plan.Runs())

	err := plan.Each(func(Run) error {
		t.Fatal("no run should be produced")
		return nil
	})
	require.NoError(t, err)
}

func TestEachIsRestartableAndDeterministic(t *testing.T) {
	plan := Expand([]registry.Binding{
		list("A", "x", "1", "2"),
		list("A", "y", "a", "b"),
	})

	first := plan.Runs()
	second := plan.Runs()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-traversal produced a different sequence:\n%s", diff)
	}
}

func TestEachStopsOnError(t *testing.T) {
	plan := Expand([]registry.Binding{list("A", "x", "1", "2", "3")})

	boom := errors.New("boom")
	var seen int
	err := plan.Each(func(Run) error {
		seen++
		if seen == 2 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, seen)
}

func TestTaskNameAbsent(t *testing.T) {
	plan := Expand([]registry.Binding{scalar("A", "x", "1")})
	runs := plan.Runs()
	require.Len(t, runs, 1)

	_, ok := runs[0].TaskName()
	assert.False(t, ok)
}
