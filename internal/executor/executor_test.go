package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FTOD/zexp/internal/engine"
)

func TestDryRunSpawnsNothing(t *testing.T) {
	e := New(4, true, false)
	invocations := []engine.Invocation{
		{TaskName: "a", Command: "/does/not/exist --flag"},
		{TaskName: "b", Command: "/also/missing"},
	}

	results, err := e.Run(context.Background(), invocations)
	require.NoError(t, err, "dry run must not touch the filesystem")
	require.Len(t, results, 2)
	assert.Equal(t, 0, results[0].Index)
	assert.Equal(t, "a", results[0].TaskName)
	assert.Equal(t, "/does/not/exist --flag", results[0].Command)
}

func TestRunRealCommand(t *testing.T) {
	e := New(1, false, false)
	results, err := e.Run(context.Background(), []engine.Invocation{
		{Command: "echo hello world"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].ExitCode)
	assert.Equal(t, "hello world\n", string(results[0].Stdout))
}

func TestResultsKeepInvocationOrder(t *testing.T) {
	e := New(8, false, false)
	invocations := []engine.Invocation{
		{Command: "echo 0"},
		{Command: "echo 1"},
		{Command: "echo 2"},
		{Command: "echo 3"},
		{Command: "echo 4"},
	}

	results, err := e.Run(context.Background(), invocations)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, invocations[i].Command, res.Command)
	}
}

func TestFailureIsReportedPerRun(t *testing.T) {
	e := New(1, false, false)
	results, err := e.Run(context.Background(), []engine.Invocation{
		{Command: "echo ok"},
		{Command: "/zexp/this/binary/does/not/exist"},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 runs failed")
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
}

func TestEmptyCommandFails(t *testing.T) {
	e := New(1, false, false)
	results, err := e.Run(context.Background(), []engine.Invocation{{Command: "   "}})
	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestFailFastSkipsRemainingRuns(t *testing.T) {
	// One worker: the failing first run must cancel before the rest start.
	e := New(1, false, true)
	invocations := []engine.Invocation{
		{Command: "/zexp/this/binary/does/not/exist"},
		{Command: "echo should-be-skipped"},
		{Command: "echo should-be-skipped"},
	}

	results, err := e.Run(context.Background(), invocations)
	require.Error(t, err)
	require.Len(t, results, 3)
	assert.Error(t, results[0].Err)
	for _, res := range results[1:] {
		require.Error(t, res.Err)
		assert.Empty(t, res.Stdout, "skipped runs must not execute")
	}
}
