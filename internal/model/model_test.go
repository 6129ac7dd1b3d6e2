package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVarDecl(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  VarDecl
	}{
		{
			name:     "visible variable",
			raw:      "$tacle_exec",
			expected: VarDecl{Name: "tacle_exec"},
		},
		{
			name:     "hidden variable",
			raw:      "TASK_NAME",
			expected: VarDecl{Name: "TASK_NAME", Hidden: true},
		},
		{
			name:      "error - empty entry",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - bare dollar",
			raw:       "$",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decl, err := ParseVarDecl(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, decl)
		})
	}
}

func TestOptionKey(t *testing.T) {
	assert.Equal(t, "otawa_opts", OptionKey("$otawa_opts"))
	assert.Equal(t, "TASK_NAME", OptionKey("TASK_NAME"))
	assert.Equal(t, "$x", OptionKey("$$x"), "only one prefix is stripped")
}

func TestLookupReserved(t *testing.T) {
	for _, key := range []ReservedKey{KeyCMD, KeyProvidedVars, KeyTaskName} {
		got, ok := LookupReserved(key.String())
		require.True(t, ok)
		assert.Equal(t, key, got)
	}

	_, ok := LookupReserved("cmd")
	assert.False(t, ok, "reserved keys match exactly, not case-insensitively")
	_, ok = LookupReserved("OTAWA")
	assert.False(t, ok)
}

func TestValueShapes(t *testing.T) {
	scalar := ScalarValue("main")
	assert.False(t, scalar.IsList())
	assert.Equal(t, 1, scalar.Len())
	assert.Equal(t, "main", scalar.Scalar())

	list := ListValue("a", "b")
	assert.True(t, list.IsList())
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, []string{"a", "b"}, list.List())

	empty := ListValue()
	assert.True(t, empty.IsList())
	assert.Equal(t, 0, empty.Len())

	assert.True(t, ListValue("a").Equal(ListValue("a")))
	assert.False(t, ListValue("a").Equal(ScalarValue("a")), "shape is part of equality")
}

func TestDocumentValidate(t *testing.T) {
	valid := &Document{
		Command: "$app",
		Sections: []*Section{
			{Name: "OTAWA", ProvidedVars: []VarDecl{{Name: "app"}}},
		},
	}
	require.NoError(t, valid.Validate())

	noCmd := &Document{Command: "  "}
	assert.ErrorContains(t, noCmd.Validate(), "CMD")

	dupSection := &Document{
		Command: "$app",
		Sections: []*Section{
			{Name: "OTAWA", ProvidedVars: []VarDecl{{Name: "app"}}},
			{Name: "OTAWA", ProvidedVars: []VarDecl{{Name: "opts"}}},
		},
	}
	assert.ErrorContains(t, dupSection.Validate(), "more than once")

	noVars := &Document{
		Command:  "$app",
		Sections: []*Section{{Name: "OTAWA"}},
	}
	assert.ErrorContains(t, noVars.Validate(), "PROVIDED_VARS")
}
