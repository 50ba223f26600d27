package json

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudell/cubecalc/bcp"
)

func TestRunBCLToSlotAndMinimize(t *testing.T) {
	ctx := bcp.New(6)
	doc := []byte(`[
		{"command": "bcl-to-slot", "slot": 0, "bcl": ["1-1-11", "110011", "1-0-10", "1001-0"], "label0": "loaded"},
		{"command": "minimize", "slot": 0, "label0": "minimized"}
	]`)

	replies, err := Run(ctx, doc)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	require.Equal(t, "OK", replies[0].Params["reply"])

	rec, ok := replies[1].Params["record"].(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "minimized", rec["label"])
	require.NotEmpty(t, rec["bcl"])
}

func TestRunIntersectionUnionSubtract(t *testing.T) {
	ctx := bcp.New(3)
	doc := []byte(`[
		{"command": "bcl-to-slot", "slot": 1, "bcl": "1--"},
		{"command": "bcl-to-slot", "slot": 2, "bcl": "11-"},
		{"command": "intersection", "slot1": 1, "slot2": 2, "result": 3, "label0": "intersect"},
		{"command": "union", "slot1": 1, "slot2": 2, "result": 4},
		{"command": "subtract", "slot1": 1, "slot2": 2, "label0": "sub"}
	]`)

	replies, err := Run(ctx, doc)
	require.NoError(t, err)
	require.Len(t, replies, 5)
	for _, r := range replies {
		require.Equal(t, "OK", r.Params["reply"])
	}
}

func TestRunEqualCommand(t *testing.T) {
	ctx := bcp.New(2)
	doc := []byte(`[
		{"command": "bcl-to-slot", "slot": 1, "bcl": "1-"},
		{"command": "bcl-to-slot", "slot": 2, "bcl": "1-"},
		{"command": "equal", "slot1": 1, "slot2": 2, "label0": "cmp"}
	]`)
	replies, err := Run(ctx, doc)
	require.NoError(t, err)
	rec := replies[2].Params["record"].(map[string]interface{})
	require.Equal(t, 1, rec["subset"])
	require.Equal(t, 1, rec["superset"])
}

func TestRunUnknownCommandErrors(t *testing.T) {
	ctx := bcp.New(1)
	_, err := Run(ctx, []byte(`[{"command": "nope"}]`))
	require.Error(t, err)
}

func TestRunGroupToZero(t *testing.T) {
	ctx := bcp.New(3)
	doc := []byte(`[
		{"command": "bcl-to-slot", "slot": 0, "bcl": "1--"},
		{"command": "group-to-zero", "slot": 0, "group": [0, 1, 2], "label0": "grouped"}
	]`)
	replies, err := Run(ctx, doc)
	require.NoError(t, err)
	rec := replies[1].Params["record"].(map[string]interface{})
	bcls := rec["bcl"].([]string)
	require.Equal(t, []string{"100"}, bcls)
}
