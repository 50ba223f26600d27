package json

import (
	"time"

	"github.com/rudell/cubecalc/cube"
	"github.com/rudell/cubecalc/expr"
)

// labelRecord builds the output record for a command block carrying a
// "label" or "label0" key: index is stored as the record's "index" (Run
// replaces it with the block's position in the input), elapsed is wall
// time spent in the operation, and flags holds whatever operation-specific
// fields (empty, subset, superset) the caller already computed. label0 additionally attaches slot 0's
// current content as both a cube-list vector and an expression. Returns
// (nil, false) if the block carried neither key.
func labelRecord(state *State, input map[string]interface{}, index int, elapsed time.Duration, flags map[string]interface{}) (map[string]interface{}, bool) {
	label, hasLabel := input["label"].(string)
	label0, hasLabel0 := input["label0"].(string)
	if !hasLabel && !hasLabel0 {
		return nil, false
	}

	record := map[string]interface{}{
		"index": index,
		"time":  elapsed.Seconds(),
	}
	for k, v := range flags {
		record[k] = v
	}

	if hasLabel0 {
		record["label"] = label0
		slot0 := state.Slots[0]
		var cubes []string
		for i := 0; i < slot0.Len(); i++ {
			if slot0.IsDeleted(i) {
				continue
			}
			cubes = append(cubes, cube.StringFromCube(slot0.Cube(i)))
		}
		record["bcl"] = cubes
		record["expr"] = expr.Print(state.Ctx, slot0)
	} else {
		record["label"] = label
	}
	return record, true
}
