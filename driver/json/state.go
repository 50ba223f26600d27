// Package json implements the JSON command driver: a sequence of command blocks manipulating ten named cube-list
// slots, each block optionally producing a labeled result record. The
// dispatch shape (a Command interface keyed by name in a registry, a
// shared *State threaded through every Run call, a Reply wrapping a
// string-keyed param map) is carried over from the engine's own JSON
// protocol driver (engine/protocol/protocol.go), generalized from
// refactoring commands to the fourteen core algebra operations.
package json

import (
	"encoding/json"

	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
)

// SlotCount is the number of named cube-list slots a State holds; slot 0 is
// the implicit accumulator.
const SlotCount = 10

// State is threaded through every command block in one driver run.
type State struct {
	Ctx   *bcp.Context
	Slots [SlotCount]*bcl.List
}

// NewState returns a State bound to ctx, with every slot initialized to an
// empty cube list.
func NewState(ctx *bcp.Context) *State {
	s := &State{Ctx: ctx}
	for i := range s.Slots {
		s.Slots[i] = bcl.New(ctx)
	}
	return s
}

// Reply is a single JSON-shaped response; Params is marshaled as-is.
type Reply struct {
	Params map[string]interface{}
}

// String renders the reply as its marshaled JSON form (engine/protocol's
// Reply.String does the same for refactoring replies).
func (r Reply) String() string {
	out, _ := json.Marshal(r.Params)
	return string(out)
}

func errorReply(err error) Reply {
	return Reply{Params: map[string]interface{}{"reply": "Error", "message": err.Error()}}
}

func okReply(extra map[string]interface{}) Reply {
	params := map[string]interface{}{"reply": "OK"}
	for k, v := range extra {
		params[k] = v
	}
	return Reply{Params: params}
}
