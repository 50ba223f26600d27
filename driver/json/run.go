package json

import (
	"encoding/json"
	"fmt"

	"github.com/rudell/cubecalc/bcp"
)

// Run executes a JSON array of command blocks against a fresh State bound
// to ctx, returning every emitted Reply in order: exactly one per block,
// with no terminal reply after the last block. A block is shaped like
// {"command": "bcl-to-slot", "slot": 0, "bcl": "1-1-11", "label": "step1"};
// "cmd" is accepted in place of "command". The setup keys xtrue, xfalse,
// xend, xand, xor and xnot (one-character strings) may appear on any block;
// the first occurrence of each sets ctx's punctuation before any block runs.
func Run(ctx *bcp.Context, doc []byte) ([]Reply, error) {
	var blocks []map[string]interface{}
	if err := json.Unmarshal(doc, &blocks); err != nil {
		return nil, fmt.Errorf("driver/json: %w", err)
	}
	setup := map[string]*byte{
		"xtrue": &ctx.Punct.True, "xfalse": &ctx.Punct.False, "xend": &ctx.Punct.End,
		"xand": &ctx.Punct.And, "xor": &ctx.Punct.Or, "xnot": &ctx.Punct.Not,
	}
	for _, block := range blocks {
		for key, dst := range setup {
			if s, ok := block[key].(string); ok && len(s) == 1 {
				*dst = s[0]
				delete(setup, key)
			}
		}
	}

	state := NewState(ctx)
	registry := Registry()
	replies := make([]Reply, 0, len(blocks))

	for i, block := range blocks {
		name, ok := block["command"].(string)
		if !ok {
			name, ok = block["cmd"].(string)
		}
		if !ok {
			err := fmt.Errorf("block %d: missing %q key", i, "command")
			replies = append(replies, errorReply(err))
			return replies, err
		}
		cmd, ok := registry[name]
		if !ok {
			err := fmt.Errorf("block %d: unknown command %q", i, name)
			replies = append(replies, errorReply(err))
			return replies, err
		}
		if valid, err := cmd.Validate(state, block); !valid {
			replies = append(replies, errorReply(err))
			return replies, err
		}
		reply, err := cmd.Run(state, block)
		if rec, ok := reply.Params["record"].(map[string]interface{}); ok {
			rec["index"] = i
		}
		replies = append(replies, reply)
		if err != nil {
			return replies, err
		}
	}
	return replies, nil
}
