package json

import (
	"fmt"
)

// Command mirrors the engine's protocol.Command shape: every JSON command
// block dispatches to one of these, validated before it runs.
type Command interface {
	Run(state *State, input map[string]interface{}) (Reply, error)
	Validate(state *State, input map[string]interface{}) (bool, error)
}

// Registry returns the full set of core-operation commands keyed by their
// JSON "command" name.
func Registry() map[string]Command {
	return map[string]Command{
		"bcl-to-slot":    &BCLToSlot{},
		"minimize":       &Minimize{},
		"complement":     &Complement{},
		"flip":           &Flip{},
		"and":            &And{},
		"show":           &Show{},
		"unused-to-zero": &UnusedToZero{},
		"intersection":   &Intersection{},
		"union":          &Union{},
		"subtract":       &Subtract{},
		"equal":          &Equal{},
		"group-to-zero":  &GroupToZero{},
		"exchange":       &Exchange{},
		"copy":           &Copy{},
	}
}

func slotArg(input map[string]interface{}, key string) (int, error) {
	v, found := input[key]
	if !found {
		return 0, fmt.Errorf("%q key is required", key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%q key must be a number", key)
	}
	idx := int(f)
	if idx < 0 || idx >= SlotCount {
		return 0, fmt.Errorf("%q key out of range [0,%d)", key, SlotCount)
	}
	return idx, nil
}

func optSlotArg(input map[string]interface{}, key string, def int) (int, error) {
	if _, found := input[key]; !found {
		return def, nil
	}
	return slotArg(input, key)
}
