package json

import (
	"fmt"
	"time"

	"github.com/rudell/cubecalc/algebra"
	"github.com/rudell/cubecalc/bcl"
)

// BCLToSlot loads a cube-list source into a
// slot, replacing its previous content.
type BCLToSlot struct{}

func (c *BCLToSlot) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot"); err != nil {
		return false, err
	}
	return true, nil
}

func (c *BCLToSlot) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	slot, err := slotArg(input, "slot")
	if err != nil {
		return errorReply(err), err
	}
	l, err := cubeListFromSource(state, input)
	if err != nil {
		return errorReply(err), err
	}
	state.Slots[slot] = l
	return finish(state, input, 0, time.Since(start), map[string]interface{}{"empty": boolInt(l.Len() == 0)}), nil
}

// Minimize runs two-level minimization on a slot in place.
type Minimize struct{}

func (c *Minimize) Validate(state *State, input map[string]interface{}) (bool, error) {
	_, err := slotArg(input, "slot")
	return err == nil, err
}

func (c *Minimize) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	slot, err := slotArg(input, "slot")
	if err != nil {
		return errorReply(err), err
	}
	algebra.Minimize(state.Ctx, state.Slots[slot])
	return finish(state, input, 0, time.Since(start), nil), nil
}

// Complement replaces a slot's content with its complement.
type Complement struct{}

func (c *Complement) Validate(state *State, input map[string]interface{}) (bool, error) {
	_, err := slotArg(input, "slot")
	return err == nil, err
}

func (c *Complement) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	slot, err := slotArg(input, "slot")
	if err != nil {
		return errorReply(err), err
	}
	state.Slots[slot] = algebra.Complement(state.Ctx, state.Slots[slot])
	return finish(state, input, 0, time.Since(start), map[string]interface{}{"empty": boolInt(state.Slots[slot].Len() == 0)}), nil
}

// Flip toggles every variable's used/unused polarity in a slot (bcl.List.FlipVariables).
type Flip struct{}

func (c *Flip) Validate(state *State, input map[string]interface{}) (bool, error) {
	_, err := slotArg(input, "slot")
	return err == nil, err
}

func (c *Flip) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	slot, err := slotArg(input, "slot")
	if err != nil {
		return errorReply(err), err
	}
	state.Slots[slot].FlipVariables()
	return finish(state, input, 0, time.Since(start), nil), nil
}

// And intersects two slots, writing the result into the first.
type And struct{}

func (c *And) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot1"); err != nil {
		return false, err
	}
	_, err := slotArg(input, "slot2")
	return err == nil, err
}

func (c *And) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	s1, err := slotArg(input, "slot1")
	if err != nil {
		return errorReply(err), err
	}
	s2, err := slotArg(input, "slot2")
	if err != nil {
		return errorReply(err), err
	}
	out := bcl.New(state.Ctx)
	algebra.Intersect(state.Ctx, out, state.Slots[s1], state.Slots[s2])
	state.Slots[s1] = out
	return finish(state, input, 0, time.Since(start), map[string]interface{}{"empty": boolInt(out.Len() == 0)}), nil
}

// Show reports whether a slot is empty; like every command, it emits a
// label record only when the block carries "label" or "label0".
type Show struct{}

func (c *Show) Validate(state *State, input map[string]interface{}) (bool, error) {
	_, err := slotArg(input, "slot")
	return err == nil, err
}

func (c *Show) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	slot, err := slotArg(input, "slot")
	if err != nil {
		return errorReply(err), err
	}
	return finish(state, input, slot, time.Since(start), map[string]interface{}{"empty": boolInt(state.Slots[slot].Len() == 0)}), nil
}

// UnusedToZero forces every column don't-care across the whole slot (and
// optionally a second, mask, slot) to Zero (bcl.List.SetAllDCToZero).
type UnusedToZero struct{}

func (c *UnusedToZero) Validate(state *State, input map[string]interface{}) (bool, error) {
	_, err := slotArg(input, "slot")
	return err == nil, err
}

func (c *UnusedToZero) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	slot, err := slotArg(input, "slot")
	if err != nil {
		return errorReply(err), err
	}
	var mask *bcl.List
	if maskSlot, err := optSlotArg(input, "maskSlot", -1); err == nil && maskSlot >= 0 {
		mask = state.Slots[maskSlot]
	}
	state.Slots[slot].SetAllDCToZero(mask)
	return finish(state, input, 0, time.Since(start), nil), nil
}

// Intersection writes slot1 ∩ slot2 into a result slot.
type Intersection struct{}

func (c *Intersection) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot1"); err != nil {
		return false, err
	}
	_, err := slotArg(input, "slot2")
	return err == nil, err
}

func (c *Intersection) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	s1, err := slotArg(input, "slot1")
	if err != nil {
		return errorReply(err), err
	}
	s2, err := slotArg(input, "slot2")
	if err != nil {
		return errorReply(err), err
	}
	result, err := optSlotArg(input, "result", 0)
	if err != nil {
		return errorReply(err), err
	}
	out := bcl.New(state.Ctx)
	algebra.Intersect(state.Ctx, out, state.Slots[s1], state.Slots[s2])
	state.Slots[result] = out
	return finish(state, input, result, time.Since(start), map[string]interface{}{"empty": boolInt(out.Len() == 0)}), nil
}

// Union writes slot1 ∪ slot2 into a result slot.
type Union struct{}

func (c *Union) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot1"); err != nil {
		return false, err
	}
	_, err := slotArg(input, "slot2")
	return err == nil, err
}

func (c *Union) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	s1, err := slotArg(input, "slot1")
	if err != nil {
		return errorReply(err), err
	}
	s2, err := slotArg(input, "slot2")
	if err != nil {
		return errorReply(err), err
	}
	result, err := optSlotArg(input, "result", 0)
	if err != nil {
		return errorReply(err), err
	}
	out := bcl.New(state.Ctx)
	algebra.Union(state.Ctx, out, state.Slots[s1], state.Slots[s2], algebra.ShouldUseMCC(state.Slots[s2]))
	state.Slots[result] = out
	return finish(state, input, result, time.Since(start), nil), nil
}

// Subtract computes slot1 \ slot2 in place on slot1.
type Subtract struct{}

func (c *Subtract) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot1"); err != nil {
		return false, err
	}
	_, err := slotArg(input, "slot2")
	return err == nil, err
}

func (c *Subtract) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	s1, err := slotArg(input, "slot1")
	if err != nil {
		return errorReply(err), err
	}
	s2, err := slotArg(input, "slot2")
	if err != nil {
		return errorReply(err), err
	}
	algebra.Subtract(state.Ctx, state.Slots[s1], state.Slots[s2], algebra.ShouldUseMCC(state.Slots[s2]))
	return finish(state, input, 0, time.Since(start), map[string]interface{}{"empty": boolInt(state.Slots[s1].Len() == 0)}), nil
}

// Equal reports whether two slots describe the same function.
type Equal struct{}

func (c *Equal) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot1"); err != nil {
		return false, err
	}
	_, err := slotArg(input, "slot2")
	return err == nil, err
}

func (c *Equal) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	s1, err := slotArg(input, "slot1")
	if err != nil {
		return errorReply(err), err
	}
	s2, err := slotArg(input, "slot2")
	if err != nil {
		return errorReply(err), err
	}
	subset := algebra.IsSubsetBCL(state.Ctx, state.Slots[s1], state.Slots[s2])
	superset := algebra.IsSubsetBCL(state.Ctx, state.Slots[s2], state.Slots[s1])
	return finish(state, input, 0, time.Since(start), map[string]interface{}{
		"subset":   boolInt(subset),
		"superset": boolInt(superset),
	}), nil
}

// GroupToZero applies mutually-exclusive group exclusion to a slot.
type GroupToZero struct{}

func (c *GroupToZero) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot"); err != nil {
		return false, err
	}
	if _, found := input["group"]; !found {
		return false, fmt.Errorf("%q key is required", "group")
	}
	return true, nil
}

func (c *GroupToZero) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	slot, err := slotArg(input, "slot")
	if err != nil {
		return errorReply(err), err
	}
	group, err := groupArg(input)
	if err != nil {
		return errorReply(err), err
	}
	algebra.ExcludeGroup(state.Ctx, state.Slots[slot], group)
	return finish(state, input, 0, time.Since(start), nil), nil
}

// Exchange swaps the content of two slots.
type Exchange struct{}

func (c *Exchange) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot1"); err != nil {
		return false, err
	}
	_, err := slotArg(input, "slot2")
	return err == nil, err
}

func (c *Exchange) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	s1, err := slotArg(input, "slot1")
	if err != nil {
		return errorReply(err), err
	}
	s2, err := slotArg(input, "slot2")
	if err != nil {
		return errorReply(err), err
	}
	state.Slots[s1], state.Slots[s2] = state.Slots[s2], state.Slots[s1]
	return finish(state, input, 0, time.Since(start), nil), nil
}

// Copy duplicates a slot's content into another.
type Copy struct{}

func (c *Copy) Validate(state *State, input map[string]interface{}) (bool, error) {
	if _, err := slotArg(input, "slot1"); err != nil {
		return false, err
	}
	_, err := slotArg(input, "slot2")
	return err == nil, err
}

func (c *Copy) Run(state *State, input map[string]interface{}) (Reply, error) {
	start := time.Now()
	s1, err := slotArg(input, "slot1")
	if err != nil {
		return errorReply(err), err
	}
	s2, err := slotArg(input, "slot2")
	if err != nil {
		return errorReply(err), err
	}
	state.Slots[s2] = bcl.NewFrom(state.Slots[s1])
	return finish(state, input, 0, time.Since(start), nil), nil
}

func groupArg(input map[string]interface{}) ([]uint, error) {
	v, ok := input["group"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%q must be a vector of position numbers", "group")
	}
	group := make([]uint, 0, len(v))
	for _, item := range v {
		f, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("%q entries must be numbers", "group")
		}
		group = append(group, uint(f))
	}
	return group, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// finish builds the Reply for a command block: an "OK" reply, plus (if the
// block carried a label/label0 key) the labeled result record nested under
// "record".
func finish(state *State, input map[string]interface{}, index int, elapsed time.Duration, flags map[string]interface{}) Reply {
	extra := map[string]interface{}{}
	if rec, ok := labelRecord(state, input, index, elapsed, flags); ok {
		extra["record"] = rec
	}
	return okReply(extra)
}
