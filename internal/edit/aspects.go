package edit

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
)

// Aspect slots per item. Saves never carry more than this and transfers must
// not push an item over it.
const maxAspectSlots = 2

// TransferSource is one eligible origin for an aspect transfer: an editable
// cargo item (Cargo set) or a standalone armory aspect entry (Armory set).
type TransferSource struct {
	Cargo  *CargoRef
	Armory *AspectSource
}

// TransferRequest carries every choice of a transfer up front: the source,
// which of its aspects to copy (may be empty for single-aspect and armory
// sources), the target item, and — when the target's slots are full — which
// equipped aspect to overwrite.
type TransferRequest struct {
	Source    TransferSource
	Aspect    string
	Target    CargoRef
	Overwrite string
}

// TransferSources enumerates eligible transfer origins: the active ship's
// editable cargo items plus the armory's aspect entries. An empty result is a
// normal nothing-to-do outcome, not an error.
func (e *Engine) TransferSources() []TransferSource {
	var out []TransferSource
	if ship, ok := e.ActiveShip(); ok {
		for _, c := range e.ShipCargo(ship) {
			if !c.Editable {
				continue
			}
			c := c
			out = append(out, TransferSource{Cargo: &c})
		}
	}
	for _, a := range e.ArmoryAspects() {
		a := a
		out = append(out, TransferSource{Armory: &a})
	}
	return out
}

// TransferTargets enumerates eligible destinations: the same editable cargo
// pool, minus the source item itself. exclude is nil for armory sources,
// which own no item.
func (e *Engine) TransferTargets(exclude *CargoRef) []CargoRef {
	ship, ok := e.ActiveShip()
	if !ok {
		return nil
	}
	var out []CargoRef
	for _, c := range e.ShipCargo(ship) {
		if !c.Editable {
			continue
		}
		if exclude != nil && c.Item.path == exclude.Item.path {
			continue
		}
		out = append(out, c)
	}
	return out
}

// TransferAspect copies an aspect from the request's source onto the target
// item's slot collection. Transfers are non-destructive: only the target is
// mutated, never the source. Slot resolution, in order: overwrite the first
// slot equipping the chosen victim when the target is full, fill the first
// empty slot, append a new slot below capacity.
func (e *Engine) TransferAspect(req TransferRequest) error {
	aspect, err := e.resolveSourceAspect(req)
	if err != nil {
		return err
	}
	if !req.Target.Editable || req.Target.Item.path == "" {
		return validationf("target item is not editable")
	}
	if req.Source.Cargo != nil && req.Source.Cargo.Item.path == req.Target.Item.path {
		return validationf("source and target are the same item")
	}
	return e.writeAspect(req.Target.Item.path, aspect, req.Overwrite)
}

// resolveSourceAspect validates the source half of a request and pins down
// which aspect identifier is being copied. Multi-aspect sources require an
// explicit choice; there is no default.
func (e *Engine) resolveSourceAspect(req TransferRequest) (string, error) {
	switch {
	case req.Source.Cargo != nil:
		src := req.Source.Cargo
		if !src.Editable || src.Item.path == "" {
			return "", validationf("source item is not editable")
		}
		owned := e.aspectsAt(src.Item.path)
		switch {
		case len(owned) == 0:
			return "", validationf("source item %q has no aspects to copy", src.Item.Name)
		case req.Aspect == "" && len(owned) == 1:
			return owned[0], nil
		case req.Aspect == "":
			return "", validationf("source item %q carries %d aspects; one must be chosen", src.Item.Name, len(owned))
		}
		for _, a := range owned {
			if a == req.Aspect {
				return req.Aspect, nil
			}
		}
		return "", validationf("aspect %q is not on source item %q", req.Aspect, src.Item.Name)
	case req.Source.Armory != nil:
		if req.Aspect != "" && req.Aspect != req.Source.Armory.Aspect {
			return "", validationf("aspect %q does not match armory entry %q", req.Aspect, req.Source.Armory.Aspect)
		}
		if req.Source.Armory.Aspect == "" {
			return "", validationf("armory entry carries no aspect identifier")
		}
		return req.Source.Armory.Aspect, nil
	default:
		return "", validationf("no transfer source selected")
	}
}

func (e *Engine) writeAspect(itemPath, aspect, overwrite string) error {
	slotsPath := itemPath + ".aspectSlots"
	var slots []gjson.Result
	if arr := e.doc.Get(slotsPath); arr.IsArray() {
		slots = arr.Array()
	}

	nonEmpty := 0
	firstEmpty := -1
	for i, slot := range slots {
		if slotEmpty(slot.Get("equipAspect")) {
			if firstEmpty < 0 {
				firstEmpty = i
			}
		} else {
			nonEmpty++
		}
	}

	if nonEmpty >= maxAspectSlots {
		if overwrite == "" {
			return validationf("target slots are full; an equipped aspect to overwrite must be chosen")
		}
		for i, slot := range slots {
			if ea := slot.Get("equipAspect"); !slotEmpty(ea) && ea.Str == overwrite {
				return e.doc.Set(fmt.Sprintf("%s.%d.equipAspect", slotsPath, i), aspect)
			}
		}
		return validationf("aspect %q is not equipped on the target", overwrite)
	}
	if firstEmpty >= 0 {
		return e.doc.Set(fmt.Sprintf("%s.%d.equipAspect", slotsPath, firstEmpty), aspect)
	}
	if len(slots) < maxAspectSlots {
		rec := fmt.Sprintf(`{"equipAspect":%s,"index":%s}`,
			strconv.Quote(aspect), strconv.Quote(strconv.Itoa(len(slots))))
		if len(slots) == 0 {
			// Covers items with an empty list and items missing the list.
			return e.doc.SetRaw(slotsPath, "["+rec+"]")
		}
		return e.doc.SetRaw(fmt.Sprintf("%s.%d", slotsPath, len(slots)), rec)
	}
	// Unreachable while slots never exceed capacity; surfaced, not swallowed.
	return ErrSlotCapacity
}
