package edit

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/tidwall/gjson"

	"starsave.dev/internal/persistence/savefile"
)

const sectorsPath = "Player.map.sectors"

// Credits reads the player's credit balance. The field may be encoded as a
// number or as a numeric string depending on save revision.
func (e *Engine) Credits() (int64, error) {
	c := e.doc.Get("Player.credits")
	switch c.Type {
	case gjson.String:
		n, err := strconv.ParseInt(c.Str, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("credits %q: %w", c.Str, err)
		}
		return n, nil
	case gjson.Number:
		return c.Int(), nil
	case gjson.Null:
		return 0, nil
	default:
		if !c.Exists() {
			return 0, nil
		}
		return 0, fmt.Errorf("credits has unexpected type %s", c.Type)
	}
}

// PointOfInterestByGUID scans the full sector map, depth first, for the first
// point of interest whose guid matches. No index is persisted in the save, so
// lookup is always a scan.
func (e *Engine) PointOfInterestByGUID(guid string) (POIRef, bool) {
	var found POIRef
	var ok bool
	e.eachPOI(func(path string, poi gjson.Result, _, _ string) bool {
		if poi.Get("guid").Str != guid {
			return true
		}
		found = POIRef{path: path, GUID: guid, Name: poi.Get("name").Str}
		ok = true
		return false
	})
	return found, ok
}

// CurrentMaterialStorage resolves the player's current point of interest and
// returns its material storage records. ok is false when the player is not
// docked anywhere, the point of interest is missing from the map, or it has
// no storage.
func (e *Engine) CurrentMaterialStorage() ([]MaterialRef, bool) {
	cur := e.doc.Get("Player.currentPointOfInterest").Str
	if cur == "" {
		return nil, false
	}
	poi, ok := e.PointOfInterestByGUID(cur)
	if !ok {
		return nil, false
	}
	storage := e.doc.Get(poi.path + ".materialStorage")
	if !storage.IsObject() {
		return nil, false
	}
	return e.materialsAt(poi.path + ".materialStorage.items"), true
}

// StationsWithMaterials returns every point of interest holding at least one
// material record, sorted by (zone, system, name) ascending; ties keep
// document order.
func (e *Engine) StationsWithMaterials() []Station {
	var out []Station
	e.eachPOI(func(path string, poi gjson.Result, zone, system string) bool {
		mats := e.materialsAt(path + ".materialStorage.items")
		if len(mats) == 0 {
			return true
		}
		out = append(out, Station{
			Zone:      zone,
			System:    system,
			Name:      poiName(poi),
			GUID:      poi.Get("guid").Str,
			Materials: mats,
		})
		return true
	})
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Zone != b.Zone {
			return a.Zone < b.Zone
		}
		if a.System != b.System {
			return a.System < b.System
		}
		return a.Name < b.Name
	})
	return out
}

// eachPOI walks sector -> system -> point of interest in document order,
// passing each POI's path and the enclosing zone/system display names. The
// visitor returns false to stop the walk.
func (e *Engine) eachPOI(visit func(path string, poi gjson.Result, zone, system string) bool) {
	stop := false
	secIdx := -1
	e.doc.Get(sectorsPath).ForEach(func(_, sector gjson.Result) bool {
		secIdx++
		zone := sector.Get("name").Str
		if zone == "" {
			zone = "Unknown Zone"
		}
		sysIdx := -1
		sector.Get("systems").ForEach(func(_, system gjson.Result) bool {
			sysIdx++
			sysName := system.Get("name").Str
			if sysName == "" {
				sysName = "Unknown System"
			}
			poiIdx := -1
			system.Get("pointsOfInterest").ForEach(func(_, poi gjson.Result) bool {
				poiIdx++
				path := fmt.Sprintf("%s.%d.systems.%d.pointsOfInterest.%d", sectorsPath, secIdx, sysIdx, poiIdx)
				if !visit(path, poi, zone, sysName) {
					stop = true
					return false
				}
				return true
			})
			return !stop
		})
		return !stop
	})
}

func poiName(poi gjson.Result) string {
	if n := poi.Get("name").Str; n != "" {
		return n
	}
	return "Unknown"
}

func (e *Engine) materialsAt(itemsPath string) []MaterialRef {
	var out []MaterialRef
	idx := -1
	e.doc.Get(itemsPath).ForEach(func(_, rec gjson.Result) bool {
		idx++
		if !rec.IsObject() {
			return true
		}
		id := rec.Get("item").Str
		out = append(out, MaterialRef{
			path:   fmt.Sprintf("%s.%d", itemsPath, idx),
			ItemID: id,
			Name:   e.cats.MaterialName(id),
			Count:  rec.Get("count").Int(),
		})
		return true
	})
	return out
}

// PlayerFactions filters the save's faction links down to those where exactly
// one side is the player, preserving document order.
func (e *Engine) PlayerFactions() []FactionView {
	var out []FactionView
	idx := -1
	e.doc.Get("Player.factionData").ForEach(func(_, link gjson.Result) bool {
		idx++
		f1 := link.Get("f1").Str
		f2 := link.Get("f2").Str
		var other string
		switch {
		case f1 == PlayerID && f2 != PlayerID:
			other = f2
		case f2 == PlayerID && f1 != PlayerID:
			other = f1
		default:
			return true
		}
		rep := int(link.Get("reputation").Int())
		out = append(out, FactionView{
			path:       fmt.Sprintf("Player.factionData.%d", idx),
			FactionID:  other,
			Name:       e.cats.FactionName(other),
			Reputation: rep,
			Tier:       ClassifyReputation(rep),
		})
		return true
	})
	return out
}

// ShipList returns every ship the player owns, in save order.
func (e *Engine) ShipList() []ShipRef {
	var out []ShipRef
	idx := -1
	e.doc.Get("Player.spaceShips").ForEach(func(_, ship gjson.Result) bool {
		idx++
		out = append(out, ShipRef{
			path: fmt.Sprintf("Player.spaceShips.%d", idx),
			GUID: ship.Get("guid").Str,
			Name: ship.Get("customName").Str,
			Type: ship.Get("type").Str,
		})
		return true
	})
	return out
}

// ActiveShip resolves Player.currentSpaceShip against the ship list. ok is
// false when the field is empty or no ship matches.
func (e *Engine) ActiveShip() (ShipRef, bool) {
	guid := e.doc.Get("Player.currentSpaceShip").Str
	if guid == "" {
		return ShipRef{}, false
	}
	for _, ship := range e.ShipList() {
		if ship.GUID == guid {
			return ship, true
		}
	}
	return ShipRef{}, false
}

// ShipItems flattens a ship's equipment map and hardpoint list into one item
// list. Null and non-map entries (empty slots) are skipped.
func (e *Engine) ShipItems(ship ShipRef) []ItemRef {
	location := ship.Name
	if location == "" {
		location = ship.Type
	}
	var out []ItemRef
	e.doc.Get(ship.path + ".equipment").ForEach(func(key, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		out = append(out, ItemRef{
			path:     ship.path + ".equipment." + savefile.EscapePath(key.Str),
			Name:     item.Get("displayName").Str,
			Kind:     SlotEquipment,
			Location: location,
			Slot:     "Equipment: " + key.Str,
		})
		return true
	})
	idx := -1
	e.doc.Get(ship.path + ".hardpoints").ForEach(func(_, item gjson.Result) bool {
		idx++
		if !item.IsObject() {
			return true
		}
		out = append(out, ItemRef{
			path:     fmt.Sprintf("%s.hardpoints.%d", ship.path, idx),
			Name:     item.Get("displayName").Str,
			Kind:     SlotHardpoint,
			Location: location,
			Slot:     fmt.Sprintf("Hardpoint %d", idx),
		})
		return true
	})
	return out
}

// ShipCargo flattens cargo.items. A record's item is either a full item map
// (editable: stats and aspects available) or a bare identifier string.
func (e *Engine) ShipCargo(ship ShipRef) []CargoRef {
	location := ship.Name
	if location == "" {
		location = ship.Type
	}
	var out []CargoRef
	idx := -1
	e.doc.Get(ship.path + ".cargo.items").ForEach(func(_, rec gjson.Result) bool {
		idx++
		recPath := fmt.Sprintf("%s.cargo.items.%d", ship.path, idx)
		count := rec.Get("count").Int()
		item := rec.Get("item")
		switch {
		case item.IsObject():
			itemPath := recPath + ".item"
			ref := ItemRef{
				path:     itemPath,
				Name:     item.Get("displayName").Str,
				Kind:     SlotCargo,
				Location: location,
				Slot:     fmt.Sprintf("Cargo %d", idx),
			}
			out = append(out, CargoRef{
				Item:     ref,
				Editable: true,
				Count:    count,
				Aspects:  e.aspectsAt(itemPath),
			})
		case item.Type == gjson.String:
			out = append(out, CargoRef{
				Item: ItemRef{
					Name:     item.Str,
					Kind:     SlotCargo,
					Location: location,
					Slot:     fmt.Sprintf("Cargo %d", idx),
				},
				Editable: false,
				Count:    count,
			})
		}
		return true
	})
	return out
}

// ItemsMatching scans every ship's equipment and hardpoints plus the global
// inventory for items whose display name satisfies pred. Matching is on the
// exact display name string; the usual predicate is a case-sensitive
// substring test.
func (e *Engine) ItemsMatching(pred func(name string) bool) []ItemRef {
	var out []ItemRef
	for i, ship := range e.ShipList() {
		location := fmt.Sprintf("Ship %d (%s)", i, shipLabel(ship))
		for _, item := range e.ShipItems(ship) {
			if pred(item.Name) {
				item.Location = location
				out = append(out, item)
			}
		}
	}
	e.eachArmoryItem(func(itemPath string, item gjson.Result, idx int, _ int64) bool {
		name := item.Get("displayName").Str
		if pred(name) {
			out = append(out, ItemRef{
				path:     itemPath,
				Name:     name,
				Kind:     SlotInventory,
				Location: "Global Inventory",
				Slot:     fmt.Sprintf("Index %d", idx),
			})
		}
		return true
	})
	return out
}

func shipLabel(ship ShipRef) string {
	if ship.Type != "" {
		return ship.Type
	}
	return "Unknown"
}

// ItemStats projects an item's stat records. Each record's populated field is
// resolved once here, preferring multiplier, then amount, then value.
func (e *Engine) ItemStats(item ItemRef) []StatRef {
	if item.path == "" {
		return nil
	}
	statsPath := item.path + ".stats"
	var out []StatRef
	idx := -1
	e.doc.Get(statsPath).ForEach(func(_, rec gjson.Result) bool {
		idx++
		ref := StatRef{
			path: fmt.Sprintf("%s.%d", statsPath, idx),
			Stat: rec.Get("stat").Str,
		}
		switch {
		case rec.Get("multiplier").Exists():
			ref.Kind = StatMultiplier
			ref.Value = rec.Get("multiplier").Float()
		case rec.Get("amount").Exists():
			ref.Kind = StatAmount
			ref.Value = rec.Get("amount").Float()
		default:
			ref.Kind = StatRawValue
			ref.Value = rec.Get("value").Float()
		}
		out = append(out, ref)
		return true
	})
	return out
}

// ArmoryAspects lists the standalone aspect entries in the global inventory:
// items whose itemType is "Aspect", carrying the aspect identifier in
// aspectName.
func (e *Engine) ArmoryAspects() []AspectSource {
	var out []AspectSource
	e.eachArmoryItem(func(_ string, item gjson.Result, _ int, count int64) bool {
		if item.Get("itemType").Str != "Aspect" {
			return true
		}
		aspect := item.Get("aspectName").Str
		if aspect == "" {
			return true
		}
		name := item.Get("displayName").Str
		if name == "" {
			name = aspect
		}
		out = append(out, AspectSource{Aspect: aspect, Name: name, Count: count})
		return true
	})
	return out
}

// armoryPath resolves the global inventory's two save-revision shapes: a bare
// sequence, or a map carrying the sequence under "items". Every inventory
// consumer goes through here so no call site assumes one form.
func (e *Engine) armoryPath() (string, bool) {
	inv := e.doc.Get("Player.globalInventory")
	switch {
	case inv.IsArray():
		return "Player.globalInventory", true
	case inv.IsObject() && inv.Get("items").IsArray():
		return "Player.globalInventory.items", true
	default:
		return "", false
	}
}

// eachArmoryItem visits each global inventory entry's item map. Entries are
// either bare item maps or {item, count} wrappers; bare entries count as 1.
func (e *Engine) eachArmoryItem(visit func(itemPath string, item gjson.Result, idx int, count int64) bool) {
	base, ok := e.armoryPath()
	if !ok {
		return
	}
	idx := -1
	e.doc.Get(base).ForEach(func(_, entry gjson.Result) bool {
		idx++
		if !entry.IsObject() {
			return true
		}
		entryPath := fmt.Sprintf("%s.%d", base, idx)
		if wrapped := entry.Get("item"); wrapped.IsObject() {
			return visit(entryPath+".item", wrapped, idx, entry.Get("count").Int())
		}
		return visit(entryPath, entry, idx, 1)
	})
}

// ItemAspects lists the aspects equipped on an item, in slot order. Empty
// sentinels (null or "None") are skipped.
func (e *Engine) ItemAspects(item ItemRef) []string {
	return e.aspectsAt(item.path)
}

func (e *Engine) aspectsAt(itemPath string) []string {
	if itemPath == "" {
		return nil
	}
	var out []string
	e.doc.Get(itemPath + ".aspectSlots").ForEach(func(_, slot gjson.Result) bool {
		if ea := slot.Get("equipAspect"); !slotEmpty(ea) {
			out = append(out, ea.Str)
		}
		return true
	})
	return out
}

func slotEmpty(equipAspect gjson.Result) bool {
	return !equipAspect.Exists() || equipAspect.Type == gjson.Null || equipAspect.Str == "None"
}
