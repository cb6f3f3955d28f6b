package edit

// SlotKind tags where an item was found.
type SlotKind string

const (
	SlotEquipment SlotKind = "equipment"
	SlotHardpoint SlotKind = "hardpoint"
	SlotInventory SlotKind = "inventory"
	SlotCargo     SlotKind = "cargo"
)

// POIRef is a live handle to a point of interest in the sector map.
type POIRef struct {
	path string

	GUID string
	Name string
}

// MaterialRef is a live handle to one {item, count} record in a material
// storage.
type MaterialRef struct {
	path string

	ItemID string
	Name   string
	Count  int64
}

// Station is a point of interest with non-empty material storage, carrying
// its place in the sector map for display.
type Station struct {
	Zone      string
	System    string
	Name      string
	GUID      string
	Materials []MaterialRef
}

// FactionView is a live handle to the player's link with one faction.
type FactionView struct {
	path string

	FactionID  string
	Name       string
	Reputation int
	Tier       Tier
}

// ShipRef is a live handle to one entry in the player's ship list.
type ShipRef struct {
	path string

	GUID string
	Name string
	Type string
}

// ItemRef is a live handle to an item wherever it sits: an equipment slot, a
// hardpoint, the global inventory, or inside a cargo record. Location and
// Slot are display tags.
type ItemRef struct {
	path string

	Name     string
	Kind     SlotKind
	Location string
	Slot     string
}

// CargoRef is one cargo record. Bare-string records (an identifier with no
// modifiers) are not editable: they carry no item map, no stats and no aspect
// slots.
type CargoRef struct {
	Item     ItemRef
	Editable bool
	Count    int64
	Aspects  []string
}

// StatKind names which field of a stat record is populated. Fixed when the
// record is projected; SetStat writes back only to this field.
type StatKind string

const (
	StatMultiplier StatKind = "multiplier"
	StatAmount     StatKind = "amount"
	StatRawValue   StatKind = "value"
)

// StatRef is a live handle to one stat record on an item.
type StatRef struct {
	path string

	Stat  string
	Kind  StatKind
	Value float64
}

// AspectSource is a standalone aspect entry in the armory. Sources are
// unlimited-use and never mutated by a transfer.
type AspectSource struct {
	Aspect string
	Name   string
	Count  int64
}
