package catalogs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalogs maps game identifiers to display names. Both tables are display
// projections only: an unmapped identifier passes through unchanged.
type Catalogs struct {
	Factions  map[string]string `yaml:"factions"`
	Materials map[string]string `yaml:"materials"`
}

// FactionName resolves a faction identifier to its display name.
func (c *Catalogs) FactionName(id string) string {
	if name, ok := c.Factions[id]; ok {
		return name
	}
	return id
}

// MaterialName resolves an ore or crystal identifier to its display name.
func (c *Catalogs) MaterialName(id string) string {
	if name, ok := c.Materials[id]; ok {
		return name
	}
	return id
}

// Load returns the built-in tables merged with an optional YAML override
// file. Entries in the file win over the built-ins.
func Load(path string) (*Catalogs, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var over Catalogs
	if err := yaml.Unmarshal(raw, &over); err != nil {
		return nil, fmt.Errorf("names catalog %s: %w", path, err)
	}
	for id, name := range over.Factions {
		c.Factions[id] = name
	}
	for id, name := range over.Materials {
		c.Materials[id] = name
	}
	return c, nil
}

// Default returns a fresh copy of the built-in tables.
func Default() *Catalogs {
	c := &Catalogs{
		Factions:  make(map[string]string, len(factionNames)),
		Materials: make(map[string]string, len(materialNames)),
	}
	for id, name := range factionNames {
		c.Factions[id] = name
	}
	for id, name := range materialNames {
		c.Materials[id] = name
	}
	return c
}

var factionNames = map[string]string{
	"MiningGuild":     "Mindus Holdings",
	"PoliceGuild":     "Canisec",
	"BountyGuild":     "Orsanon Security",
	"SalvageGuild":    "Steel Vultures",
	"TradingGuild":    "Intertrade Network",
	"IndustrialGuild": "Forge Industries",
	"Marauders":       "Corsair Syndicate",
	"Smugglers":       "Void Drifters",
	"Blue":            "Stellar Industries",
	"Red":             "Kolyatov Collective",
	"Gold":            "Luminate Combine",
	"Darkspacers":     "Darkspace Compact",
	"Fanatics":        "Meridia's Chosen",
	"Puppeteers":      "Umbral Reach",
	"Player":          "Player",
	"Stranded":        "Stranded",
	"Amalgam":         "Amalgam",
	"HolyRadicals":    "Holy Radicals",
}

var materialNames = map[string]string{
	"OreCommon1":   "Cerrax",
	"OreCommon10":  "Onexel",
	"OreCommon20":  "Baryth",
	"OreCommon30":  "Orminite",
	"OreCommon40":  "Argenthyte",
	"OreCommon50":  "Zorinite",
	"OreCommon60":  "Lithar",
	"OreCommon70":  "Torvenite",
	"OreCommon80":  "Crysaline",
	"OreCommon90":  "Thalorene",
	"OreCommon100": "Lunorite",
	"OreCommon7":   "Dense Cerrax",
	"OreCommon16":  "Dense Onexel",
	"OreCommon26":  "Dense Baryth",
	"OreCommon36":  "Dense Orminite",
	"OreCommon46":  "Dense Argenthyte",
	"OreCommon56":  "Dense Zorinite",
	"OreCommon66":  "Dense Lithar",
	"OreCommon76":  "Dense Torvenite",
	"OreCommon86":  "Dense Crysaline",
	"OreCommon96":  "Dense Thalorene",
	"OreCommon106": "Dense Lunorite",
	"OreCommon13":  "Rich Cerrax",
	"OreCommon22":  "Rich Onexel",
	"OreCommon32":  "Rich Baryth",
	"OreCommon42":  "Rich Orminite",
	"OreCommon52":  "Rich Argenthyte",
	"OreCommon62":  "Rich Zorinite",
	"OreCommon72":  "Rich Lithar",
	"OreCommon82":  "Rich Torvenite",
	"OreCommon92":  "Rich Crysaline",
	"OreCommon102": "Rich Thalorene",
	"OreCommon112": "Rich Lunorite",
	"OreRare1":     "Amberic",
	"OreRare10":    "Dromium",
	"OreRare20":    "Halcyonite",
	"OreRare30":    "Neonine",
	"OreRare40":    "Tachyline",
	"OreRare50":    "Xenorite",
	"OreRare60":    "Caldras",
	"OreRare70":    "Drakitium",
	"OreRare80":    "Xylenite",
	"OreRare90":    "Erythrite",
	"OreRare100":   "Omegane",
	"OreRare7":     "Pure Amberic",
	"OreRare16":    "Pure Dromium",
	"OreRare26":    "Pure Halcyonite",
	"OreRare36":    "Pure Neonine",
	"OreRare46":    "Pure Tachyline",
	"OreRare56":    "Pure Xenorite",
	"OreRare66":    "Pure Caldras",
	"OreRare76":    "Pure Drakitium",
	"OreRare86":    "Pure Xylenite",
	"OreRare96":    "Pure Erythrite",
	"OreRare106":   "Pure Omegane",
	"OreRare13":    "Radiant Amberic",
	"OreRare22":    "Radiant Dromium",
	"OreRare32":    "Radiant Halcyonite",
	"OreRare42":    "Radiant Neonine",
	"OreRare52":    "Radiant Tachyline",
	"OreRare62":    "Radiant Xenorite",
	"OreRare72":    "Radiant Caldras",
	"OreRare82":    "Radiant Drakitium",
	"OreRare92":    "Radiant Xylenite",
	"OreRare102":   "Radiant Erythrite",
	"OreRare112":   "Radiant Omegane",

	"OreUncommon106": "Dense Promethium",
	"OreUncommon112": "Rich Promethium",

	"ColdCrystal":      "Cryonos Crystal",
	"CorrosionCrystal": "Viracid Crystal",
	"EnergyCrystal":    "Pulseite Crystal",
	"ExplosiveCrystal": "Pyroc Crystal",
	"HeatCrystal":      "Meltrax Crystal",
	"KineticCrystal":   "Kinetos Crystal",
	"RadiationCrystal": "Ravenoryx Crystal",
	"BallisticCrystal": "Ares Core",
	"ModuleCrystal":    "Athena Prism",
}
