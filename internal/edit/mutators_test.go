package edit

import (
	"strings"
	"testing"

	"starsave.dev/internal/persistence/savefile"
)

func TestSetCredits_KeepsStringEncodingAcrossReload(t *testing.T) {
	e := fixtureEngine(t)
	if err := e.SetCredits(6000000); err != nil {
		t.Fatalf("set credits: %v", err)
	}

	// Full encode/decode cycle, as a real edit session would do.
	enc, err := e.Document().Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	doc, err := savefile.Decode(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	reloaded := New(doc, nil)
	got, err := reloaded.Credits()
	if err != nil {
		t.Fatalf("credits: %v", err)
	}
	if got != 6000000 {
		t.Fatalf("credits=%d want 6000000", got)
	}
	if !strings.Contains(string(doc.JSON()), `"credits":"6000000"`) {
		t.Fatalf("string encoding not preserved: %s", doc.Get("Player.credits").Raw)
	}
}

func TestSetCredits_KeepsNumericEncoding(t *testing.T) {
	e := newTestEngine(t, `{"Player":{"credits":1000}}`)
	if err := e.SetCredits(2000); err != nil {
		t.Fatalf("set credits: %v", err)
	}
	if !strings.Contains(string(e.Document().JSON()), `"credits":2000`) {
		t.Fatalf("numeric encoding not preserved: %s", e.Document().JSON())
	}
}

func TestSetMaterialCount(t *testing.T) {
	e := fixtureEngine(t)
	mats, _ := e.CurrentMaterialStorage()

	if err := e.SetMaterialCount(mats[0], 0); !IsValidation(err) {
		t.Fatalf("expected ValidationError for 0, got %v", err)
	}
	if err := e.SetMaterialCount(mats[0], -5); !IsValidation(err) {
		t.Fatalf("expected ValidationError for -5, got %v", err)
	}
	// Rejected edits leave the document untouched.
	if again, _ := e.CurrentMaterialStorage(); again[0].Count != 120 {
		t.Fatalf("count changed on rejected edit: %d", again[0].Count)
	}

	if err := e.SetMaterialCount(mats[0], 999); err != nil {
		t.Fatalf("set material: %v", err)
	}
	// A fresh query re-reads the mutated value through the same document.
	again, _ := e.CurrentMaterialStorage()
	if again[0].Count != 999 {
		t.Fatalf("count=%d want 999", again[0].Count)
	}
	// Other holders of the storage see the same record.
	stations := e.StationsWithMaterials()
	for _, st := range stations {
		if st.GUID == "poi-2" && st.Materials[0].Count != 999 {
			t.Fatalf("station view out of sync: %d", st.Materials[0].Count)
		}
	}
}

func TestSetReputation(t *testing.T) {
	e := fixtureEngine(t)
	factions := e.PlayerFactions()

	if err := e.SetReputation(factions[0], 16000); !IsValidation(err) {
		t.Fatalf("expected ValidationError for 16000, got %v", err)
	}
	if err := e.SetReputation(factions[0], -26000); !IsValidation(err) {
		t.Fatalf("expected ValidationError for -26000, got %v", err)
	}
	if again := e.PlayerFactions(); again[0].Reputation != 3600 {
		t.Fatalf("reputation changed on rejected edit: %d", again[0].Reputation)
	}

	if err := e.SetReputation(factions[0], 15000); err != nil {
		t.Fatalf("set reputation: %v", err)
	}
	again := e.PlayerFactions()
	if again[0].Reputation != 15000 || again[0].Tier != TierRespected {
		t.Fatalf("after edit: %+v", again[0])
	}
}

func TestSetStat_NeverSwitchesPopulatedField(t *testing.T) {
	e := fixtureEngine(t)
	ship, _ := e.ActiveShip()
	items := e.ShipItems(ship)

	shield := e.ItemStats(items[0])
	if err := e.SetStat(shield[0], 1.5); err != nil {
		t.Fatalf("set stat: %v", err)
	}
	after := e.ItemStats(items[0])
	if after[0].Kind != StatMultiplier || after[0].Value != 1.5 {
		t.Fatalf("after edit: %+v", after[0])
	}

	laser := e.ItemStats(items[1])
	if err := e.SetStat(laser[0], 55); err != nil {
		t.Fatalf("set stat: %v", err)
	}
	raw := e.Document().Get(ship.path + ".hardpoints.1.stats.0").Raw
	if !strings.Contains(raw, `"amount"`) || strings.Contains(raw, `"multiplier"`) || strings.Contains(raw, `"value"`) {
		t.Fatalf("stat record switched fields: %s", raw)
	}
}
