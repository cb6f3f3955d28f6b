package edit

import (
	"testing"

	"starsave.dev/internal/persistence/savefile"
)

// fixtureJSON covers the irregular corners of real saves: credits as a
// numeric string, a null equipment slot, a null hardpoint, a bare-string
// cargo entry, a map-shaped global inventory holding both a wrapped and a
// bare item, a non-player faction link, and a sector map whose document order
// disagrees with the display sort.
const fixtureJSON = `{"Player":{` +
	`"credits":"5000000",` +
	`"currentPointOfInterest":"poi-2",` +
	`"currentSpaceShip":"ship-1",` +
	`"spaceShips":[` +
	`{"guid":"ship-1","customName":"Night Runner","type":"Corvette",` +
	`"equipment":{"Shield":{"displayName":"Silverheart Shield","stats":[{"stat":"ShieldCapacity","multiplier":1.25}]},"Reactor":null},` +
	`"hardpoints":[null,{"displayName":"Pulse Laser","stats":[{"stat":"Damage","amount":42.5},{"stat":"Range","value":900}]}],` +
	`"cargo":{"items":[` +
	`{"item":{"displayName":"Ion Blaster","aspectSlots":[{"equipAspect":"Overcharge","index":"0"},{"equipAspect":"None","index":"1"}]},"count":1},` +
	`{"item":"OreCommon1","count":40},` +
	`{"item":{"displayName":"Mining Laser","aspectSlots":[]},"count":1}` +
	`]}},` +
	`{"guid":"ship-2","customName":"","type":"Freighter","equipment":{},"hardpoints":[],"cargo":{"items":[]}}` +
	`],` +
	`"globalInventory":{"items":[` +
	`{"item":{"displayName":"Overcharge Aspect","itemType":"Aspect","aspectName":"Overcharge"},"count":3},` +
	`{"displayName":"Silverheart Band","itemType":"Module"}` +
	`]},` +
	`"factionData":[` +
	`{"f1":"MiningGuild","f2":"Player","reputation":3600},` +
	`{"f1":"Player","f2":"Smugglers","reputation":-1500},` +
	`{"f1":"Red","f2":"Blue","reputation":200},` +
	`{"f1":"Player","f2":"Player","reputation":999}` +
	`],` +
	`"map":{"sectors":[` +
	`{"name":"Zeta","systems":[{"name":"Kor","pointsOfInterest":[` +
	`{"guid":"poi-1","name":"Outpost Delta","materialStorage":{"items":[{"item":"OreRare1","count":5}]}}` +
	`]}]},` +
	`{"name":"Alpha","systems":[{"name":"Beta","pointsOfInterest":[` +
	`{"guid":"poi-2","name":"Haven Station","materialStorage":{"items":[{"item":"OreCommon1","count":120},{"item":"ColdCrystal","count":7}]}},` +
	`{"guid":"poi-3","name":"Dry Dock"}` +
	`]}]}` +
	`]}}}`

func newTestEngine(t *testing.T, raw string) *Engine {
	t.Helper()
	doc, err := savefile.New([]byte(raw))
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return New(doc, nil)
}

func fixtureEngine(t *testing.T) *Engine {
	t.Helper()
	return newTestEngine(t, fixtureJSON)
}
