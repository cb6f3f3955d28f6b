package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"starsave.dev/internal/catalogs"
	"starsave.dev/internal/edit"
	"starsave.dev/internal/persistence/history"
	"starsave.dev/internal/persistence/savefile"
)

func main() {
	var (
		savePath  = flag.String("save", "", "path to .save file (default: newest .save in -dir)")
		dir       = flag.String("dir", ".", "directory to scan for .save files")
		namesPath = flag.String("names", "", "optional YAML name-catalog override")
		histPath  = flag.String("history", "", "optional sqlite history db; written saves are recorded there")
		outPath   = flag.String("out", "", "write the (possibly edited) save to this path")

		op = flag.String("op", "info", "operation: info|list|stations|materials|factions|ships|items|cargo|armory|history|set-credits|add-credits|set-material|set-reputation|set-stat|transfer")

		match     = flag.String("match", "", "display-name substring for -op items")
		faction   = flag.String("faction", "", "faction identifier for -op set-reputation")
		index     = flag.Int("index", -1, "record index for -op set-material")
		itemIdx   = flag.Int("item", -1, "item index for -op set-stat")
		statIdx   = flag.Int("stat", -1, "stat index for -op set-stat")
		amount    = flag.Int64("amount", 0, "integer amount for credit/material/reputation ops")
		value     = flag.Float64("value", 0, "value for -op set-stat")
		srcIdx    = flag.Int("source", -1, "source index (from -op armory listing order) for -op transfer")
		tgtIdx    = flag.Int("target", -1, "target index for -op transfer")
		aspect    = flag.String("aspect", "", "aspect identifier for -op transfer (required for multi-aspect sources)")
		overwrite = flag.String("overwrite", "", "equipped aspect to overwrite when the target is full")
		limit     = flag.Int("limit", 10, "row limit for -op history")
	)
	flag.Parse()

	if *op == "list" {
		saves, err := savefile.ListDir(*dir)
		if err != nil {
			fatal("list saves:", err)
		}
		for _, s := range saves {
			fmt.Printf("%s\t%s\n", s.ModTime.Format("2006-01-02 15:04:05"), s.Name)
		}
		return
	}
	if *op == "history" {
		showHistory(*histPath, *limit)
		return
	}

	path := *savePath
	if path == "" {
		saves, err := savefile.ListDir(*dir)
		if err != nil {
			fatal("list saves:", err)
		}
		if len(saves) == 0 {
			fatal("no .save files found in", *dir)
		}
		path = saves[0].Path
		fmt.Println("using save:", saves[0].Name)
	}

	doc, err := savefile.Open(path)
	if err != nil {
		fatal("open save:", err)
	}
	cats, err := catalogs.Load(*namesPath)
	if err != nil {
		fatal("load catalogs:", err)
	}
	eng := edit.New(doc, cats)

	mutated := false
	switch *op {
	case "info":
		printInfo(eng)
	case "stations":
		for _, st := range eng.StationsWithMaterials() {
			fmt.Printf("%s / %s / %s (%s)\n", st.Zone, st.System, st.Name, st.GUID)
			for _, m := range st.Materials {
				fmt.Printf("  - %s: %d\n", m.Name, m.Count)
			}
		}
	case "materials":
		mats, ok := eng.CurrentMaterialStorage()
		if !ok {
			fmt.Println("no material storage at the current point of interest")
			return
		}
		for i, m := range mats {
			fmt.Printf("%d. %s: %d\n", i, m.Name, m.Count)
		}
	case "factions":
		for _, f := range eng.PlayerFactions() {
			fmt.Printf("%s (%s): %d - %s\n", f.Name, f.FactionID, f.Reputation, f.Tier.Name)
		}
	case "ships":
		for i, s := range eng.ShipList() {
			name := s.Name
			if name == "" {
				name = s.Type
			}
			fmt.Printf("%d. %s (%s) guid=%s\n", i, name, s.Type, s.GUID)
		}
	case "items":
		if *match == "" {
			fatal("-op items requires -match")
		}
		refs := eng.ItemsMatching(func(name string) bool { return strings.Contains(name, *match) })
		for _, it := range refs {
			fmt.Printf("%s - %s, %s\n", it.Name, it.Location, it.Slot)
		}
	case "cargo":
		ship, ok := eng.ActiveShip()
		if !ok {
			fmt.Println("no active ship")
			return
		}
		for i, c := range eng.ShipCargo(ship) {
			tag := ""
			if !c.Editable {
				tag = " (not editable)"
			}
			fmt.Printf("%d. %s x%d%s", i, c.Item.Name, c.Count, tag)
			if len(c.Aspects) > 0 {
				fmt.Printf(" aspects=%s", strings.Join(c.Aspects, ","))
			}
			fmt.Println()
		}
	case "armory":
		for i, src := range eng.TransferSources() {
			if src.Cargo != nil {
				fmt.Printf("%d. cargo: %s aspects=%s\n", i, src.Cargo.Item.Name, strings.Join(src.Cargo.Aspects, ","))
			} else {
				fmt.Printf("%d. armory: %s (%s) x%d\n", i, src.Armory.Name, src.Armory.Aspect, src.Armory.Count)
			}
		}
	case "set-credits":
		if err := eng.SetCredits(*amount); err != nil {
			fatal("set credits:", err)
		}
		mutated = true
	case "add-credits":
		cur, err := eng.Credits()
		if err != nil {
			fatal("read credits:", err)
		}
		add := *amount
		if add == 0 {
			add = 1000000
		}
		if err := eng.SetCredits(cur + add); err != nil {
			fatal("set credits:", err)
		}
		fmt.Println("credits:", cur+add)
		mutated = true
	case "set-material":
		mats, ok := eng.CurrentMaterialStorage()
		if !ok {
			fatal("no material storage at the current point of interest")
		}
		if *index < 0 || *index >= len(mats) {
			fatal("material -index out of range")
		}
		if err := eng.SetMaterialCount(mats[*index], *amount); err != nil {
			fatal("set material:", err)
		}
		mutated = true
	case "set-reputation":
		var target *edit.FactionView
		for _, f := range eng.PlayerFactions() {
			if f.FactionID == *faction {
				f := f
				target = &f
				break
			}
		}
		if target == nil {
			fatal("no faction link for", *faction)
		}
		if err := eng.SetReputation(*target, int(*amount)); err != nil {
			fatal("set reputation:", err)
		}
		fmt.Printf("%s: %d - %s\n", target.Name, *amount, edit.ClassifyReputation(int(*amount)).Name)
		mutated = true
	case "set-stat":
		ship, ok := eng.ActiveShip()
		if !ok {
			fatal("no active ship")
		}
		items := eng.ShipItems(ship)
		if *itemIdx < 0 || *itemIdx >= len(items) {
			fatal("-item out of range")
		}
		stats := eng.ItemStats(items[*itemIdx])
		if *statIdx < 0 || *statIdx >= len(stats) {
			fatal("-stat out of range")
		}
		if err := eng.SetStat(stats[*statIdx], *value); err != nil {
			fatal("set stat:", err)
		}
		mutated = true
	case "transfer":
		sources := eng.TransferSources()
		if len(sources) == 0 {
			fmt.Println("nothing to transfer: no eligible sources")
			return
		}
		if *srcIdx < 0 || *srcIdx >= len(sources) {
			fatal("-source out of range")
		}
		src := sources[*srcIdx]
		targets := eng.TransferTargets(src.Cargo)
		if len(targets) == 0 {
			fmt.Println("nothing to transfer: no eligible targets")
			return
		}
		if *tgtIdx < 0 || *tgtIdx >= len(targets) {
			fatal("-target out of range")
		}
		req := edit.TransferRequest{
			Source:    src,
			Aspect:    *aspect,
			Target:    targets[*tgtIdx],
			Overwrite: *overwrite,
		}
		if err := eng.TransferAspect(req); err != nil {
			fatal("transfer:", err)
		}
		mutated = true
	default:
		fatal("unknown -op", *op)
	}

	if *outPath == "" {
		if mutated {
			fmt.Fprintln(os.Stderr, "edit applied but no -out given; nothing written")
		}
		return
	}
	writeSave(eng, *outPath, *histPath)
}

func printInfo(eng *edit.Engine) {
	credits, err := eng.Credits()
	if err != nil {
		fatal("read credits:", err)
	}
	fmt.Println("credits:", credits)
	fmt.Println("factions:")
	for _, f := range eng.PlayerFactions() {
		fmt.Printf("  %s: %d - %s\n", f.Name, f.Reputation, f.Tier.Name)
	}
}

func writeSave(eng *edit.Engine, outPath, histPath string) {
	doc := eng.Document()
	if err := doc.Save(outPath); err != nil {
		fatal("write save:", err)
	}
	fmt.Println("saved to", outPath)

	if histPath == "" {
		return
	}
	encoded, err := doc.Encode()
	if err != nil {
		fatal("encode for history:", err)
	}
	credits, _ := eng.Credits()
	store, err := history.Open(histPath)
	if err != nil {
		fatal("open history:", err)
	}
	defer store.Close()
	if err := store.RecordSave(context.Background(), history.NewEntry(outPath, encoded, credits)); err != nil {
		fatal("record history:", err)
	}
}

func showHistory(histPath string, limit int) {
	if histPath == "" {
		fatal("-op history requires -history")
	}
	store, err := history.Open(histPath)
	if err != nil {
		fatal("open history:", err)
	}
	defer store.Close()
	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		fatal("read history:", err)
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s\t%d bytes\tcredits=%d\t%s\n",
			e.SavedAt.Format("2006-01-02 15:04:05"), e.Path, e.Bytes, e.Credits, e.SHA256[:12])
	}
}

func fatal(args ...any) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}
