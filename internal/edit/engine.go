// Package edit is the save editor core: read-side projections over the
// decoded document, reference-preserving mutators, and the aspect transfer
// engine. Every view holds a path handle into the shared document, so a
// mutation through one view is visible through all others and survives
// re-encoding.
package edit

import (
	"starsave.dev/internal/catalogs"
	"starsave.dev/internal/persistence/savefile"
)

// PlayerID is the literal identifier the save uses for the player's side of a
// faction link.
const PlayerID = "Player"

// Engine binds one document to the name catalogs used for display
// projection. It owns no state of its own; all reads and writes go straight
// to the document.
type Engine struct {
	doc  *savefile.Document
	cats *catalogs.Catalogs
}

func New(doc *savefile.Document, cats *catalogs.Catalogs) *Engine {
	if cats == nil {
		cats = catalogs.Default()
	}
	return &Engine{doc: doc, cats: cats}
}

// Document returns the underlying document, e.g. for encoding after edits.
func (e *Engine) Document() *savefile.Document { return e.doc }
