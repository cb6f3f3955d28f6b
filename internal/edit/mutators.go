package edit

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// SetCredits overwrites the player's credit balance, keeping the field's
// existing encoding: a save storing credits as a numeric string gets a string
// back, a numeric field stays numeric. Saves that never had the field get the
// producer's string convention.
func (e *Engine) SetCredits(amount int64) error {
	const path = "Player.credits"
	if e.doc.Get(path).Type == gjson.Number {
		return e.doc.SetRaw(path, strconv.FormatInt(amount, 10))
	}
	return e.doc.Set(path, strconv.FormatInt(amount, 10))
}

// SetMaterialCount overwrites a storage record's count in place. Counts must
// stay positive.
func (e *Engine) SetMaterialCount(ref MaterialRef, amount int64) error {
	if ref.path == "" {
		return validationf("material record has no storage backing it")
	}
	if amount <= 0 {
		return validationf("material count must be greater than 0, got %d", amount)
	}
	return e.doc.SetRaw(ref.path+".count", strconv.FormatInt(amount, 10))
}

// SetReputation overwrites a faction link's reputation in place, enforcing
// the writable range.
func (e *Engine) SetReputation(view FactionView, value int) error {
	if view.path == "" {
		return validationf("faction view has no link backing it")
	}
	if value < ReputationMin || value > ReputationMax {
		return validationf("reputation must be between %d and %d, got %d", ReputationMin, ReputationMax, value)
	}
	return e.doc.SetRaw(view.path+".reputation", strconv.Itoa(value))
}

// SetStat overwrites the field the record's kind names. The populated field
// never changes across an edit: a multiplier stat stays a multiplier.
func (e *Engine) SetStat(ref StatRef, value float64) error {
	if ref.path == "" {
		return validationf("stat record has no item backing it")
	}
	return e.doc.Set(ref.path+"."+string(ref.Kind), value)
}
