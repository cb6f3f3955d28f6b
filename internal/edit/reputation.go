package edit

// Reputation bounds enforced by SetReputation.
const (
	ReputationMin = -25000
	ReputationMax = 15000
)

// Tier is a named band of the reputation scale. Floor is the band's lower
// bound as shown to the player; Despised reports -15000 even though writable
// values reach ReputationMin.
type Tier struct {
	Name  string
	Floor int
}

var (
	TierRespected  = Tier{Name: "Respected", Floor: 15000}
	TierFriendly   = Tier{Name: "Friendly", Floor: 10000}
	TierCordial    = Tier{Name: "Cordial", Floor: 3500}
	TierNeutral    = Tier{Name: "Neutral", Floor: 1500}
	TierUnfriendly = Tier{Name: "Unfriendly", Floor: -1000}
	TierDespised   = Tier{Name: "Despised", Floor: -15000}
)

// ClassifyReputation maps a reputation value to its tier. Total over the
// integers; bands partition with no gap or overlap.
func ClassifyReputation(r int) Tier {
	switch {
	case r >= 15000:
		return TierRespected
	case r >= 10000:
		return TierFriendly
	case r >= 3500:
		return TierCordial
	case r >= 1500:
		return TierNeutral
	case r >= -1000:
		return TierUnfriendly
	default:
		return TierDespised
	}
}
