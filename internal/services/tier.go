package services

// Tier is the discrete confidence bucket shown for a score.
type Tier struct {
	Label string
	Style string
}

// TierFor maps a 0-100 score to its confidence tier. Lower bounds are
// inclusive, so the tiers cover every score with no gaps or overlaps.
func TierFor(score float64) Tier {
	switch {
	case score >= 80:
		return Tier{Label: "Tier 1 (Excellent Match)", Style: "success"}
	case score >= 60:
		return Tier{Label: "Tier 2 (Strong Fit)", Style: "primary"}
	case score >= 40:
		return Tier{Label: "Tier 3 (Average Fit)", Style: "warning"}
	default:
		return Tier{Label: "Tier 4 (Low Fit)", Style: "danger"}
	}
}
