package services

import (
	"math"
	"sort"

	"resume-matcher/internal/models"
)

// AssembleResults joins resume names with their raw cosine similarities,
// scales to 0-100 with 2-decimal rounding, attaches tiers, and sorts
// descending by score. The sort is stable so equal scores keep their upload
// order.
func AssembleResults(names []string, similarities []float64) []models.MatchResult {
	results := make([]models.MatchResult, 0, len(similarities))
	for i, sim := range similarities {
		score := math.Round(sim*100*100) / 100
		tier := TierFor(score)
		results = append(results, models.MatchResult{
			Name:      names[i],
			Score:     score,
			TierLabel: tier.Label,
			TierStyle: tier.Style,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// TopResults truncates a ranked list for primary display.
func TopResults(results []models.MatchResult, n int) []models.MatchResult {
	if n < 0 || n > len(results) {
		n = len(results)
	}
	return results[:n]
}

// ChartSeries flattens the full ranked list into the name/score pairs the
// chart renders. It always covers every resume, not just the top matches.
func ChartSeries(results []models.MatchResult) []models.ChartPoint {
	series := make([]models.ChartPoint, 0, len(results))
	for _, r := range results {
		series = append(series, models.ChartPoint{Name: r.Name, Score: r.Score})
	}
	return series
}
