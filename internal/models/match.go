package models

// MatchResult is one scored resume, immutable once assembled.
type MatchResult struct {
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	TierLabel string  `json:"tier_label"`
	TierStyle string  `json:"tier_style"`
}

// ChartPoint is one entry of the full-length chart series. The series keeps
// every resume even when the result list is truncated to the top matches.
type ChartPoint struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type MatchResponse struct {
	Message   string        `json:"message"`
	Results   []MatchResult `json:"results"`
	ChartData []ChartPoint  `json:"chart_data"`
}
