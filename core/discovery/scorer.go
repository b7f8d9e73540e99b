// ABOUTME: Relevance scoring for filtered search results against a company profile
// ABOUTME: Weighted-linear heuristic, deliberately explainable to a reviewing admin

package discovery

import (
	"sort"
	"strings"

	"opportunity-discovery-api/core/domain"
)

// Scoring weights. The model is a simple weighted sum so an admin can
// sanity-check why a result ranked where it did before approving it.
const (
	baseScore         = 100
	govDomainBonus    = 20
	industryBonus     = 15
	naicsBonus        = 10
	rankPenaltyPerHop = 2
)

// ScoreResults assigns a relevance score to each result and returns them
// sorted by score, highest first. The sort is stable: ties keep the original
// relative order.
func ScoreResults(results []domain.SearchResult, profile domain.CompanyProfile) []domain.ScoredResult {
	scored := make([]domain.ScoredResult, 0, len(results))
	for _, result := range results {
		scored = append(scored, domain.ScoredResult{
			SearchResult: result,
			Score:        scoreResult(result, profile),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// scoreResult computes the score for a single result. Missing profile
// fields simply skip the corresponding bonus.
func scoreResult(result domain.SearchResult, profile domain.CompanyProfile) int {
	score := baseScore

	if strings.Contains(strings.ToLower(result.Domain), ".gov") {
		score += govDomainBonus
	}

	text := strings.ToLower(result.Title + " " + result.Description)

	if profile.Industry != "" && strings.Contains(text, strings.ToLower(profile.Industry)) {
		score += industryBonus
	}

	// First matching NAICS code wins; the bonus is not cumulative.
	for _, code := range profile.NAICSCodes {
		if code != "" && strings.Contains(text, code) {
			score += naicsBonus
			break
		}
	}

	// Later provider ranks decay linearly; rank 1 incurs no penalty.
	// Rank references the original provider ordering, never the position
	// after filtering.
	if result.Rank > 1 {
		score -= rankPenaltyPerHop * (result.Rank - 1)
	}

	if score < 0 {
		score = 0
	}

	return score
}
