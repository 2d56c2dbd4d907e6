package service

import "servicematch/internal/model"

const (
	baseCompatibilityScore = 50
	locationBonus          = 25
	maxCompatibilityScore  = 100
)

// MatchScorer computes seeker/provider compatibility. The heuristic is
// deterministic and uses no external state; service history and reviews are
// candidate future signals.
type MatchScorer struct{}

// NewMatchScorer creates a new match scorer.
func NewMatchScorer() *MatchScorer {
	return &MatchScorer{}
}

// Score returns a compatibility score in [0, 100]: a base of 50 plus a bonus
// when both parties share a non-empty, exactly-equal location.
func (s *MatchScorer) Score(seeker, provider *model.User) int {
	score := baseCompatibilityScore

	if seeker.Location != "" && provider.Location != "" && seeker.Location == provider.Location {
		score += locationBonus
	}

	if score > maxCompatibilityScore {
		score = maxCompatibilityScore
	}
	return score
}
