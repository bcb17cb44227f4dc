package usecase

import (
	"log"
	"sort"

	"github.com/pantrylens/backend/internal/domain"
)

// Acceptance and confidence thresholds, calibrated against the blended
// score formula in scorer.go
const (
	acceptThreshold         = 0.3
	highConfidenceThreshold = 0.6
)

// MatchingService matches normalized query strings against candidate
// catalog entities
type MatchingService struct {
	scorer *Scorer
	debug  bool
}

// NewMatchingService creates a matching service around the given scorer
func NewMatchingService(scorer *Scorer, debug bool) *MatchingService {
	if scorer == nil {
		scorer = NewScorer(nil)
	}
	return &MatchingService{scorer: scorer, debug: debug}
}

// FindBestMatch scores every candidate and returns the highest scorer,
// or nil when no candidate exceeds the acceptance threshold. Equal
// maximum scores resolve to the candidate supplied first, so callers
// control tie-break by candidate ordering.
func (s *MatchingService) FindBestMatch(query string, candidates []domain.MatchCandidate) *domain.BestMatch {
	var best *domain.BestMatch
	bestScore := 0.0

	for _, candidate := range candidates {
		score := s.scorer.BlendedScore(query, candidate.Name)

		if s.debug {
			log.Printf("[MATCH] query=%q candidate=%q (%s) score=%.3f",
				query, candidate.Name, candidate.Source, score)
		}

		if score > bestScore {
			bestScore = score
			c := candidate
			best = &domain.BestMatch{
				Candidate:  c,
				Score:      score,
				Confidence: confidenceFor(score),
			}
		}
	}

	if best == nil || best.Score <= acceptThreshold {
		return nil
	}
	return best
}

// FindAllMatches returns every candidate scoring above the acceptance
// threshold, sorted by descending score. The sort is stable: equal
// scores keep their supplied relative order.
func (s *MatchingService) FindAllMatches(query string, candidates []domain.MatchCandidate) []domain.BestMatch {
	matches := []domain.BestMatch{}

	for _, candidate := range candidates {
		score := s.scorer.BlendedScore(query, candidate.Name)
		if score <= acceptThreshold {
			continue
		}
		matches = append(matches, domain.BestMatch{
			Candidate:  candidate,
			Score:      score,
			Confidence: confidenceFor(score),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// confidenceFor buckets a score into its presentation tier
func confidenceFor(score float64) domain.Confidence {
	if score >= highConfidenceThreshold {
		return domain.ConfidenceHigh
	}
	return domain.ConfidenceLow
}

// CandidateAssembler builds a prioritized candidate list with
// first-wins de-duplication by id. Downstream tie-break-by-priority is
// a consequence of this construction: stages added earlier shadow
// later ones for the same entity.
type CandidateAssembler struct {
	seen       map[string]bool
	candidates []domain.MatchCandidate
}

// NewCandidateAssembler creates an empty assembler
func NewCandidateAssembler() *CandidateAssembler {
	return &CandidateAssembler{seen: make(map[string]bool)}
}

// Add appends candidates in order, skipping any id already present
// from an earlier stage
func (a *CandidateAssembler) Add(candidates ...domain.MatchCandidate) {
	for _, candidate := range candidates {
		if candidate.ID == "" || a.seen[candidate.ID] {
			continue
		}
		a.seen[candidate.ID] = true
		a.candidates = append(a.candidates, candidate)
	}
}

// Candidates returns the assembled list in insertion order
func (a *CandidateAssembler) Candidates() []domain.MatchCandidate {
	return a.candidates
}
