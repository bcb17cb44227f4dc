package usecase

import (
	"testing"

	"github.com/pantrylens/backend/internal/domain"
)

func TestFindBestMatch(t *testing.T) {
	svc := NewMatchingService(nil, false)

	t.Run("exact match is high confidence", func(t *testing.T) {
		candidates := []domain.MatchCandidate{
			{ID: "c1", Name: "Bread", Source: domain.SourceItems},
			{ID: "c2", Name: "Whole Milk", Source: domain.SourceItems},
		}
		got := svc.FindBestMatch("whole milk", candidates)
		if got == nil {
			t.Fatal("FindBestMatch returned nil")
		}
		if got.Candidate.ID != "c2" {
			t.Errorf("Candidate.ID = %q, want c2", got.Candidate.ID)
		}
		if got.Score != 1.0 {
			t.Errorf("Score = %v, want 1.0", got.Score)
		}
		if got.Confidence != domain.ConfidenceHigh {
			t.Errorf("Confidence = %q, want %q", got.Confidence, domain.ConfidenceHigh)
		}
	})

	t.Run("partial overlap is low confidence", func(t *testing.T) {
		candidates := []domain.MatchCandidate{
			{ID: "c1", Name: "chicken thighs", Source: domain.SourceInventory},
		}
		got := svc.FindBestMatch("chicken breast", candidates)
		if got == nil {
			t.Fatal("FindBestMatch returned nil")
		}
		if got.Score <= acceptThreshold || got.Score >= highConfidenceThreshold {
			t.Errorf("Score = %v, want between %v and %v", got.Score, acceptThreshold, highConfidenceThreshold)
		}
		if got.Confidence != domain.ConfidenceLow {
			t.Errorf("Confidence = %q, want %q", got.Confidence, domain.ConfidenceLow)
		}
	})

	t.Run("nothing above threshold returns nil", func(t *testing.T) {
		candidates := []domain.MatchCandidate{
			{ID: "c1", Name: "screwdriver", Source: domain.SourceItems},
		}
		if got := svc.FindBestMatch("bananas", candidates); got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("empty candidate list returns nil", func(t *testing.T) {
		if got := svc.FindBestMatch("milk", nil); got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("tie resolves to the first supplied candidate", func(t *testing.T) {
		candidates := []domain.MatchCandidate{
			{ID: "shopping", Name: "Milk", Source: domain.SourceShoppingList},
			{ID: "catalog", Name: "Milk", Source: domain.SourceItems},
		}
		got := svc.FindBestMatch("milk", candidates)
		if got == nil {
			t.Fatal("FindBestMatch returned nil")
		}
		if got.Candidate.ID != "shopping" {
			t.Errorf("Candidate.ID = %q, want shopping (first supplied)", got.Candidate.ID)
		}
	})
}

func TestFindAllMatches(t *testing.T) {
	svc := NewMatchingService(nil, false)

	t.Run("sorted by descending score, threshold applied", func(t *testing.T) {
		candidates := []domain.MatchCandidate{
			{ID: "c1", Name: "Whole Milk", Source: domain.SourceItems},
			{ID: "c2", Name: "Milk", Source: domain.SourceItems},
			{ID: "c3", Name: "Bread", Source: domain.SourceItems},
		}
		got := svc.FindAllMatches("milk", candidates)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2 (got %+v)", len(got), got)
		}
		if got[0].Candidate.ID != "c2" {
			t.Errorf("got[0].ID = %q, want c2", got[0].Candidate.ID)
		}
		if got[1].Candidate.ID != "c1" {
			t.Errorf("got[1].ID = %q, want c1", got[1].Candidate.ID)
		}
		if got[0].Score < got[1].Score {
			t.Errorf("scores not descending: %v then %v", got[0].Score, got[1].Score)
		}
	})

	t.Run("equal scores keep supplied order", func(t *testing.T) {
		candidates := []domain.MatchCandidate{
			{ID: "a", Name: "Eggs", Source: domain.SourceShoppingList},
			{ID: "b", Name: "Eggs", Source: domain.SourceItems},
		}
		got := svc.FindAllMatches("eggs", candidates)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Candidate.ID != "a" || got[1].Candidate.ID != "b" {
			t.Errorf("order = [%s %s], want [a b]", got[0].Candidate.ID, got[1].Candidate.ID)
		}
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		got := svc.FindAllMatches("bananas", []domain.MatchCandidate{{ID: "c1", Name: "screwdriver"}})
		if got == nil {
			t.Fatal("got nil, want empty slice")
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}

func TestCandidateAssembler(t *testing.T) {
	t.Run("first stage shadows later duplicates", func(t *testing.T) {
		a := NewCandidateAssembler()
		a.Add(domain.MatchCandidate{ID: "i1", Name: "Milk", Source: domain.SourceShoppingList})
		a.Add(
			domain.MatchCandidate{ID: "i1", Name: "Milk", Source: domain.SourceItems},
			domain.MatchCandidate{ID: "i2", Name: "Eggs", Source: domain.SourceItems},
		)

		got := a.Candidates()
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Source != domain.SourceShoppingList {
			t.Errorf("got[0].Source = %q, want %q (first stage wins)", got[0].Source, domain.SourceShoppingList)
		}
		if got[1].ID != "i2" {
			t.Errorf("got[1].ID = %q, want i2", got[1].ID)
		}
	})

	t.Run("empty ids are skipped", func(t *testing.T) {
		a := NewCandidateAssembler()
		a.Add(domain.MatchCandidate{ID: "", Name: "ghost"})
		if len(a.Candidates()) != 0 {
			t.Errorf("len = %d, want 0", len(a.Candidates()))
		}
	})
}
