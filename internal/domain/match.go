package domain

// CandidateSource identifies which part of the catalog a candidate came from
type CandidateSource string

const (
	SourceShoppingList CandidateSource = "shopping_list"
	SourceInventory    CandidateSource = "inventory"
	SourceItems        CandidateSource = "items"
)

// Confidence is a coarse presentation tier derived from a match score
type Confidence string

const (
	ConfidenceHigh Confidence = "high"
	ConfidenceLow  Confidence = "low"
)

// MatchCandidate is a prospective catalog entity to match against.
// The back-reference fields are carried opaquely for the caller; the
// matcher never reads or mutates them.
type MatchCandidate struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Source         CandidateSource `json:"source"`
	ShoppingListID string          `json:"shoppingListId,omitempty"`
	InventoryID    string          `json:"inventoryId,omitempty"`
	ShelfID        string          `json:"shelfId,omitempty"`
}

// BestMatch is the result of matching one query string against a
// candidate set. Emitted only when the score exceeds the acceptance
// threshold.
type BestMatch struct {
	Candidate  MatchCandidate `json:"candidate"`
	Score      float64        `json:"score"`
	Confidence Confidence     `json:"confidence"`
}
