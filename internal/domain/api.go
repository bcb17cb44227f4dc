package domain

// ReceiptScanRequest is the body of a receipt scan request
type ReceiptScanRequest struct {
	HouseholdID string `json:"householdId" binding:"required"`
	Text        string `json:"text" binding:"required"`
}

// MatchedReceiptItem is a parsed receipt item annotated with an
// optional catalog match
type MatchedReceiptItem struct {
	ParsedItem
	Match *BestMatch `json:"match,omitempty"`
}

// ReceiptScanResponse is the full result of scanning one receipt
type ReceiptScanResponse struct {
	Items        []MatchedReceiptItem `json:"items"`
	Store        *DetectedStore       `json:"store,omitempty"`
	SkippedLines []SkippedLine        `json:"skippedLines"`
}

// RecipeSuggestionsRequest is the body of a recipe suggestion request
type RecipeSuggestionsRequest struct {
	HouseholdID string   `json:"householdId" binding:"required"`
	Ingredients []string `json:"ingredients" binding:"required"`
}

// RecipeSuggestionsResponse holds recipes ranked by match percentage
type RecipeSuggestionsResponse struct {
	Recipes []RecipeMatch `json:"recipes"`
}

// RecipeImportRequest is the body of a free-text recipe import request
type RecipeImportRequest struct {
	Text string `json:"text" binding:"required"`
}
