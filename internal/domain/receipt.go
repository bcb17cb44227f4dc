package domain

// LineKind classifies one line of receipt text
type LineKind string

const (
	LineItem     LineKind = "item"
	LineSubtotal LineKind = "subtotal"
	LineTax      LineKind = "tax"
	LineTotal    LineKind = "total"
	LineHeader   LineKind = "header"
	LineUnknown  LineKind = "unknown"
)

// Skip reasons reported for lines that produced no item
const (
	SkipSubtotal      = "subtotal"
	SkipTax           = "tax"
	SkipTotal         = "total"
	SkipPayment       = "payment_method"
	SkipBoilerplate   = "boilerplate"
	SkipDate          = "date"
	SkipPhone         = "phone_number"
	SkipMemberSavings = "member_savings"
	SkipCardNumber    = "card_number"
	SkipAuthorization = "authorization"
	SkipBlank         = "blank"
	SkipSeparator     = "separator"
	SkipItemNumber    = "item_number"
	SkipNoPrice       = "no_price"
	SkipInvalidPrice  = "invalid_price"
	SkipNameTooShort  = "name_too_short"
)

// ClassifiedLine is one line of receipt text after classification.
// ItemName, Price and Quantity are populated only when Kind is LineItem.
type ClassifiedLine struct {
	Text     string   `json:"text"`
	Kind     LineKind `json:"kind"`
	ItemName string   `json:"itemName,omitempty"`
	Price    float64  `json:"price,omitempty"`
	Quantity int      `json:"quantity,omitempty"`
}

// ParsedItem is a final receipt item accepted by the parser
type ParsedItem struct {
	RawName     string  `json:"rawName"`
	CleanedName string  `json:"cleanedName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// SkippedLine records a line that produced no item and why
type SkippedLine struct {
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// ReceiptParseResult is the complete outcome of parsing one receipt.
// Malformed input degrades to an all-skipped result, never an error.
type ReceiptParseResult struct {
	Items        []ParsedItem  `json:"items"`
	SkippedLines []SkippedLine `json:"skippedLines"`
}

// KnownStore is a store the household already shops at
type KnownStore struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DetectedStore is the store extracted from a receipt header.
// MatchedID is empty when the name could not be linked to a known store.
type DetectedStore struct {
	Name      string `json:"name"`
	MatchedID string `json:"matchedId,omitempty"`
}
