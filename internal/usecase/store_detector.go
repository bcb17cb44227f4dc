package usecase

import (
	"regexp"
	"strings"

	"github.com/pantrylens/backend/internal/domain"
)

// headerLineCount: only the top of the receipt is inspected for the
// store name
const headerLineCount = 15

// retailerPattern pairs a header substring with the canonical retailer
// name it implies. Checked in order, first match wins.
type retailerPattern struct {
	substring string
	canonical string
}

// commonRetailers is the fixed fallback table for receipts from stores
// the household has not recorded yet
var commonRetailers = []retailerPattern{
	{"walmart", "Walmart"},
	{"wal-mart", "Walmart"},
	{"target", "Target"},
	{"kroger", "Kroger"},
	{"costco", "Costco"},
	{"safeway", "Safeway"},
	{"publix", "Publix"},
	{"whole foods", "Whole Foods Market"},
	{"trader joe", "Trader Joe's"},
	{"aldi", "Aldi"},
	{"wegmans", "Wegmans"},
	{"h-e-b", "H-E-B"},
	{"heb ", "H-E-B"},
	{"meijer", "Meijer"},
	{"food lion", "Food Lion"},
	{"stop & shop", "Stop & Shop"},
	{"giant", "Giant"},
	{"albertsons", "Albertsons"},
	{"winco", "WinCo Foods"},
	{"sprouts", "Sprouts Farmers Market"},
	{"cvs", "CVS"},
	{"walgreens", "Walgreens"},
	{"dollar general", "Dollar General"},
	{"7-eleven", "7-Eleven"},
}

var welcomeToRegex = regexp.MustCompile(`(?i)welcome\s+to\s+([a-z0-9'&. -]+)`)

// DetectStore matches receipt header text against the household's
// known stores, then against the common retailer table, then falls
// back to a "welcome to <name>" extraction. Returns nil when nothing
// matches. Detection is order-stable: the same known-store order
// always yields the same result.
func DetectStore(text string, knownStores []domain.KnownStore) *domain.DetectedStore {
	header := strings.ToLower(headerText(text))
	if strings.TrimSpace(header) == "" {
		return nil
	}

	// Pass 1: known stores, in the order supplied
	for _, store := range knownStores {
		name := strings.ToLower(strings.TrimSpace(store.Name))
		if name == "" {
			continue
		}
		if strings.Contains(header, name) {
			return &domain.DetectedStore{Name: store.Name, MatchedID: store.ID}
		}
	}

	// Pass 2: common retailer table, cross-referenced against known
	// stores by exact case-insensitive name equality
	for _, retailer := range commonRetailers {
		if !strings.Contains(header, retailer.substring) {
			continue
		}
		detected := &domain.DetectedStore{Name: retailer.canonical}
		for _, store := range knownStores {
			if strings.EqualFold(store.Name, retailer.canonical) {
				detected.MatchedID = store.ID
				break
			}
		}
		return detected
	}

	// Pass 3: "welcome to <name>" extraction
	if m := welcomeToRegex.FindStringSubmatch(header); m != nil {
		name := strings.TrimSpace(strings.Trim(m[1], ".- "))
		if name == "" {
			return nil
		}
		detected := &domain.DetectedStore{Name: titleCase(name)}
		for _, store := range knownStores {
			if strings.EqualFold(store.Name, name) {
				detected.Name = store.Name
				detected.MatchedID = store.ID
				break
			}
		}
		return detected
	}

	return nil
}

// headerText returns the first headerLineCount lines of the receipt
func headerText(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > headerLineCount {
		lines = lines[:headerLineCount]
	}
	return strings.Join(lines, "\n")
}

// titleCase uppercases the first letter of each word; good enough for
// extracted store names
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
