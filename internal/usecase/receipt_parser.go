package usecase

import (
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/pantrylens/backend/internal/domain"
)

// Item acceptance bounds. Prices outside this range reclassify the
// line as skipped, never clamp.
const (
	minItemPrice      = 0.01
	maxItemPrice      = 1000.0
	minItemNameLength = 2
)

// linePattern pairs a predicate with its classification. Patterns are
// evaluated in order, first match wins, which keeps the priority
// auditable and unit-testable per pattern.
type linePattern struct {
	re     *regexp.Regexp
	kind   domain.LineKind
	reason string
}

// skipPatterns is the ordered classification table. Anything a pattern
// claims never becomes an item.
var skipPatterns = []linePattern{
	{regexp.MustCompile(`(?i)\bsub\s*-?\s*total\b`), domain.LineSubtotal, domain.SkipSubtotal},
	{regexp.MustCompile(`(?i)\btax\b`), domain.LineTax, domain.SkipTax},
	{regexp.MustCompile(`(?i)\b(total|balance|amount\s+due)\b`), domain.LineTotal, domain.SkipTotal},
	{regexp.MustCompile(`(?i)\b(visa|mastercard|amex|american\s+express|discover|debit|credit|cash|change\s+due|tender|payment)\b`), domain.LineHeader, domain.SkipPayment},
	{regexp.MustCompile(`(?i)\b(thank\s+you|thanks\s+for|welcome|receipt|cashier|register|lane|manager|store\s*#|st#|op#|te#|tr#)\b`), domain.LineHeader, domain.SkipBoilerplate},
	{regexp.MustCompile(`\b\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b`), domain.LineHeader, domain.SkipDate},
	{regexp.MustCompile(`\(?\d{3}\)?[\s.\-]\d{3}[\s.\-]\d{4}`), domain.LineHeader, domain.SkipPhone},
	{regexp.MustCompile(`(?i)\b(member|card\s+savings|you\s+saved|savings|rewards|coupon)\b`), domain.LineHeader, domain.SkipMemberSavings},
	{regexp.MustCompile(`(?i)(x{4,}\s*\d{4}|\*{4,}\s*\d{4}|\bacct\b|\baccount\s*#)`), domain.LineHeader, domain.SkipCardNumber},
	{regexp.MustCompile(`(?i)\b(auth|approval|approved|ref\s*#|seq\s*#)`), domain.LineHeader, domain.SkipAuthorization},
	{regexp.MustCompile(`^\s*$`), domain.LineUnknown, domain.SkipBlank},
	{regexp.MustCompile(`^[\s\-=_*.]+$`), domain.LineUnknown, domain.SkipSeparator},
	{regexp.MustCompile(`^\s*\d{4,}\s*$`), domain.LineUnknown, domain.SkipItemNumber},
}

// Extraction patterns for item lines
var (
	// Trailing monetary amount with optional $ and optional one-letter
	// tax code ("3.99", "$3.99 F")
	trailingPriceRegex = regexp.MustCompile(`\$?\s*(\d+\.\d{2})\s*([A-Za-z])?\s*$`)

	// "<int> @ $<price>" anywhere, for lines like "2 @ $1.99 BANANAS"
	qtyAtPriceRegex = regexp.MustCompile(`(\d+)\s*@\s*\$?\s*(\d+\.\d{2})`)

	// Quantity prefixes, checked in order; first match is consumed
	qtyAtRegex      = regexp.MustCompile(`^\s*(\d{1,3})\s*@\s*\$?\s*(?:\d+\.\d{2})?\s*`)
	qtyTimesRegex   = regexp.MustCompile(`^\s*(\d{1,3})\s*[xX]\s+`)
	qtyLeadingRegex = regexp.MustCompile(`^\s*(\d{1,3})\s+`)

	// Trailing weight/unit suffix ("1.25 lb", "GAL")
	weightSuffixRegex = regexp.MustCompile(`(?i)\s*\d*\.?\d*\s*\b(lbs?|oz|kg|g|gal|qt|pt|ct|ea)\b\.?\s*$`)

	// Name cleanup
	leadingMarkerRegex   = regexp.MustCompile(`^[^A-Za-z0-9]+`)
	leadingItemCodeRegex = regexp.MustCompile(`^\d{4,}\s+`)
)

// ReceiptParser turns raw receipt text into parsed items and audited
// skip records
type ReceiptParser struct {
	norm  *Normalizer
	debug bool
}

// NewReceiptParser creates a receipt parser using the given normalizer
// for item name cleaning
func NewReceiptParser(norm *Normalizer, debug bool) *ReceiptParser {
	if norm == nil {
		norm = NewNormalizer(nil)
	}
	return &ReceiptParser{norm: norm, debug: debug}
}

// ParseReceipt is the sole entry point. It never fails: malformed text
// degrades to an all-skipped result. Every line that produced no item
// is reported with a reason so callers can audit the outcome.
func (p *ReceiptParser) ParseReceipt(text string) domain.ReceiptParseResult {
	result := domain.ReceiptParseResult{
		Items:        []domain.ParsedItem{},
		SkippedLines: []domain.SkippedLine{},
	}

	for _, line := range strings.Split(text, "\n") {
		classified := p.classifyLine(line)

		if classified.Kind != domain.LineItem {
			reason := skipReasonFor(line, classified.Kind)
			result.SkippedLines = append(result.SkippedLines, domain.SkippedLine{
				Text:   strings.TrimSpace(line),
				Reason: reason,
			})
			continue
		}

		item, reject := p.acceptItem(classified)
		if reject != "" {
			result.SkippedLines = append(result.SkippedLines, domain.SkippedLine{
				Text:   strings.TrimSpace(line),
				Reason: reject,
			})
			continue
		}

		if p.debug {
			log.Printf("[PARSE] %q -> name=%q price=%.2f qty=%d",
				strings.TrimSpace(line), item.RawName, item.Price, item.Quantity)
		}
		result.Items = append(result.Items, item)
	}

	return result
}

// classifyLine classifies one line exactly once via the ordered skip
// table, then attempts price and quantity extraction.
func (p *ReceiptParser) classifyLine(line string) domain.ClassifiedLine {
	for _, pattern := range skipPatterns {
		if pattern.re.MatchString(line) {
			return domain.ClassifiedLine{Text: line, Kind: pattern.kind}
		}
	}

	price, remainder, ok := extractPrice(line)
	if !ok {
		return domain.ClassifiedLine{
			Text:     line,
			Kind:     domain.LineUnknown,
			ItemName: strings.TrimSpace(line),
		}
	}

	quantity, remainder := extractQuantity(remainder)

	return domain.ClassifiedLine{
		Text:     line,
		Kind:     domain.LineItem,
		ItemName: cleanItemName(remainder),
		Price:    price,
		Quantity: quantity,
	}
}

// acceptItem applies the acceptance filter and assembles the final
// ParsedItem. Returns a non-empty reject reason when the line must be
// skipped instead.
func (p *ReceiptParser) acceptItem(line domain.ClassifiedLine) (domain.ParsedItem, string) {
	if line.Price < minItemPrice || line.Price > maxItemPrice {
		return domain.ParsedItem{}, domain.SkipInvalidPrice
	}

	rawName := stripUnitSuffix(line.ItemName)
	if len(rawName) < minItemNameLength {
		return domain.ParsedItem{}, domain.SkipNameTooShort
	}

	// The cleaned name keeps the unit suffix so "MLK WHL GAL" expands
	// to "milk whole gallon" for display and matching
	cleaned := multipleSpacesRegex.ReplaceAllString(
		p.norm.ExpandAbbreviations(strings.ToLower(line.ItemName)), " ")

	return domain.ParsedItem{
		RawName:     rawName,
		CleanedName: strings.TrimSpace(cleaned),
		Price:       line.Price,
		Quantity:    line.Quantity,
	}, ""
}

// extractPrice pulls the unit price out of a line and returns the rest.
// Trailing amounts win; "<qty> @ $<price>" anywhere is the fallback.
func extractPrice(line string) (float64, string, bool) {
	if loc := trailingPriceRegex.FindStringSubmatchIndex(line); loc != nil {
		price, err := strconv.ParseFloat(line[loc[2]:loc[3]], 64)
		if err == nil {
			return price, line[:loc[0]], true
		}
	}

	if m := qtyAtPriceRegex.FindStringSubmatchIndex(line); m != nil {
		price, err := strconv.ParseFloat(line[m[4]:m[5]], 64)
		if err == nil {
			rest := line[:m[0]] + " " + line[m[1]:]
			// Keep the quantity in front so extractQuantity can claim it
			qty := line[m[2]:m[3]]
			return price, qty + " @ " + rest, true
		}
	}

	return 0, "", false
}

// extractQuantity checks the quantity prefixes in order, consumes the
// first that matches, and defaults to 1
func extractQuantity(s string) (int, string) {
	for _, re := range []*regexp.Regexp{qtyAtRegex, qtyTimesRegex, qtyLeadingRegex} {
		m := re.FindStringSubmatchIndex(s)
		if m == nil {
			continue
		}
		qty, err := strconv.Atoi(s[m[2]:m[3]])
		if err != nil || qty < 1 {
			break
		}
		return qty, s[m[1]:]
	}
	return 1, s
}

// cleanItemName trims leading markers and numeric item codes and
// collapses whitespace
func cleanItemName(name string) string {
	name = strings.TrimSpace(name)
	name = leadingMarkerRegex.ReplaceAllString(name, "")
	name = leadingItemCodeRegex.ReplaceAllString(name, "")
	name = multipleSpacesRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// stripUnitSuffix drops a trailing weight or unit marker ("1.25 lb",
// "GAL") from a raw item name
func stripUnitSuffix(name string) string {
	return strings.TrimSpace(weightSuffixRegex.ReplaceAllString(name, ""))
}

// skipReasonFor maps a non-item classification to its reported reason
func skipReasonFor(line string, kind domain.LineKind) string {
	for _, pattern := range skipPatterns {
		if pattern.re.MatchString(line) {
			return pattern.reason
		}
	}
	if kind == domain.LineUnknown {
		return domain.SkipNoPrice
	}
	return string(kind)
}
