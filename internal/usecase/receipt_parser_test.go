package usecase

import (
	"strings"
	"testing"

	"github.com/pantrylens/backend/internal/domain"
)

func TestParseReceiptItemLines(t *testing.T) {
	p := NewReceiptParser(nil, false)

	t.Run("quantity at price form", func(t *testing.T) {
		result := p.ParseReceipt("2 @ $1.99 BANANAS")
		if len(result.Items) != 1 {
			t.Fatalf("Items = %d, want 1 (skipped: %v)", len(result.Items), result.SkippedLines)
		}
		item := result.Items[0]
		if item.CleanedName != "bananas" {
			t.Errorf("CleanedName = %q, want %q", item.CleanedName, "bananas")
		}
		if item.Price != 1.99 {
			t.Errorf("Price = %v, want 1.99", item.Price)
		}
		if item.Quantity != 2 {
			t.Errorf("Quantity = %v, want 2", item.Quantity)
		}
	})

	t.Run("abbreviated name with unit suffix", func(t *testing.T) {
		result := p.ParseReceipt("MLK WHL GAL 3.99")
		if len(result.Items) != 1 {
			t.Fatalf("Items = %d, want 1 (skipped: %v)", len(result.Items), result.SkippedLines)
		}
		item := result.Items[0]
		if item.RawName != "MLK WHL" {
			t.Errorf("RawName = %q, want %q", item.RawName, "MLK WHL")
		}
		if item.CleanedName != "milk whole gallon" {
			t.Errorf("CleanedName = %q, want %q", item.CleanedName, "milk whole gallon")
		}
		if item.Price != 3.99 {
			t.Errorf("Price = %v, want 3.99", item.Price)
		}
		if item.Quantity != 1 {
			t.Errorf("Quantity = %v, want 1 (default)", item.Quantity)
		}
	})

	t.Run("trailing tax code letter", func(t *testing.T) {
		result := p.ParseReceipt("BREAD 2.49 F")
		if len(result.Items) != 1 {
			t.Fatalf("Items = %d, want 1", len(result.Items))
		}
		if result.Items[0].Price != 2.49 {
			t.Errorf("Price = %v, want 2.49", result.Items[0].Price)
		}
		if result.Items[0].RawName != "BREAD" {
			t.Errorf("RawName = %q, want BREAD", result.Items[0].RawName)
		}
	})

	t.Run("leading quantity", func(t *testing.T) {
		result := p.ParseReceipt("3 AVOCADOS 4.50")
		if len(result.Items) != 1 {
			t.Fatalf("Items = %d, want 1", len(result.Items))
		}
		if result.Items[0].Quantity != 3 {
			t.Errorf("Quantity = %v, want 3", result.Items[0].Quantity)
		}
		if result.Items[0].RawName != "AVOCADOS" {
			t.Errorf("RawName = %q, want AVOCADOS", result.Items[0].RawName)
		}
	})

	t.Run("weight suffix stripped from raw name", func(t *testing.T) {
		result := p.ParseReceipt("GROUND BEEF 1.25 LB 6.99")
		if len(result.Items) != 1 {
			t.Fatalf("Items = %d, want 1", len(result.Items))
		}
		if result.Items[0].RawName != "GROUND BEEF" {
			t.Errorf("RawName = %q, want GROUND BEEF", result.Items[0].RawName)
		}
	})

	t.Run("leading item code stripped", func(t *testing.T) {
		result := p.ParseReceipt("0012345 ORANGE JUICE 3.29")
		if len(result.Items) != 1 {
			t.Fatalf("Items = %d, want 1", len(result.Items))
		}
		if result.Items[0].RawName != "ORANGE JUICE" {
			t.Errorf("RawName = %q, want ORANGE JUICE", result.Items[0].RawName)
		}
	})
}

func TestParseReceiptSkippedLines(t *testing.T) {
	p := NewReceiptParser(nil, false)

	testCases := []struct {
		name       string
		line       string
		wantReason string
	}{
		{"subtotal", "SUBTOTAL 45.67", domain.SkipSubtotal},
		{"tax", "TAX 2.34", domain.SkipTax},
		{"total", "TOTAL 48.01", domain.SkipTotal},
		{"payment method", "VISA CREDIT 48.01", domain.SkipPayment},
		{"boilerplate", "THANK YOU FOR SHOPPING", domain.SkipBoilerplate},
		{"date", "01/15/2026 10:23 AM", domain.SkipDate},
		{"phone number", "(555) 123-4567", domain.SkipPhone},
		{"member savings", "MEMBER SAVINGS 3.50", domain.SkipMemberSavings},
		{"card number", "XXXXXXXX XXXX 1234", domain.SkipCardNumber},
		{"authorization", "AUTH CODE 009281", domain.SkipAuthorization},
		{"blank", "", domain.SkipBlank},
		{"separator", "--------------------", domain.SkipSeparator},
		{"item number only", "400012345", domain.SkipItemNumber},
		{"no price", "SOME RANDOM TEXT", domain.SkipNoPrice},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := p.ParseReceipt(tc.line)
			if len(result.Items) != 0 {
				t.Fatalf("Items = %d, want 0", len(result.Items))
			}
			if len(result.SkippedLines) != 1 {
				t.Fatalf("SkippedLines = %d, want 1", len(result.SkippedLines))
			}
			if result.SkippedLines[0].Reason != tc.wantReason {
				t.Errorf("Reason = %q, want %q", result.SkippedLines[0].Reason, tc.wantReason)
			}
		})
	}
}

func TestParseReceiptAcceptanceFilter(t *testing.T) {
	p := NewReceiptParser(nil, false)

	t.Run("out of range price is rejected with reason", func(t *testing.T) {
		result := p.ParseReceipt("CAVIAR 2000.00")
		if len(result.Items) != 0 {
			t.Fatalf("Items = %d, want 0", len(result.Items))
		}
		if len(result.SkippedLines) != 1 || result.SkippedLines[0].Reason != domain.SkipInvalidPrice {
			t.Errorf("SkippedLines = %v, want one %q", result.SkippedLines, domain.SkipInvalidPrice)
		}
	})

	t.Run("zero price is rejected", func(t *testing.T) {
		result := p.ParseReceipt("FREEBIE 0.00")
		if len(result.Items) != 0 {
			t.Fatalf("Items = %d, want 0", len(result.Items))
		}
		if result.SkippedLines[0].Reason != domain.SkipInvalidPrice {
			t.Errorf("Reason = %q, want %q", result.SkippedLines[0].Reason, domain.SkipInvalidPrice)
		}
	})

	t.Run("too-short name is rejected with reason", func(t *testing.T) {
		result := p.ParseReceipt("X 1.99")
		if len(result.Items) != 0 {
			t.Fatalf("Items = %d, want 0", len(result.Items))
		}
		if result.SkippedLines[0].Reason != domain.SkipNameTooShort {
			t.Errorf("Reason = %q, want %q", result.SkippedLines[0].Reason, domain.SkipNameTooShort)
		}
	})
}

func TestParseReceiptFullText(t *testing.T) {
	p := NewReceiptParser(nil, false)

	receipt := strings.Join([]string{
		"WELCOME TO TARGET",
		"123 MAIN ST",
		"01/15/2026 10:23 AM",
		"",
		"BANANAS 1.99",
		"MLK WHL GAL 3.49",
		"2 @ $0.99 YOGURT CUPS",
		"--------------------",
		"SUBTOTAL 7.46",
		"TAX 0.52",
		"TOTAL 7.98",
		"VISA ****1234",
		"THANK YOU",
	}, "\n")

	result := p.ParseReceipt(receipt)

	if len(result.Items) != 3 {
		t.Fatalf("Items = %d, want 3 (items: %+v, skipped: %+v)",
			len(result.Items), result.Items, result.SkippedLines)
	}

	// Every non-item line must be reported with a reason
	if len(result.Items)+len(result.SkippedLines) != 13 {
		t.Errorf("items + skipped = %d, want 13 (every line accounted for)",
			len(result.Items)+len(result.SkippedLines))
	}
	for _, skipped := range result.SkippedLines {
		if skipped.Reason == "" {
			t.Errorf("skipped line %q has empty reason", skipped.Text)
		}
	}

	if result.Items[2].Quantity != 2 || result.Items[2].CleanedName != "yogurt cups" {
		t.Errorf("third item = %+v, want quantity 2 and name %q", result.Items[2], "yogurt cups")
	}
}

func TestParseReceiptNeverFails(t *testing.T) {
	p := NewReceiptParser(nil, false)

	t.Run("empty text yields empty items", func(t *testing.T) {
		result := p.ParseReceipt("")
		if len(result.Items) != 0 {
			t.Errorf("Items = %d, want 0", len(result.Items))
		}
	})

	t.Run("garbage degrades to all-skipped", func(t *testing.T) {
		result := p.ParseReceipt("\x00\x01\x02\nqwerty\n!!!")
		if len(result.Items) != 0 {
			t.Errorf("Items = %d, want 0", len(result.Items))
		}
		if len(result.SkippedLines) != 3 {
			t.Errorf("SkippedLines = %d, want 3", len(result.SkippedLines))
		}
	})
}
