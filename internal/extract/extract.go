// Package extract turns raw receipt text, OCR output or a decoded
// email body, into a structured receipt. Every extractor is total:
// sparse or garbled input degrades to defaults (Unknown Store, current
// time, zero totals, no items) instead of failing.
package extract

import (
	"strings"

	"github.com/5dollarhigh/grocerytrace/internal/category"
	"github.com/5dollarhigh/grocerytrace/internal/receipt"
)

// Email bodies are stored truncated; scans keep the full OCR text.
const rawTextLimit = 1000

// truncateRunes keeps the first limit runes. Cutting at a byte offset
// could split a multi-byte rune and store invalid UTF-8.
func truncateRunes(s string, limit int) string {
	count := 0
	for i := range s {
		if count == limit {
			return s[:i]
		}
		count++
	}

	return s
}

type Parser struct {
	classifier *category.Classifier
}

func NewParser(classifier *category.Classifier) *Parser {
	return &Parser{classifier: classifier}
}

// Parse runs the store, date, item and totals extractors over one
// document. The extractors are independent of each other, Parse only
// merges their outputs.
func (p *Parser) Parse(doc receipt.RawDocument) receipt.Receipt {
	total, tax := ExtractTotals(doc.Text)

	var purchaseDate = ExtractDate(doc.Text)
	rawText := doc.Text
	if doc.Source == receipt.SourceEmail {
		purchaseDate = ParseHeaderDate(doc.HeaderDate)
		rawText = truncateRunes(rawText, rawTextLimit)
	}

	return receipt.Receipt{
		StoreName:    IdentifyStore(doc.Text, doc.Subject, doc.Sender),
		PurchaseDate: purchaseDate,
		Items:        p.extractItems(strings.Split(doc.Text, "\n"), doc.Source),
		TotalAmount:  total,
		TaxAmount:    tax,
		Source:       doc.Source,
		RawText:      rawText,
	}
}
