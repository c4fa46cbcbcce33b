package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/5dollarhigh/grocerytrace/internal/receipt"
)

const (
	minLineLen  = 5
	minNameLen  = 3
	maxItemCost = 500
)

// Boilerplate terms that mark a line as noise. Ordered slices, not
// maps: the lists are fixed configuration and scanned in order.
var scanSkipTerms = []string{
	"total", "subtotal", "tax", "balance",
	"payment", "change", "visa", "mastercard",
	"cash", "credit", "debit", "***", "---",
	"thank you", "receipt", "store", "date",
}

var emailSkipTerms = []string{
	"order summary", "subtotal", "total",
	"tax", "shipping", "delivery",
	"payment", "thank you", "questions",
	"customer service", "***", "---",
	"visit us", "follow us",
}

var (
	// "2 @ 3.99" anywhere in a scanned line.
	scanQtyRe = regexp.MustCompile(`(\d+)\s*@\s*\$?(\d+\.\d{2})`)
	// Line ending in a currency-shaped number.
	scanPriceRe = regexp.MustCompile(`\$?\s*(\d+\.\d{2})\s*$`)
	// "2 x Apples @ $2.99 = $5.98" or "2 x Apples $5.98".
	emailQtyRe = regexp.MustCompile(`(?i)(\d+)\s*x\s*(.+?)\s*(?:@\s*\$?(\d+\.\d{2}))?\s*=?\s*\$?\s*(\d+\.\d{2})`)
	// Name, column whitespace, trailing amount.
	emailPriceRe = regexp.MustCompile(`(.+?)\s{2,}\$?\s*(\d+\.\d{2})\s*$`)
)

func isNoise(line string, skipTerms []string) bool {
	lower := strings.ToLower(line)
	for _, term := range skipTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}

	return false
}

// extractItems walks the document line by line and emits at most one
// item per line. Lines that match neither pattern are dropped silently.
func (p *Parser) extractItems(lines []string, source receipt.Source) []receipt.Item {
	items := []receipt.Item{}

	skipTerms := scanSkipTerms
	if source == receipt.SourceEmail {
		skipTerms = emailSkipTerms
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < minLineLen || isNoise(line, skipTerms) {
			continue
		}

		var item receipt.Item
		var ok bool
		if source == receipt.SourceEmail {
			item, ok = p.emailItem(line)
		} else {
			item, ok = p.scanItem(line)
		}

		if ok {
			items = append(items, item)
		}
	}

	return items
}

func (p *Parser) scanItem(line string) (receipt.Item, bool) {
	if m := scanQtyRe.FindStringSubmatch(line); m != nil {
		quantity, _ := strconv.ParseFloat(m[1], 64)
		unitPrice, _ := strconv.ParseFloat(m[2], 64)
		if quantity == 0 {
			return receipt.Item{}, false
		}

		// Strip the quantity tokens and any printed line total so
		// only the name fragment remains.
		name := scanQtyRe.ReplaceAllString(line, "")
		name = scanPriceRe.ReplaceAllString(name, "")
		name = strings.TrimSpace(name)

		if len(name) < minNameLen {
			return receipt.Item{}, false
		}

		return p.newItem(name, quantity, unitPrice, quantity*unitPrice), true
	}

	if m := scanPriceRe.FindStringSubmatch(line); m != nil {
		price, _ := strconv.ParseFloat(m[1], 64)
		name := strings.TrimSpace(scanPriceRe.ReplaceAllString(line, ""))

		if len(name) < minNameLen || price <= 0 {
			return receipt.Item{}, false
		}

		return p.newItem(name, 1.0, price, price), true
	}

	return receipt.Item{}, false
}

func (p *Parser) emailItem(line string) (receipt.Item, bool) {
	if m := emailQtyRe.FindStringSubmatch(line); m != nil {
		quantity, _ := strconv.ParseFloat(m[1], 64)
		if quantity == 0 {
			return receipt.Item{}, false
		}
		name := strings.TrimSpace(m[2])
		totalPrice, _ := strconv.ParseFloat(m[4], 64)

		var unitPrice float64
		if m[3] != "" {
			unitPrice, _ = strconv.ParseFloat(m[3], 64)
		} else {
			unitPrice = totalPrice / quantity
		}

		return p.newItem(name, quantity, unitPrice, totalPrice), true
	}

	if m := emailPriceRe.FindStringSubmatch(line); m != nil {
		name := strings.TrimSpace(m[1])
		price, _ := strconv.ParseFloat(m[2], 64)

		// The cost ceiling rejects order totals mis-captured as items.
		if len(name) < minNameLen || price <= 0 || price >= maxItemCost {
			return receipt.Item{}, false
		}

		return p.newItem(name, 1.0, price, price), true
	}

	return receipt.Item{}, false
}

func (p *Parser) newItem(rawName string, quantity, unitPrice, totalPrice float64) receipt.Item {
	name := NormalizeName(rawName)

	return receipt.Item{
		Name:       name,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: totalPrice,
		Category:   p.classifier.Classify(name),
	}
}
