package extract

import (
	"math"
	"strings"
	"testing"

	"github.com/5dollarhigh/grocerytrace/internal/category"
	"github.com/5dollarhigh/grocerytrace/internal/receipt"
)

const priceTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < priceTolerance
}

func newTestParser() *Parser {
	return NewParser(category.NewClassifier(category.DefaultRules))
}

func TestExtractItemsScan(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name  string
		lines []string
		want  []receipt.Item
	}{
		{
			name:  "trailing price line",
			lines: []string{"BANANAS  1.99"},
			want: []receipt.Item{
				{Name: "Bananas", Quantity: 1.0, UnitPrice: 1.99, TotalPrice: 1.99, Category: "Produce"},
			},
		},
		{
			name:  "explicit quantity line",
			lines: []string{"MILK 2 @ 3.99  7.98"},
			want: []receipt.Item{
				{Name: "Milk", Quantity: 2.0, UnitPrice: 3.99, TotalPrice: 7.98, Category: "Dairy & Eggs"},
			},
		},
		{
			name:  "noise lines are dropped",
			lines: []string{"TOTAL  9.97", "VISA ****1234", "THANK YOU", "--------"},
			want:  []receipt.Item{},
		},
		{
			name:  "very short lines are dropped",
			lines: []string{"A 1", "HI"},
			want:  []receipt.Item{},
		},
		{
			name:  "short name after stripping is rejected",
			lines: []string{"AB  4.99"},
			want:  []receipt.Item{},
		},
		{
			name:  "line without item shape produces nothing",
			lines: []string{"WELCOME TO THE SHOP"},
			want:  []receipt.Item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.extractItems(tt.lines, receipt.SourceScan)
			assertItems(t, got, tt.want)
		})
	}
}

func TestExtractItemsEmail(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name  string
		lines []string
		want  []receipt.Item
	}{
		{
			name:  "quantity with unit price and line total",
			lines: []string{"2 x Organic Apples @ $2.99 = $5.98"},
			want: []receipt.Item{
				{Name: "Organic Apples", Quantity: 2.0, UnitPrice: 2.99, TotalPrice: 5.98, Category: "Produce"},
			},
		},
		{
			name:  "quantity without unit price derives it from the total",
			lines: []string{"3 x Greek Yogurt $8.97"},
			want: []receipt.Item{
				{Name: "Greek Yogurt", Quantity: 3.0, UnitPrice: 2.99, TotalPrice: 8.97, Category: "Dairy & Eggs"},
			},
		},
		{
			name:  "column separated trailing price",
			lines: []string{"Sourdough Bread    $4.50"},
			want: []receipt.Item{
				{Name: "Sourdough Bread", Quantity: 1.0, UnitPrice: 4.50, TotalPrice: 4.50, Category: "Bakery & Bread"},
			},
		},
		{
			name:  "price at the sanity ceiling is rejected",
			lines: []string{"Gift Card Balance Load    $500.00"},
			want:  []receipt.Item{},
		},
		{
			name:  "email boilerplate is dropped",
			lines: []string{"Order Summary", "Shipping: $0.00", "Follow us on social media", "Questions? Contact customer service"},
			want:  []receipt.Item{},
		},
		{
			name:  "single space before price does not count as a column",
			lines: []string{"Mystery thing $3.00"},
			want:  []receipt.Item{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.extractItems(tt.lines, receipt.SourceEmail)
			assertItems(t, got, tt.want)
		})
	}
}

// End to end scenario: items come from per-line matching
// while the document total is found independently over the full text.
func TestScanReceiptScenario(t *testing.T) {
	p := newTestParser()
	lines := []string{"BANANAS  1.99", "MILK 2 @ 3.99  7.98", "TOTAL  9.97"}

	items := p.extractItems(lines, receipt.SourceScan)
	want := []receipt.Item{
		{Name: "Bananas", Quantity: 1.0, UnitPrice: 1.99, TotalPrice: 1.99, Category: "Produce"},
		{Name: "Milk", Quantity: 2.0, UnitPrice: 3.99, TotalPrice: 7.98, Category: "Dairy & Eggs"},
	}
	assertItems(t, items, want)

	total, tax := ExtractTotals(strings.Join(lines, "\n"))
	if !almostEqual(total, 9.97) {
		t.Errorf("total = %v, want 9.97", total)
	}
	if tax != 0.0 {
		t.Errorf("tax = %v, want 0.0", tax)
	}
}

func TestQuantityItemsSatisfyPriceInvariant(t *testing.T) {
	p := newTestParser()

	lines := []string{
		"MILK 2 @ 3.99  7.98",
		"EGGS 3 @ 2.50",
		"APPLES 12 @ 0.33",
	}

	items := p.extractItems(lines, receipt.SourceScan)
	if len(items) != len(lines) {
		t.Fatalf("expected %d items, got %d", len(lines), len(items))
	}

	for _, item := range items {
		if !almostEqual(item.TotalPrice, item.Quantity*item.UnitPrice) {
			t.Errorf("item %q: total %v != quantity %v * unit %v", item.Name, item.TotalPrice, item.Quantity, item.UnitPrice)
		}
	}
}

func assertItems(t *testing.T, got, want []receipt.Item) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(got), len(want), got)
	}

	for i, w := range want {
		g := got[i]
		if g.Name != w.Name {
			t.Errorf("item %d name = %q, want %q", i, g.Name, w.Name)
		}
		if !almostEqual(g.Quantity, w.Quantity) {
			t.Errorf("item %d quantity = %v, want %v", i, g.Quantity, w.Quantity)
		}
		if !almostEqual(g.UnitPrice, w.UnitPrice) {
			t.Errorf("item %d unit price = %v, want %v", i, g.UnitPrice, w.UnitPrice)
		}
		if !almostEqual(g.TotalPrice, w.TotalPrice) {
			t.Errorf("item %d total price = %v, want %v", i, g.TotalPrice, w.TotalPrice)
		}
		if g.Category != w.Category {
			t.Errorf("item %d category = %q, want %q", i, g.Category, w.Category)
		}
	}
}
