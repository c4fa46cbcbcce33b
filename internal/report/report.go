// Package report derives spending analytics from stored receipts.
// All aggregation happens in SQL; the helpers here only shape results.
package report

import (
	"database/sql"
	"math"
	"sort"
	"strconv"
	"time"

	"golang.org/x/exp/maps"

	"github.com/5dollarhigh/grocerytrace/internal/category"
)

const percentageOfTotal = 100

type MonthlyTrend struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	MonthName      string  `json:"month_name"`
	Label          string  `json:"label"`
	TotalSpent     float64 `json:"total_spent"`
	ReceiptCount   int     `json:"receipt_count"`
	AverageReceipt float64 `json:"average_receipt"`
}

type MonthlyTrends struct {
	Trends              []MonthlyTrend `json:"trends"`
	TotalPeriodSpend    float64        `json:"total_period_spend"`
	AverageMonthlySpend float64        `json:"average_monthly_spend"`
}

const daysPerMonth = 30

// GetMonthlyTrends aggregates spending per calendar month over the last
// N months.
func GetMonthlyTrends(db *sql.DB, months int) (MonthlyTrends, error) {
	start := time.Now().AddDate(0, 0, -months*daysPerMonth)

	rows, err := db.Query(`
SELECT CAST(strftime('%Y', purchase_date, 'unixepoch') AS INTEGER) AS year,
       CAST(strftime('%m', purchase_date, 'unixepoch') AS INTEGER) AS month,
       SUM(total_amount), COUNT(id), AVG(total_amount)
FROM receipts
WHERE purchase_date >= ?
GROUP BY year, month
ORDER BY year, month`, start.Unix())
	if err != nil {
		return MonthlyTrends{}, err
	}
	defer rows.Close()

	result := MonthlyTrends{Trends: []MonthlyTrend{}}

	for rows.Next() {
		var t MonthlyTrend
		if err := rows.Scan(&t.Year, &t.Month, &t.TotalSpent, &t.ReceiptCount, &t.AverageReceipt); err != nil {
			return MonthlyTrends{}, err
		}

		monthName := time.Month(t.Month).String()
		t.MonthName = monthName
		t.Label = monthName[:3] + " " + strconv.Itoa(t.Year)
		t.TotalSpent = round2(t.TotalSpent)
		t.AverageReceipt = round2(t.AverageReceipt)

		result.Trends = append(result.Trends, t)
		result.TotalPeriodSpend += t.TotalSpent
	}

	if err := rows.Err(); err != nil {
		return MonthlyTrends{}, err
	}

	result.TotalPeriodSpend = round2(result.TotalPeriodSpend)
	if len(result.Trends) > 0 {
		result.AverageMonthlySpend = round2(result.TotalPeriodSpend / float64(len(result.Trends)))
	}

	return result, nil
}

type CategorySpend struct {
	Category   string  `json:"category"`
	TotalSpent float64 `json:"total_spent"`
	Percentage float64 `json:"percentage"`
	ItemCount  int     `json:"item_count"`
	Color      string  `json:"color"`
}

type CategoryBreakdown struct {
	Categories []CategorySpend `json:"categories"`
	TotalSpend float64         `json:"total_spend"`
}

// GetCategoryBreakdown sums item spend per category, optionally bounded
// by a purchase-date range. Zero time values mean unbounded.
func GetCategoryBreakdown(db *sql.DB, classifier *category.Classifier, start, end time.Time) (CategoryBreakdown, error) {
	query := `
SELECT i.category, SUM(i.total_price), COUNT(i.id)
FROM items AS i JOIN receipts AS r ON r.id = i.receipt_id`
	args := []interface{}{}

	switch {
	case !start.IsZero() && !end.IsZero():
		query += " WHERE r.purchase_date >= ? AND r.purchase_date <= ?"
		args = append(args, start.Unix(), end.Unix())
	case !start.IsZero():
		query += " WHERE r.purchase_date >= ?"
		args = append(args, start.Unix())
	case !end.IsZero():
		query += " WHERE r.purchase_date <= ?"
		args = append(args, end.Unix())
	}

	query += " GROUP BY i.category"

	rows, err := db.Query(query, args...)
	if err != nil {
		return CategoryBreakdown{}, err
	}
	defer rows.Close()

	totals := map[string]*CategorySpend{}

	for rows.Next() {
		var c CategorySpend
		if err := rows.Scan(&c.Category, &c.TotalSpent, &c.ItemCount); err != nil {
			return CategoryBreakdown{}, err
		}

		c.Color = classifier.Color(c.Category)
		totals[c.Category] = &c
	}

	if err := rows.Err(); err != nil {
		return CategoryBreakdown{}, err
	}

	breakdown := CategoryBreakdown{Categories: []CategorySpend{}}
	for _, c := range maps.Values(totals) {
		breakdown.TotalSpend += c.TotalSpent
	}

	for _, c := range maps.Values(totals) {
		if breakdown.TotalSpend > 0 {
			c.Percentage = round2(c.TotalSpent / breakdown.TotalSpend * percentageOfTotal)
		}
		c.TotalSpent = round2(c.TotalSpent)
		breakdown.Categories = append(breakdown.Categories, *c)
	}

	sort.Slice(breakdown.Categories, func(i, j int) bool {
		return breakdown.Categories[i].TotalSpent > breakdown.Categories[j].TotalSpent
	})

	breakdown.TotalSpend = round2(breakdown.TotalSpend)

	return breakdown, nil
}

type TopItem struct {
	Name          string  `json:"name"`
	TotalSpent    float64 `json:"total_spent"`
	PurchaseCount int     `json:"purchase_count"`
	AveragePrice  float64 `json:"average_price"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	Category      string  `json:"category"`
}

// GetTopItems lists the most expensive items by accumulated spend.
func GetTopItems(db *sql.DB, limit int) ([]TopItem, error) {
	rows, err := db.Query(`
SELECT name, SUM(total_price), COUNT(id), AVG(unit_price), MIN(unit_price), MAX(unit_price), category
FROM items
GROUP BY name, category
ORDER BY SUM(total_price) DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []TopItem{}

	for rows.Next() {
		var item TopItem
		if err := rows.Scan(&item.Name, &item.TotalSpent, &item.PurchaseCount, &item.AveragePrice, &item.MinPrice, &item.MaxPrice, &item.Category); err != nil {
			return nil, err
		}

		item.TotalSpent = round2(item.TotalSpent)
		item.AveragePrice = round2(item.AveragePrice)

		items = append(items, item)
	}

	return items, rows.Err()
}

type PriceTrend struct {
	ItemName string    `json:"item_name"`
	Date     time.Time `json:"date"`
	Price    float64   `json:"price"`
}

// GetPriceTrends lists unit-price observations in purchase order,
// optionally narrowed to item names containing the given fragment.
func GetPriceTrends(db *sql.DB, itemName string) ([]PriceTrend, error) {
	query := `
SELECT i.name, r.purchase_date, i.unit_price
FROM items AS i JOIN receipts AS r ON r.id = i.receipt_id`
	args := []interface{}{}

	if itemName != "" {
		query += " WHERE i.name LIKE ?"
		args = append(args, "%"+itemName+"%")
	}

	query += " ORDER BY r.purchase_date"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trends := []PriceTrend{}

	for rows.Next() {
		var trend PriceTrend
		var date int64
		if err := rows.Scan(&trend.ItemName, &date, &trend.Price); err != nil {
			return nil, err
		}

		trend.Date = time.Unix(date, 0).UTC()
		trend.Price = round2(trend.Price)

		trends = append(trends, trend)
	}

	return trends, rows.Err()
}

type StoreSpend struct {
	StoreName      string  `json:"store_name"`
	TotalSpent     float64 `json:"total_spent"`
	VisitCount     int     `json:"visit_count"`
	AverageReceipt float64 `json:"average_receipt"`
	TotalTax       float64 `json:"total_tax"`
	Percentage     float64 `json:"percentage"`
}

type StoreComparison struct {
	Stores     []StoreSpend `json:"stores"`
	TotalSpend float64      `json:"total_spend"`
}

func GetStoreComparison(db *sql.DB) (StoreComparison, error) {
	rows, err := db.Query(`
SELECT store_name, SUM(total_amount), COUNT(id), AVG(total_amount), SUM(tax_amount)
FROM receipts
GROUP BY store_name`)
	if err != nil {
		return StoreComparison{}, err
	}
	defer rows.Close()

	comparison := StoreComparison{Stores: []StoreSpend{}}

	for rows.Next() {
		var s StoreSpend
		if err := rows.Scan(&s.StoreName, &s.TotalSpent, &s.VisitCount, &s.AverageReceipt, &s.TotalTax); err != nil {
			return StoreComparison{}, err
		}

		comparison.TotalSpend += s.TotalSpent
		comparison.Stores = append(comparison.Stores, s)
	}

	if err := rows.Err(); err != nil {
		return StoreComparison{}, err
	}

	for i := range comparison.Stores {
		s := &comparison.Stores[i]
		if comparison.TotalSpend > 0 {
			s.Percentage = round2(s.TotalSpent / comparison.TotalSpend * percentageOfTotal)
		}
		s.TotalSpent = round2(s.TotalSpent)
		s.AverageReceipt = round2(s.AverageReceipt)
		s.TotalTax = round2(s.TotalTax)
	}

	sort.Slice(comparison.Stores, func(i, j int) bool {
		return comparison.Stores[i].TotalSpent > comparison.Stores[j].TotalSpent
	})

	comparison.TotalSpend = round2(comparison.TotalSpend)

	return comparison, nil
}

type ShoppingFrequency struct {
	AverageDaysBetweenTrips float64 `json:"average_days_between_trips"`
	Frequency               string  `json:"shopping_frequency"`
	TotalTrips              int     `json:"total_trips"`
}

// GetShoppingFrequency measures the average day gap between consecutive
// trips. Same-day trips do not count as a gap.
func GetShoppingFrequency(db *sql.DB) (ShoppingFrequency, error) {
	rows, err := db.Query("SELECT purchase_date FROM receipts ORDER BY purchase_date")
	if err != nil {
		return ShoppingFrequency{}, err
	}
	defer rows.Close()

	dates := []time.Time{}
	for rows.Next() {
		var unix int64
		if err := rows.Scan(&unix); err != nil {
			return ShoppingFrequency{}, err
		}
		dates = append(dates, time.Unix(unix, 0).UTC())
	}

	if err := rows.Err(); err != nil {
		return ShoppingFrequency{}, err
	}

	if len(dates) == 0 {
		return ShoppingFrequency{Frequency: "N/A"}, nil
	}

	gaps := []float64{}
	for i := 1; i < len(dates); i++ {
		gap := math.Floor(dates[i].Sub(dates[i-1]).Hours() / 24)
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}

	var avgGap float64
	for _, gap := range gaps {
		avgGap += gap
	}
	if len(gaps) > 0 {
		avgGap /= float64(len(gaps))
	}

	return ShoppingFrequency{
		AverageDaysBetweenTrips: math.Round(avgGap*10) / 10,
		Frequency:               frequencyLabel(avgGap),
		TotalTrips:              len(dates),
	}, nil
}

func frequencyLabel(avgGap float64) string {
	switch {
	case avgGap <= 3:
		return "Very Frequent (Multiple times/week)"
	case avgGap <= 7:
		return "Weekly"
	case avgGap <= 14:
		return "Bi-weekly"
	case avgGap <= 30:
		return "Monthly"
	default:
		return "Infrequent"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
