package report

import (
	"database/sql"
	"errors"
	"time"
)

type MostExpensiveItem struct {
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Date  time.Time `json:"date"`
	Store string    `json:"store"`
}

type Summary struct {
	TotalSpent         float64            `json:"total_spent"`
	TotalReceipts      int                `json:"total_receipts"`
	AverageReceipt     float64            `json:"average_receipt"`
	TotalItems         int                `json:"total_items"`
	FirstReceiptDate   *time.Time         `json:"first_receipt_date"`
	LastReceiptDate    *time.Time         `json:"last_receipt_date"`
	MostExpensiveItem  *MostExpensiveItem `json:"most_expensive_item"`
	MostCommonCategory string             `json:"most_common_category"`
}

// GetSummary produces the lifetime overview of all stored receipts.
func GetSummary(db *sql.DB) (Summary, error) {
	summary := Summary{MostCommonCategory: "N/A"}

	var totalSpent sql.NullFloat64
	err := db.QueryRow("SELECT SUM(total_amount), COUNT(id) FROM receipts").Scan(&totalSpent, &summary.TotalReceipts)
	if err != nil {
		return Summary{}, err
	}

	summary.TotalSpent = round2(totalSpent.Float64)
	if summary.TotalReceipts > 0 {
		summary.AverageReceipt = round2(summary.TotalSpent / float64(summary.TotalReceipts))
	}

	var totalItems sql.NullFloat64
	if err := db.QueryRow("SELECT SUM(quantity) FROM items").Scan(&totalItems); err != nil {
		return Summary{}, err
	}
	summary.TotalItems = int(totalItems.Float64)

	var first, last sql.NullInt64
	err = db.QueryRow("SELECT MIN(purchase_date), MAX(purchase_date) FROM receipts").Scan(&first, &last)
	if err != nil {
		return Summary{}, err
	}

	if first.Valid {
		firstDate := time.Unix(first.Int64, 0).UTC()
		lastDate := time.Unix(last.Int64, 0).UTC()
		summary.FirstReceiptDate = &firstDate
		summary.LastReceiptDate = &lastDate
	}

	var item MostExpensiveItem
	var date int64
	err = db.QueryRow(`
SELECT i.name, i.total_price, r.purchase_date, r.store_name
FROM items AS i JOIN receipts AS r ON r.id = i.receipt_id
ORDER BY i.total_price DESC
LIMIT 1`).Scan(&item.Name, &item.Price, &date, &item.Store)

	switch {
	case err == nil:
		item.Price = round2(item.Price)
		item.Date = time.Unix(date, 0).UTC()
		summary.MostExpensiveItem = &item
	case !errors.Is(err, sql.ErrNoRows):
		return Summary{}, err
	}

	var mostCommon string
	err = db.QueryRow(`
SELECT category FROM items
GROUP BY category
ORDER BY COUNT(id) DESC
LIMIT 1`).Scan(&mostCommon)

	switch {
	case err == nil:
		summary.MostCommonCategory = mostCommon
	case !errors.Is(err, sql.ErrNoRows):
		return Summary{}, err
	}

	return summary, nil
}

type WasteInsight struct {
	ItemName          string  `json:"item_name"`
	PurchaseFrequency int     `json:"purchase_frequency"`
	AverageQuantity   float64 `json:"average_quantity"`
	TotalSpent        float64 `json:"total_spent"`
	Suggestion        string  `json:"suggestion"`
}

const (
	wasteMinPurchases = 3
	wasteMaxQuantity  = 2
	wasteLimit        = 20
)

// GetWasteInsights flags items bought often but in small quantities,
// candidates for buying in bulk.
func GetWasteInsights(db *sql.DB) ([]WasteInsight, error) {
	rows, err := db.Query(`
SELECT name, COUNT(id), AVG(quantity), SUM(total_price)
FROM items
GROUP BY name
HAVING COUNT(id) > ?
ORDER BY COUNT(id) DESC
LIMIT ?`, wasteMinPurchases, wasteLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	insights := []WasteInsight{}

	for rows.Next() {
		var insight WasteInsight
		if err := rows.Scan(&insight.ItemName, &insight.PurchaseFrequency, &insight.AverageQuantity, &insight.TotalSpent); err != nil {
			return nil, err
		}

		if insight.AverageQuantity > wasteMaxQuantity {
			continue
		}

		insight.AverageQuantity = round2(insight.AverageQuantity)
		insight.TotalSpent = round2(insight.TotalSpent)
		insight.Suggestion = "Consider buying in bulk to save money"

		insights = append(insights, insight)
	}

	return insights, rows.Err()
}
