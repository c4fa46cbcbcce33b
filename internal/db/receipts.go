package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/5dollarhigh/grocerytrace/internal/receipt"
)

type ErrInsert struct {
	receipt receipt.Receipt
	err     error
}

func (e ErrInsert) Error() string {
	return fmt.Sprintf("error when trying to insert receipt\n receipt: %+v\n err: %v", e.receipt, e.err)
}

// InsertReceipt stores a receipt and its items in one transaction and
// returns the stored copy with identities assigned.
func InsertReceipt(db *sql.DB, r receipt.Receipt) (receipt.Receipt, error) {
	tx, err := db.Begin()
	if err != nil {
		return receipt.Receipt{}, ErrInsert{receipt: r, err: err}
	}

	r.CreatedAt = time.Now()

	result, err := tx.Exec(
		"INSERT INTO receipts(store_name, purchase_date, total_amount, tax_amount, source_type, source_file, raw_text, created_at) values(?, ?, ?, ?, ?, ?, ?, ?)",
		r.StoreName, r.PurchaseDate.Unix(), r.TotalAmount, r.TaxAmount, string(r.Source), r.SourceFile, r.RawText, r.CreatedAt.Unix(),
	)
	if err != nil {
		tx.Rollback()
		return receipt.Receipt{}, ErrInsert{receipt: r, err: err}
	}

	receiptID, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return receipt.Receipt{}, ErrInsert{receipt: r, err: err}
	}

	insertStmt, err := tx.Prepare("INSERT INTO items(receipt_id, name, quantity, unit_price, total_price, category) values(?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return receipt.Receipt{}, ErrInsert{receipt: r, err: err}
	}

	for i, item := range r.Items {
		itemResult, err := insertStmt.Exec(receiptID, item.Name, item.Quantity, item.UnitPrice, item.TotalPrice, item.Category)
		if err != nil {
			tx.Rollback()
			return receipt.Receipt{}, ErrInsert{receipt: r, err: err}
		}

		itemID, _ := itemResult.LastInsertId()
		r.Items[i].ID = itemID
		r.Items[i].ReceiptID = receiptID
	}

	if err := tx.Commit(); err != nil {
		return receipt.Receipt{}, ErrInsert{receipt: r, err: err}
	}

	r.ID = receiptID

	return r, nil
}

// Filters narrows GetReceipts. Zero values mean "no restriction".
type Filters struct {
	Store     string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
	Offset    int
}

const defaultLimit = 100

// GetReceipts returns receipts newest first plus the unpaged total count.
func GetReceipts(db *sql.DB, filters Filters) ([]receipt.Receipt, int, error) {
	where := []string{}
	args := []interface{}{}

	if filters.Store != "" {
		where = append(where, "store_name LIKE ?")
		args = append(args, "%"+filters.Store+"%")
	}
	if !filters.StartDate.IsZero() {
		where = append(where, "purchase_date >= ?")
		args = append(args, filters.StartDate.Unix())
	}
	if !filters.EndDate.IsZero() {
		where = append(where, "purchase_date <= ?")
		args = append(args, filters.EndDate.Unix())
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM receipts"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	query := "SELECT id, store_name, purchase_date, total_amount, tax_amount, source_type, source_file, raw_text, created_at FROM receipts" +
		whereClause + " ORDER BY purchase_date DESC LIMIT ? OFFSET ?"
	args = append(args, limit, filters.Offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	receipts := []receipt.Receipt{}

	for rows.Next() {
		r, err := scanReceipt(rows)
		if err != nil {
			return nil, 0, err
		}

		receipts = append(receipts, r)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range receipts {
		items, err := getItems(db, receipts[i].ID)
		if err != nil {
			return nil, 0, err
		}
		receipts[i].Items = items
	}

	return receipts, total, nil
}

func GetReceipt(db *sql.DB, id int64) (receipt.Receipt, error) {
	row := db.QueryRow(
		"SELECT id, store_name, purchase_date, total_amount, tax_amount, source_type, source_file, raw_text, created_at FROM receipts WHERE id = ?",
		id,
	)

	r, err := scanReceipt(row)
	if err != nil {
		return receipt.Receipt{}, err
	}

	items, err := getItems(db, r.ID)
	if err != nil {
		return receipt.Receipt{}, err
	}
	r.Items = items

	return r, nil
}

func DeleteReceipt(db *sql.DB, id int64) error {
	result, err := db.Exec("DELETE FROM receipts WHERE id = ?", id)
	if err != nil {
		return err
	}

	count, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if count == 0 {
		return sql.ErrNoRows
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReceipt(row scanner) (receipt.Receipt, error) {
	var r receipt.Receipt
	var purchaseDate, createdAt int64
	var sourceType string
	var sourceFile, rawText sql.NullString

	err := row.Scan(&r.ID, &r.StoreName, &purchaseDate, &r.TotalAmount, &r.TaxAmount, &sourceType, &sourceFile, &rawText, &createdAt)
	if err != nil {
		return receipt.Receipt{}, err
	}

	r.PurchaseDate = time.Unix(purchaseDate, 0).UTC()
	r.CreatedAt = time.Unix(createdAt, 0).UTC()
	r.Source = receipt.Source(sourceType)
	r.SourceFile = sourceFile.String
	r.RawText = rawText.String

	return r, nil
}

func getItems(db *sql.DB, receiptID int64) ([]receipt.Item, error) {
	rows, err := db.Query(
		"SELECT id, receipt_id, name, quantity, unit_price, total_price, category FROM items WHERE receipt_id = ? ORDER BY id",
		receiptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []receipt.Item{}

	for rows.Next() {
		var item receipt.Item
		if err := rows.Scan(&item.ID, &item.ReceiptID, &item.Name, &item.Quantity, &item.UnitPrice, &item.TotalPrice, &item.Category); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
