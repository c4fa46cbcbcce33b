package db_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/5dollarhigh/grocerytrace/internal/db"
	"github.com/5dollarhigh/grocerytrace/internal/receipt"
	"github.com/5dollarhigh/grocerytrace/internal/testutil"
)

func sampleReceipt(store string, date time.Time) receipt.Receipt {
	return receipt.Receipt{
		StoreName:    store,
		PurchaseDate: date,
		TotalAmount:  9.97,
		TaxAmount:    0.5,
		Source:       receipt.SourceScan,
		SourceFile:   "receipt.jpg",
		RawText:      "BANANAS 1.99",
		Items: []receipt.Item{
			{Name: "Bananas", Quantity: 1, UnitPrice: 1.99, TotalPrice: 1.99, Category: "Produce"},
			{Name: "Milk", Quantity: 2, UnitPrice: 3.99, TotalPrice: 7.98, Category: "Dairy & Eggs"},
		},
	}
}

func TestInsertAndGetReceipt(t *testing.T) {
	database := testutil.SetupTestDB(t)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	stored, err := db.InsertReceipt(database, sampleReceipt("Walmart", date))
	if err != nil {
		t.Fatalf("InsertReceipt() error: %v", err)
	}

	if stored.ID == 0 {
		t.Error("InsertReceipt() did not assign an ID")
	}

	got, err := db.GetReceipt(database, stored.ID)
	if err != nil {
		t.Fatalf("GetReceipt() error: %v", err)
	}

	if got.StoreName != "Walmart" {
		t.Errorf("StoreName = %q, want %q", got.StoreName, "Walmart")
	}

	if !got.PurchaseDate.Equal(date) {
		t.Errorf("PurchaseDate = %v, want %v", got.PurchaseDate, date)
	}

	if len(got.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(got.Items))
	}

	// Item order follows extraction order.
	if got.Items[0].Name != "Bananas" || got.Items[1].Name != "Milk" {
		t.Errorf("items out of order: %+v", got.Items)
	}
}

func TestGetReceiptsFilters(t *testing.T) {
	database := testutil.SetupTestDB(t)

	dates := map[string]time.Time{
		"Walmart": time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		"Kroger":  time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		"Target":  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	}

	for store, date := range dates {
		if _, err := db.InsertReceipt(database, sampleReceipt(store, date)); err != nil {
			t.Fatalf("InsertReceipt(%s) error: %v", store, err)
		}
	}

	tests := []struct {
		name       string
		filters    db.Filters
		wantStores []string
		wantTotal  int
	}{
		{
			name:       "no filters newest first",
			filters:    db.Filters{},
			wantStores: []string{"Target", "Kroger", "Walmart"},
			wantTotal:  3,
		},
		{
			name:       "store filter is a substring match",
			filters:    db.Filters{Store: "mart"},
			wantStores: []string{"Walmart"},
			wantTotal:  1,
		},
		{
			name:       "date range filter",
			filters:    db.Filters{StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)},
			wantStores: []string{"Kroger"},
			wantTotal:  1,
		},
		{
			name:       "limit and offset page through results",
			filters:    db.Filters{Limit: 1, Offset: 1},
			wantStores: []string{"Kroger"},
			wantTotal:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipts, total, err := db.GetReceipts(database, tt.filters)
			if err != nil {
				t.Fatalf("GetReceipts() error: %v", err)
			}

			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}

			if len(receipts) != len(tt.wantStores) {
				t.Fatalf("got %d receipts, want %d", len(receipts), len(tt.wantStores))
			}

			for i, store := range tt.wantStores {
				if receipts[i].StoreName != store {
					t.Errorf("receipt %d store = %q, want %q", i, receipts[i].StoreName, store)
				}
			}
		})
	}
}

func TestDeleteReceipt(t *testing.T) {
	database := testutil.SetupTestDB(t)

	stored, err := db.InsertReceipt(database, sampleReceipt("Walmart", time.Now()))
	if err != nil {
		t.Fatalf("InsertReceipt() error: %v", err)
	}

	if err := db.DeleteReceipt(database, stored.ID); err != nil {
		t.Fatalf("DeleteReceipt() error: %v", err)
	}

	if _, err := db.GetReceipt(database, stored.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetReceipt() after delete = %v, want sql.ErrNoRows", err)
	}

	// Items cascade with the receipt.
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Errorf("items remaining after delete = %d, want 0", count)
	}
}

func TestDeleteReceiptMissing(t *testing.T) {
	database := testutil.SetupTestDB(t)

	if err := db.DeleteReceipt(database, 42); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("DeleteReceipt(missing) = %v, want sql.ErrNoRows", err)
	}
}
