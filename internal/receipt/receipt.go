// Package receipt holds the core domain types shared by the extraction
// pipeline, the storage layer and the HTTP API.
package receipt

import "time"

// Source identifies how a receipt entered the system.
type Source string

const (
	SourceScan  Source = "scan"
	SourceEmail Source = "email"
)

// RawDocument is the unparsed input to the extraction pipeline. For
// scanned receipts only Text and Source are set; email receipts carry
// the header fields as well.
type RawDocument struct {
	Text       string
	Subject    string
	Sender     string
	HeaderDate string
	Source     Source
}

// Item is a single purchased line item on a receipt.
type Item struct {
	ID         int64   `json:"id"`
	ReceiptID  int64   `json:"receipt_id"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Category   string  `json:"category"`
}

type Receipt struct {
	ID           int64     `json:"id"`
	StoreName    string    `json:"store_name"`
	PurchaseDate time.Time `json:"purchase_date"`
	TotalAmount  float64   `json:"total_amount"`
	TaxAmount    float64   `json:"tax_amount"`
	Source       Source    `json:"source"`
	SourceFile   string    `json:"source_file"`
	RawText      string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	Items        []Item    `json:"items"`
}
