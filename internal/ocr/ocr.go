// Package ocr turns receipt images into raw text documents. The OCR
// backend is treated as a black box: callers get best-effort text and
// the extraction pipeline tolerates whatever noise comes back.
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/5dollarhigh/grocerytrace/internal/receipt"
)

// Scanner produces a raw document from image bytes.
type Scanner interface {
	Scan(image []byte) (receipt.RawDocument, error)
}

type tesseractScanner struct {
	lang string
}

func NewScanner(lang string) Scanner {
	return &tesseractScanner{lang: lang}
}

func (s *tesseractScanner) Scan(image []byte) (receipt.RawDocument, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.lang); err != nil {
		return receipt.RawDocument{}, fmt.Errorf("setting OCR language: %w", err)
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return receipt.RawDocument{}, fmt.Errorf("loading image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return receipt.RawDocument{}, fmt.Errorf("running OCR: %w", err)
	}

	return receipt.RawDocument{
		Text:   text,
		Source: receipt.SourceScan,
	}, nil
}
