// Package scan implements the subcommand that ingests a receipt photo
// through OCR and stores the parsed result.
package scan

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/5dollarhigh/grocerytrace/internal/category"
	"github.com/5dollarhigh/grocerytrace/internal/cli"
	"github.com/5dollarhigh/grocerytrace/internal/config"
	receiptDB "github.com/5dollarhigh/grocerytrace/internal/db"
	"github.com/5dollarhigh/grocerytrace/internal/extract"
	"github.com/5dollarhigh/grocerytrace/internal/logger"
	"github.com/5dollarhigh/grocerytrace/internal/ocr"
	"github.com/5dollarhigh/grocerytrace/internal/util"
)

type scanCommand struct {
}

func NewCommand() cli.Command {
	return scanCommand{}
}

func (c scanCommand) Description() string {
	return "Scan a receipt image and store the extracted receipt"
}

var filePath string

func (c scanCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&filePath, "f", "", "receipt image to scan")
}

func (c scanCommand) Run(conf *config.Config, db *sql.DB, log *logger.Logger) error {
	if filePath == "" {
		return errors.New("-f flag is required")
	}

	image, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", filePath, err)
	}

	scanner := ocr.NewScanner(conf.OCRLang)
	doc, err := scanner.Scan(image)
	if err != nil {
		return fmt.Errorf("unable to read receipt image: %w", err)
	}

	parser := extract.NewParser(category.NewClassifier(category.DefaultRules))
	parsed := parser.Parse(doc)
	parsed.SourceFile = filePath

	stored, err := receiptDB.InsertReceipt(db, parsed)
	if err != nil {
		return err
	}

	log.Info("receipt stored", "id", stored.ID, "store", stored.StoreName)

	fmt.Printf("%s %s on %s\n",
		util.ColorOutput(stored.StoreName, "bold"),
		util.ColorOutput(util.FormatAmount(stored.TotalAmount), "green"),
		stored.PurchaseDate.Format("2006-01-02"))

	for _, item := range stored.Items {
		fmt.Printf("  %-30s %8s  %s\n", item.Name, util.FormatAmount(item.TotalPrice), item.Category)
	}

	return nil
}
