// Package email implements the subcommand that ingests an order
// confirmation email in .eml form and stores the parsed receipt.
package email

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/5dollarhigh/grocerytrace/internal/category"
	"github.com/5dollarhigh/grocerytrace/internal/cli"
	"github.com/5dollarhigh/grocerytrace/internal/config"
	receiptDB "github.com/5dollarhigh/grocerytrace/internal/db"
	emailParser "github.com/5dollarhigh/grocerytrace/internal/email"
	"github.com/5dollarhigh/grocerytrace/internal/extract"
	"github.com/5dollarhigh/grocerytrace/internal/logger"
	"github.com/5dollarhigh/grocerytrace/internal/util"
)

type emailCommand struct {
}

func NewCommand() cli.Command {
	return emailCommand{}
}

func (c emailCommand) Description() string {
	return "Parse an order confirmation email (.eml) and store the extracted receipt"
}

var filePath string

func (c emailCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&filePath, "f", "", "email file (.eml) to parse")
}

func (c emailCommand) Run(_ *config.Config, db *sql.DB, log *logger.Logger) error {
	if filePath == "" {
		return errors.New("-f flag is required")
	}

	if path.Ext(filePath) != ".eml" {
		return fmt.Errorf("%s is not an .eml file", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", filePath, err)
	}
	defer file.Close()

	doc, err := emailParser.ParseEML(file)
	if err != nil {
		return fmt.Errorf("unable to parse email: %w", err)
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
