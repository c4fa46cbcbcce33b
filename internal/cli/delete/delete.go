// Package deletecmd implements the subcommand that drops all stored data.
package deletecmd

import (
	"database/sql"
	"flag"
	"fmt"

	"github.com/5dollarhigh/grocerytrace/internal/cli"
	"github.com/5dollarhigh/grocerytrace/internal/config"
	receiptDB "github.com/5dollarhigh/grocerytrace/internal/db"
	"github.com/5dollarhigh/grocerytrace/internal/logger"
)

type deleteCommand struct {
}

func NewCommand() cli.Command {
	return deleteCommand{}
}

func (c deleteCommand) Description() string {
	return "Delete the receipts database tables"
}

func (c deleteCommand) SetFlags(*flag.FlagSet) {
}

func (c deleteCommand) Run(_ *config.Config, db *sql.DB, log *logger.Logger) error {
	if err := receiptDB.DropTables(db); err != nil {
		return fmt.Errorf("unable to drop tables: %w", err)
	}

	log.Info("database tables dropped")

	return nil
}
