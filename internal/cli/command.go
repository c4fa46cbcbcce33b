package cli

import (
	"database/sql"
	"flag"

	"github.com/5dollarhigh/grocerytrace/internal/config"
	"github.com/5dollarhigh/grocerytrace/internal/logger"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(conf *config.Config, db *sql.DB, logger *logger.Logger) error
}
