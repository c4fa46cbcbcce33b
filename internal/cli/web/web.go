// Package web implements the subcommand that serves the HTTP API.
package web

import (
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/5dollarhigh/grocerytrace/internal/category"
	"github.com/5dollarhigh/grocerytrace/internal/cli"
	"github.com/5dollarhigh/grocerytrace/internal/config"
	"github.com/5dollarhigh/grocerytrace/internal/logger"
	"github.com/5dollarhigh/grocerytrace/internal/ocr"
	"github.com/5dollarhigh/grocerytrace/internal/router"
)

type webCommand struct {
}

func NewCommand() cli.Command {
	return webCommand{}
}

func (c webCommand) Description() string {
	return "Serve the HTTP API"
}

var port string
var timeout int

const defaultTimeout = 3

func (c webCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&port, "p", "", "port (overrides the configured port)")
	fs.IntVar(&timeout, "t", defaultTimeout, "read header timeout in seconds")
}

func (c webCommand) Run(conf *config.Config, db *sql.DB, log *logger.Logger) error {
	if port == "" {
		port = conf.Port
	}

	classifier := category.NewClassifier(category.DefaultRules)
	scanner := ocr.NewScanner(conf.OCRLang)
	handler := router.New(db, classifier, scanner, conf.UploadDir, log)

	log.Info("listening", "addr", fmt.Sprintf("http://localhost:%s", port))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		ReadHeaderTimeout: time.Duration(timeout) * time.Second,
		Handler:           handler,
	}

	return server.ListenAndServe()
}
