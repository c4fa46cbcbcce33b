// Package report implements the subcommand that prints spending
// analytics for a month or a year to the terminal.
package report

import (
	"database/sql"
	"embed"
	"flag"
	"fmt"
	"io"
	"path"
	"text/template"
	"time"

	"github.com/5dollarhigh/grocerytrace/internal/category"
	"github.com/5dollarhigh/grocerytrace/internal/cli"
	"github.com/5dollarhigh/grocerytrace/internal/config"
	"github.com/5dollarhigh/grocerytrace/internal/logger"
	internalReport "github.com/5dollarhigh/grocerytrace/internal/report"
	"github.com/5dollarhigh/grocerytrace/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
	out io.Writer
}

func NewCommand(out io.Writer) cli.Command {
	return &reportCommand{out: out}
}

func (c *reportCommand) Description() string {
	return "Displays spending analytics for selected date ranges"
}

var month int
var year int
var topLimit int

const defaultTopLimit = 10

func (c *reportCommand) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&month, "month", -1, "what month to use for generating report")
	fs.IntVar(&year, "year", -1, "what year to use for generating report")
	fs.IntVar(&topLimit, "top", defaultTopLimit, "how many top items to include")
}

type reportData struct {
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Breakdown internalReport.CategoryBreakdown
	TopItems  []internalReport.TopItem
	Frequency internalReport.ShoppingFrequency
}

func (c *reportCommand) Run(_ *config.Config, db *sql.DB, _ *logger.Logger) error {
	now := time.Now()
	var startDate, endDate time.Time
	var title string

	switch {
	case month == -1 && year == -1:
		// Default to the previous month.
		startDate, endDate = util.GetMonthDates(int(now.Month())-1, now.Year())
		title = startDate.Format("January 2006")
	case month > 0:
		startDate, endDate = util.GetMonthDates(month, year)
		title = startDate.Format("January 2006")
	case year > 0:
		startDate, endDate = util.GetYearDates(year)
		title = startDate.Format("2006")
	default:
		return fmt.Errorf("invalid month/year combination: month=%d year=%d", month, year)
	}

	classifier := category.NewClassifier(category.DefaultRules)

	breakdown, err := internalReport.GetCategoryBreakdown(db, classifier, startDate, endDate)
	if err != nil {
		return fmt.Errorf("unable to compute category breakdown: %w", err)
	}

	topItems, err := internalReport.GetTopItems(db, topLimit)
	if err != nil {
		return fmt.Errorf("unable to compute top items: %w", err)
	}

	frequency, err := internalReport.GetShoppingFrequency(db)
	if err != nil {
		return fmt.Errorf("unable to compute shopping frequency: %w", err)
	}

	return renderTemplate(c.out, "report.tmpl", reportData{
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
		Breakdown: breakdown,
		TopItems:  topItems,
		Frequency: frequency,
	})
}

var templateFuncs = template.FuncMap{
	"formatAmount": util.FormatAmount,
	"colorOutput":  util.ColorOutput,
}

func renderTemplate(out io.Writer, templateName string, value interface{}) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}

	t := template.Must(template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl)))

	return t.Execute(out, value)
}
