package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/5dollarhigh/grocerytrace/internal/cli"
	deleteCmd "github.com/5dollarhigh/grocerytrace/internal/cli/delete"
	emailCmd "github.com/5dollarhigh/grocerytrace/internal/cli/email"
	reportCmd "github.com/5dollarhigh/grocerytrace/internal/cli/report"
	scanCmd "github.com/5dollarhigh/grocerytrace/internal/cli/scan"
	webCmd "github.com/5dollarhigh/grocerytrace/internal/cli/web"
	"github.com/5dollarhigh/grocerytrace/internal/config"
	"github.com/5dollarhigh/grocerytrace/internal/db"
	"github.com/5dollarhigh/grocerytrace/internal/logger"
)

var configPath string

var subcommands = map[string]cli.Command{
	"scan":   scanCmd.NewCommand(),
	"email":  emailCmd.NewCommand(),
	"report": reportCmd.NewCommand(os.Stdout),
	"web":    webCmd.NewCommand(),
	"delete": deleteCmd.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for name, command := range subcommands {
		fset := flag.NewFlagSet(name, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "grocerytrace.toml", "Configuration file")

		command.SetFlags(fset)

		subcommandsFlagSets[name] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		log.Fatalf("unsupported command %s. \nUse 'help' command to print information about supported commands\n", commandName)
	}

	if err := subcommandsFlagSets[commandName].Parse(os.Args[2:]); err != nil {
		log.Fatalf("Unable to parse flags: %s", err.Error())
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		log.Fatalf("Unable to parse the configuration: %s", err.Error())
	}

	appLogger := logger.New(conf.Logger)

	database, err := db.GetDB(conf.DB)
	if err != nil {
		appLogger.Fatal("unable to open database", "error", err.Error())
	}
	defer database.Close()

	if err := db.CreateTables(database); err != nil {
		appLogger.Fatal("unable to create database tables", "error", err.Error())
	}

	if err := command.Run(conf, database, appLogger); err != nil {
		appLogger.Fatal(commandName+" failed", "error", err.Error())
	}
}

func printHelp() {
	printUsage()

	for name, command := range subcommands {
		fmt.Printf("subcommand <%s>: %s\n", name, command.Description())
		subcommandsFlagSets[name].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: grocerytrace <subcommand> [flags]\n\n")
}
