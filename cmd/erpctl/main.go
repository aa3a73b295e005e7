package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/ganot/builderp/internal/app"
	"github.com/ganot/builderp/internal/cli"
	"github.com/ganot/builderp/internal/config"
	"github.com/ganot/builderp/internal/logging"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	dbPath := flag.String("db", cfg.DB.Path, "Path to the SQLite database.")
	seed := flag.Bool("seed", cfg.DB.Seed, "Load the starter data into a new database.")
	raw := flag.Bool("raw", false, "Print markdown without terminal styling.")
	width := flag.Int("width", 100, "Wrap rendered output at this many columns.")
	verbose := flag.Bool("v", false, "Log store operations to stderr.")

	env := &cli.Env{Out: os.Stdout, Err: os.Stderr}
	env.Open = func(ctx context.Context) (*app.App, error) {
		level := "warn"
		if *verbose {
			level = "debug"
		}
		logger, _, err := logging.New(config.LogConfig{Level: level}, os.Stderr)
		if err != nil {
			return nil, err
		}
		return app.Open(ctx, app.Options{DBPath: *dbPath, Seed: *seed, Logger: logger})
	}

	name := path.Base(os.Args[0])
	cli.Completion(flag.CommandLine, env).Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, env)

	flag.Parse()
	env.Raw = *raw
	env.Width = *width

	os.Exit(int(commander.Execute(context.Background())))
}
