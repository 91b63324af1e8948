package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/spf13/pflag"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig(os.Args[1:])
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config: the file named by --config first, then the remaining flags on top.
func initConfig(args []string) *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	pre := pflag.NewFlagSet("tictactoe", pflag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	path := pre.StringP("config", "c", filepath.Join(baseDir, "./config.yml"), "path to the config file")

	if err = pre.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		panic(fmt.Errorf("failed to parse flags: %w", err))
	}

	conf := config.MustLoad(*path)

	fs := pflag.NewFlagSet("tictactoe", pflag.ExitOnError)
	fs.StringP("config", "c", *path, "path to the config file")
	conf.RegisterFlags(fs)

	if err = fs.Parse(args); err != nil {
		panic(fmt.Errorf("failed to parse flags: %w", err))
	}

	if err = conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
