package main

import (
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-history/internal"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
)

// main - is the entry point of the application. It exits with the code returned by run.
func main() {
	os.Exit(run(os.Args[1:]))
}

// run - initializes the configuration and logger and runs the application.
// Deferred cleanup happens before main exits.
func run(args []string) (code int) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			code = 1
		}
	}()

	conf := initConfig()
	logger, level, logFile := initLogger(conf)
	defer logFile.Close()

	if err := app.RunApp(logger, level, conf, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(config.Path(baseDir))
}

// initialize logger. The terminal page owns stdout, so logs go to a file.
func initLogger(conf *config.Config) (*slog.Logger, *slog.LevelVar, *os.File) {
	level := new(slog.LevelVar)

	switch conf.LogLevel {
	case "debug":
		level.Set(slog.LevelDebug)
	case "info":
		level.Set(slog.LevelInfo)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}

	path := conf.LogFile
	if path == "" {
		defaultPath, err := config.DefaultLogFile()
		if err != nil {
			panic(err)
		}
		path = defaultPath
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	return slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})), level, file
}
