// Package main is the entry point for MazeBand.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/mazeband/internal/game"
	"github.com/samdwyer/mazeband/internal/maze"
	"github.com/samdwyer/mazeband/internal/telemetry"
)

var log = logrus.New()

func main() {
	os.Exit(run())
}

// run owns every deferred cleanup so spans and log lines are flushed on
// error exits too.
func run() int {
	// Missing .env is fine, variables may be set directly.
	envErr := godotenv.Load()

	logFile := setupLogging()
	if logFile != nil {
		defer logFile.Close()
	}
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	setupOTelEnv()

	ctx := context.Background()

	if !otlpConfigured() {
		log.Info("no OTLP endpoint configured, telemetry export disabled")
	} else if shutdown, err := telemetry.Setup(ctx); err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without export")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	cfg, err := game.LoadConfig(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazeband: %v\n", err)
		log.WithError(err).Error("invalid configuration")
		return 2
	}

	g, err := game.New(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazeband: %v\n", err)
		log.WithError(err).Error("failed to initialize game")
		return 1
	}

	log.WithFields(logrus.Fields{
		"preset": cfg.Preset,
		"width":  cfg.Width,
		"height": cfg.Height,
		"theme":  cfg.Theme.ID,
	}).Info("starting")

	if err := g.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mazeband: %v\n", err)
		log.WithError(err).Error("game error")
		return 1
	}
	return 0
}

// setupLogging sends logs to MAZE_LOG_FILE since tcell owns the terminal.
// If the file cannot be opened, logging is discarded.
func setupLogging() *os.File {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	level, err := logrus.ParseLevel(getEnv("MAZE_LOG_LEVEL", "info"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazeband: %v, using info\n", err)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	maze.Log.SetLevel(level)
	maze.Log.SetFormatter(log.Formatter)

	path := getEnv("MAZE_LOG_FILE", "mazeband.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mazeband: cannot open log file %s: %v\n", path, err)
		log.SetOutput(io.Discard)
		maze.Log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	maze.Log.SetOutput(f)
	return f
}

// setupOTelEnv maps our Honeycomb variables onto the standard OTEL_* ones.
// Without an API key the OTEL_* variables are left as they are.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_MAZEBAND_API_KEY")
	if apiKey == "" {
		return
	}

	if _, ok := os.LookupEnv("OTEL_EXPORTER_OTLP_ENDPOINT"); !ok {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	dataset := getEnv("HONEYCOMB_MAZEBAND_DATASET", telemetry.ServiceName)
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}

// otlpConfigured reports whether any OTLP endpoint is set.
func otlpConfigured() bool {
	for _, key := range []string{
		"OTEL_EXPORTER_OTLP_ENDPOINT",
		"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT",
		"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT",
	} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
