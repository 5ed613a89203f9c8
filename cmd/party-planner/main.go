package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/party-planner/internal/application"
	"github.com/eugenenazirov/party-planner/internal/config"
	"github.com/eugenenazirov/party-planner/internal/logging"
)

var signalNotify = signal.Notify

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "party-planner: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and executes the selected command. The cli command reads
// from in and writes to out; serve blocks until a shutdown signal arrives.
func run(args []string, in io.Reader, out io.Writer) error {
	kingpinApp := kingpin.New("party-planner", "Party Planner - pick party items and get your party code")
	kingpinApp.UsageWriter(out)
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	envFile := kingpinApp.Flag("env-file", "Path to a .env file loaded before reading the environment").String()
	label := kingpinApp.Flag("label", "Server label shown in page and prompt headings").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	serveCmd := kingpinApp.Command("serve", "Run the web server").Default()
	host := serveCmd.Flag("ip", "Address the HTTP server binds to").String()
	port := serveCmd.Flag("port", "HTTP port exposed by the service").String()
	rateLimitRPSFlag := serveCmd.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := serveCmd.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	cliCmd := kingpinApp.Command("cli", "Pick party items from the terminal")
	indices := cliCmd.Flag("indices", "Comma-separated item indices; skips the interactive prompt").String()

	command, err := kingpinApp.Parse(args)
	if err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		EnvFile:    *envFile,
	}

	if *host != "" {
		overrides.Host = host
	}

	if *port != "" {
		overrides.Port = port
	}

	if *label != "" {
		overrides.Label = label
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}

	switch command {
	case cliCmd.FullCommand():
		if err := app.RunPrompt(in, out, *indices); err != nil {
			return fmt.Errorf("cli: %w", err)
		}
		return nil
	default:
		if err := app.Start(); err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
		return nil
	}
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server", zap.String("addr", server.Addr))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
