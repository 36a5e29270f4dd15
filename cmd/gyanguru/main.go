// GyanGuru - AI tutoring backend entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gyanguru/gyanguru/internal/api"
	"github.com/gyanguru/gyanguru/internal/artifact"
	"github.com/gyanguru/gyanguru/internal/infra/config"
	"github.com/gyanguru/gyanguru/internal/server"
	"github.com/gyanguru/gyanguru/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("gyanguru", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "gyanguru: %v\n", err) //nolint:errcheck
		return 1
	}
	return 0
}

func serve() error {
	cfg := config.Load()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY is not set")
	}

	store, err := artifact.NewStore(cfg.GeneratedDir, logger)
	if err != nil {
		return fmt.Errorf("artifact store: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := api.NewRouter(ctx, cfg, store, logger)
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Port = cfg.Port
	srv := server.NewServer(router, srvCfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func printHelp(out io.Writer) {
	helpText := `GyanGuru - AI tutoring backend

Usage:
  gyanguru [options]

Options:
  --version    Show version information
  --help       Show this help message

Environment:
  GEMINI_API_KEY    Required. Key for text, code, script and image generation.
  OPENAI_API_KEY    Key for speech synthesis.
  PORT              Listen port (default 5000).
  GENERATED_FOLDER  Artifact directory (default "generated").

Examples:
  gyanguru --version
  GEMINI_API_KEY=... gyanguru`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
