package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coolbeans/lawlink/pkg/alias"
	"github.com/coolbeans/lawlink/pkg/citation"
	"github.com/coolbeans/lawlink/pkg/config"
	"github.com/coolbeans/lawlink/pkg/server"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "lawlink",
		Short: "Russian legal-citation extraction service",
		Long: `Lawlink extracts structured references to Russian legal instruments
(codes, federal laws, decrees, accounting standards) from free-form text.

Each citation is resolved to a canonical law identifier plus the article,
point and subpoint numbers it names, so downstream pipelines work with
machine-readable cross-references instead of raw prose mentions.`,
		Version: version,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(extractCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the extraction HTTP service",
		Long: `Run the HTTP service exposing POST /api/v1/detect, GET /health and
GET /metrics. The alias table is loaded once at startup and is read-only
for the process lifetime.

Example:
  lawlink serve --config /etc/lawlink/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer logger.Sync()

			index, err := alias.LoadFile(cfg.Aliases.Path)
			if err != nil {
				return err
			}
			logger.Info("alias table loaded",
				zap.String("path", cfg.Aliases.Path),
				zap.Int("aliases", index.Len()),
			)

			srv, err := server.New(citation.NewExtractor(index), logger, &server.Config{
				Host: cfg.Server.Host,
				Port: cfg.Server.Port,
			})
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("signal received", zap.String("signal", sig.String()))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file")
	return cmd
}

func extractCmd() *cobra.Command {
	var aliasesPath string

	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract references from a file or stdin",
		Long: `Extract legal references from a text file (or stdin when no file is
given) and print them as a JSON links document.

Example:
  lawlink extract --aliases law_aliases.json contract.txt
  cat contract.txt | lawlink extract --aliases law_aliases.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := alias.LoadFile(aliasesPath)
			if err != nil {
				return err
			}

			var text []byte
			if len(args) == 1 && args[0] != "-" {
				text, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
			} else {
				text, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			links := citation.NewExtractor(index).Extract(string(text))

			out, err := json.MarshalIndent(map[string][]citation.LawReference{"links": links}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&aliasesPath, "aliases", "law_aliases.json", "path to JSON alias table")
	return cmd
}

// newLogger builds the service logger from config.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = cfg.Format
	if cfg.Format == "console" {
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zcfg.Build()
}
