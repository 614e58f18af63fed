// Package main is the entry point of the storefront. It wires together all
// modules and either serves them over HTTP or runs a scripted checkout.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rai/storefront-checkout-go/internal/platform/config"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront with a two-step checkout",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "Optional .env files read before the environment")
	rootCmd.AddCommand(serveCmd, walkthroughCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and builds the JSON logger from it.
func loadConfig(w io.Writer) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return config.Config{}, nil, err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return cfg, logger, nil
}
