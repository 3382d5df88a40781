// Command scout runs the tournament pipeline from the terminal.
//
// Usage:
//
//	scout fetch badminton
//	scout fetch chess --mock
//	scout prompt "table tennis"
//	scout sports
//	scout extract response.txt
//	cat response.txt | scout extract
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/albapepper/sportsagg/internal/aggregator"
	"github.com/albapepper/sportsagg/internal/config"
	"github.com/albapepper/sportsagg/internal/extract"
	"github.com/albapepper/sportsagg/internal/gemini"
	"github.com/albapepper/sportsagg/internal/tournament"
)

// Logs go to stderr so stdout stays valid JSON.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "scout",
		Short:        "Sports tournament aggregator CLI",
		SilenceUsage: true,
	}
	root.AddCommand(fetchCmd())
	root.AddCommand(promptCmd())
	root.AddCommand(sportsCmd())
	root.AddCommand(extractCmd())
	return root
}

// --------------------------------------------------------------------------
// fetch command
// --------------------------------------------------------------------------

func fetchCmd() *cobra.Command {
	var forceMock bool
	cmd := &cobra.Command{
		Use:   "fetch <sport>",
		Short: "Fetch upcoming tournaments for a sport and print the envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			svc := newService(config.Load(), forceMock)
			res, err := svc.Fetch(ctx, args[0])
			if err != nil {
				return fmt.Errorf("system error: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&forceMock, "mock", false, "Skip Gemini and print mock data")
	return cmd
}

func newService(cfg *config.Config, forceMock bool) *aggregator.Service {
	var gen aggregator.Generator
	if cfg.GeminiConfigured() && !forceMock {
		gen = gemini.NewClient(cfg.GeminiURL, cfg.GeminiAPIKey, cfg.GeminiTimeout, logger)
	}
	return aggregator.NewService(gen, cfg, clockwork.NewRealClock(), nil, logger)
}

// --------------------------------------------------------------------------
// prompt / sports commands
// --------------------------------------------------------------------------

func promptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt <sport>",
		Short: "Print the Gemini prompt for a sport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(config.Load(), true)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), svc.Prompt(args[0]))
			return err
		},
	}
}

func sportsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sports",
		Short: "List supported sports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range config.Sports() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// extract command
// --------------------------------------------------------------------------

func extractCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Extract the tournament list from a saved model answer (file or stdin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			m, err := extract.Extract(string(text))
			if err != nil {
				return err
			}
			logger.Info("extracted", "match", m.String())
			if raw {
				return writeJSON(cmd.OutOrStdout(), m.Items)
			}
			return writeJSON(cmd.OutOrStdout(), tournament.Decode(m.Items))
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the extracted items without normalizing them into records")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
