// breakeven compares Tesouro Direto fixed-rate (Prefixado) bonds with the
// inflation-indexed (IPCA+) bond of closest maturity and reports the
// break-even inflation for each pair.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"breakeven/internal/config"
	"breakeven/internal/coordinator"
	"breakeven/internal/extractor"
	"breakeven/internal/fetcher"
	"breakeven/internal/ratelimit"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakeven",
	Short: "Break-even inflation between Tesouro Prefixado and IPCA+ bonds",
	Long: `breakeven fetches current Tesouro Direto rates, pairs every Prefixado
bond with the IPCA+ bond of closest maturity and shows the implicit
inflation priced in between them, with a recommendation.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		setupLogging(cfg.LogLevel)

		// Cancel on interrupt so a hung fetch does not block shutdown
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ctx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
		defer cancel()

		return run(ctx, cfg, cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "breakeven %s (commit %s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config.yaml)")
	rootCmd.Flags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.Flags().Bool("sample", false, "use built-in sample data instead of the network")
	rootCmd.Flags().Bool("no-fallback", false, "do not substitute sample data when extraction fails")

	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration and applies command-line overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}
	if sample, _ := cmd.Flags().GetBool("sample"); sample {
		cfg.UseSample = true
	}
	if noFallback, _ := cmd.Flags().GetBool("no-fallback"); noFallback {
		cfg.FallbackToSample = false
	}

	return cfg, cfg.Validate()
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// run wires the fetcher, extractor and coordinator for one pass
func run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	httpFetcher := fetcher.NewHTTPFetcher(fetcher.Options{
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.RequestTimeout,
		RetryCount: cfg.RetryCount,
		Limiter:    ratelimit.New(cfg.RequestsPerSecond, 1),
	})
	defer httpFetcher.Close()

	ext := extractor.New(httpFetcher, cfg.PageURL, cfg.APIURL,
		extractor.WithSampleData(cfg.UseSample))

	coord := coordinator.New(ext, out,
		coordinator.WithSampleFallback(cfg.FallbackToSample))

	return coord.Run(ctx)
}
