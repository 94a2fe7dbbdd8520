package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barnbook/barnbook-seed/internal/config"
	"github.com/barnbook/barnbook-seed/internal/logger"
)

var (
	manifestLocation string
	timeout          time.Duration

	// cfg is populated by PersistentPreRunE and shared with all subcommands.
	cfg *config.Config

	// log is replaced once the configured level is known.
	log = logger.New(0)
)

var rootCmd = &cobra.Command{
	Use:   "barnbook-seed",
	Short: "Ensure baseline barnbook identities exist",
	Long: `barnbook-seed makes sure the baseline identities exist in the barnbook
database. Credentials are stored as bcrypt hashes and existing identities
are never overwritten, so the command can be re-run safely.

Identities come from SEED_EMAIL / SEED_PASSWORD / SEED_DISPLAY_NAME or from a
YAML manifest given with --manifest (a file path or s3://bucket/key).

The command exits 0 on success, including when nothing had to be created,
and non-zero on any failure.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSeed,
}

func init() {
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "overall deadline (overrides SEED_TIMEOUT)")
	rootCmd.Flags().StringVar(&manifestLocation, "manifest", "", "seed manifest path or s3://bucket/key (overrides SEED_MANIFEST)")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.NewConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		log = logger.New(cfg.LogLevel)

		if cmd.Flags().Changed("timeout") {
			if timeout <= 0 {
				return fmt.Errorf("--timeout must be positive, got %s", timeout)
			}
			cfg.Seed.Timeout = timeout
		}
		if manifestLocation != "" {
			cfg.Seed.Manifest = manifestLocation
		}

		return nil
	}

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}
