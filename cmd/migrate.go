package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barnbook/barnbook-seed/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the identities schema and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Seed.Timeout)
		defer cancel()

		dbCfg := cfg.Database
		dbCfg.Migrate = true

		conn, err := postgres.NewConnection(ctx, dbCfg, log)
		if err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		defer conn.Close()

		log.Info("schema is up to date")
		return nil
	},
}
