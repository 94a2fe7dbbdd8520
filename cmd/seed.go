package main

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/spf13/cobra"

	"github.com/barnbook/barnbook-seed/internal/config"
	"github.com/barnbook/barnbook-seed/internal/hasher"
	"github.com/barnbook/barnbook-seed/internal/manifest"
	"github.com/barnbook/barnbook-seed/internal/model"
	"github.com/barnbook/barnbook-seed/internal/repository/postgres"
	"github.com/barnbook/barnbook-seed/internal/service"
	storage "github.com/barnbook/barnbook-seed/internal/storage/minio"
)

func runSeed(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Seed.Timeout)
	defer cancel()

	h, err := hasher.NewBcrypt(cfg.Hash.Cost)
	if err != nil {
		return fmt.Errorf("configuring hasher: %w", err)
	}
	log.Debug("credential hasher ready", "algorithm", "bcrypt", "cost", h.Cost())

	seeds, err := loadSeeds(ctx, cfg)
	if err != nil {
		return fmt.Errorf("loading seeds: %w", err)
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer conn.Close()

	seeder := service.NewSeeder(conn, h, log)
	if err := seeder.EnsureAll(ctx, seeds); err != nil {
		return err
	}

	log.Debug("bootstrap completed", "identities", len(seeds))
	return nil
}

func loadSeeds(ctx context.Context, cfg *config.Config) ([]model.SeedIdentity, error) {
	if cfg.Seed.Manifest == "" {
		return []model.SeedIdentity{{
			Email:       cfg.Seed.Email,
			Credential:  cfg.Seed.Password,
			DisplayName: cfg.Seed.DisplayName,
		}}, nil
	}

	return manifest.NewLoader(objectStoreOpener(cfg.Storage)).Load(ctx, cfg.Seed.Manifest)
}

func objectStoreOpener(cfg config.Storage) manifest.Opener {
	return func(ctx context.Context, bucket string) (model.ObjectReader, error) {
		client, err := minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}

		store, err := storage.NewClient(ctx, client, bucket)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}
