package service

import (
	"context"
	"fmt"

	"github.com/barnbook/barnbook-seed/internal/logger"
	"github.com/barnbook/barnbook-seed/internal/model"
)

// Seeder makes sure baseline identities exist without ever overwriting them.
type Seeder struct {
	sessions model.SessionProvider
	hasher   model.CredentialHasher
	logger   *logger.Logger
}

func NewSeeder(sessions model.SessionProvider, hasher model.CredentialHasher, logger *logger.Logger) *Seeder {
	return &Seeder{
		sessions: sessions,
		hasher:   hasher,
		logger:   logger,
	}
}

// EnsureSeedIdentity stores the identity unless one with the same email is
// already present. Repeated calls leave the store unchanged and return nil.
func (s *Seeder) EnsureSeedIdentity(ctx context.Context, email, rawCredential, displayName string) error {
	if email == "" {
		return fmt.Errorf("%w: email is empty", model.ErrInvalidSeed)
	}
	if rawCredential == "" {
		return fmt.Errorf("%w: credential for %s is empty", model.ErrInvalidSeed, email)
	}

	s.logger.Debug("Seeder: hashing credential", "email", email)

	credentialHash, err := s.hasher.Hash(rawCredential)
	if err != nil {
		return fmt.Errorf("failed to hash credential for %s: %w", email, err)
	}

	session, err := s.sessions.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire store session: %w", err)
	}
	defer session.Release()

	created, err := session.InsertIfAbsent(ctx, model.Identity{
		Email:          email,
		CredentialHash: credentialHash,
		DisplayName:    displayName,
	})
	if err != nil {
		return fmt.Errorf("failed to seed identity %s: %w", email, err)
	}

	if created {
		s.logger.Info("Seeder: identity seeded", "email", email, "created", true)
	} else {
		s.logger.Info("Seeder: identity already present", "email", email, "created", false)
	}

	return nil
}

// EnsureAll seeds every identity in order and stops at the first failure.
// Identities seeded before the failure are kept.
func (s *Seeder) EnsureAll(ctx context.Context, seeds []model.SeedIdentity) error {
	for i, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("seeding interrupted before identity %d: %w: %w", i, model.ErrConnection, err)
		}
		if err := s.EnsureSeedIdentity(ctx, seed.Email, seed.Credential, seed.DisplayName); err != nil {
			return fmt.Errorf("identity %d (%s): %w", i, seed.Email, err)
		}
	}

	s.logger.Debug("Seeder: all identities ensured", "count", len(seeds))

	return nil
}
