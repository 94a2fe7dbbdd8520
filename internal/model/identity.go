package model

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SessionProvider hands out exclusively owned store sessions.
type SessionProvider interface {
	Acquire(ctx context.Context) (IdentitySession, error)
}

// IdentitySession defines persistence operations for identities over a single
// checked-out connection. Release must be called once the caller is done.
type IdentitySession interface {
	// InsertIfAbsent stores identity unless a record with the same email
	// already exists. created reports whether a row was written.
	InsertIfAbsent(ctx context.Context, identity Identity) (created bool, err error)
	GetByEmail(ctx context.Context, email string) (Identity, error)
	Release()
}

// Identity represents a stored identity record.
type Identity struct {
	ID             uuid.UUID
	Email          string
	CredentialHash string
	DisplayName    string
	CreatedAt      time.Time
}

// SeedIdentity is a baseline identity that must exist after bootstrap.
type SeedIdentity struct {
	Email       string
	Credential  string
	DisplayName string
}

// String hides the credential.
func (s SeedIdentity) String() string {
	return "SeedIdentity{Email: " + s.Email + ", DisplayName: " + s.DisplayName + ", Credential: [REDACTED]}"
}

// LogValue keeps the credential out of structured logs.
func (s SeedIdentity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", s.Email),
		slog.String("display_name", s.DisplayName),
	)
}
