package postgres

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/barnbook/barnbook-seed/internal/model"
)

var _ model.IdentitySession = (*IdentitySession)(nil)

// querier is the subset of *pgxpool.Conn used by IdentitySession.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IdentitySession runs identity queries over one checked-out connection.
type IdentitySession struct {
	conn    querier
	release func()
	once    sync.Once
}

func newIdentitySession(conn querier, release func()) *IdentitySession {
	return &IdentitySession{
		conn:    conn,
		release: release,
	}
}

func (s *IdentitySession) InsertIfAbsent(ctx context.Context, identity model.Identity) (bool, error) {
	const query = `INSERT INTO identities (id, email, credential_hash, display_name)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (email) DO NOTHING`

	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}

	tag, err := s.conn.Exec(ctx, query,
		identity.ID, identity.Email, identity.CredentialHash, identity.DisplayName,
	)
	if err != nil {
		return false, classify("failed to insert identity", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (s *IdentitySession) GetByEmail(ctx context.Context, email string) (model.Identity, error) {
	const query = `SELECT id, email, credential_hash, display_name, created_at
			  FROM identities WHERE email = $1`

	var identity model.Identity
	err := s.conn.QueryRow(ctx, query, email).Scan(
		&identity.ID, &identity.Email, &identity.CredentialHash, &identity.DisplayName, &identity.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, classify("failed to get identity by email", err)
	}

	return identity, nil
}

// Release returns the connection to the pool. Calling it more than once is safe.
func (s *IdentitySession) Release() {
	s.once.Do(func() {
		if s.release != nil {
			s.release()
		}
	})
}
