package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/barnbook/barnbook-seed/database"
	"github.com/barnbook/barnbook-seed/internal/config"
	"github.com/barnbook/barnbook-seed/internal/logger"
	"github.com/barnbook/barnbook-seed/internal/model"
)

var _ model.SessionProvider = (*Connection)(nil)

type Connection struct {
	*pgxpool.Pool
}

// NewConnection opens a connection pool, checks that the server answers and
// prepares the schema. With cfg.Migrate unset the schema is only verified.
func NewConnection(ctx context.Context, cfg config.Database, log *logger.Logger) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		conf.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, classify("failed to open connection pool", err)
	}

	conn := &Connection{Pool: pool}
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	if cfg.Migrate {
		err = database.Migrate(ctx, cfg.DSN, log)
	} else {
		err = database.CheckSchema(ctx, cfg.DSN)
	}
	if err != nil {
		conn.Close()
		return nil, classify("failed to initialize database", err)
	}

	return conn, nil
}

// Acquire checks out a single pooled connection for exclusive use.
func (c *Connection) Acquire(ctx context.Context) (model.IdentitySession, error) {
	if c.Pool == nil {
		return nil, fmt.Errorf("%w: connection pool is nil", model.ErrConnection)
	}

	conn, err := c.Pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w: %w", model.ErrConnection, err)
	}

	return newIdentitySession(conn, conn.Release), nil
}

func (c *Connection) Close() error {
	if c.Pool != nil {
		c.Pool.Close()
	}
	return nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.Pool == nil {
		return fmt.Errorf("%w: connection pool is nil", model.ErrConnection)
	}
	if err := c.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w: %w", model.ErrConnection, err)
	}
	return nil
}
