package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/barnbook/barnbook-seed/internal/model"
)

// classify wraps err with model.ErrConnection when the server could not be
// reached in time and with model.ErrStore otherwise.
func classify(msg string, err error) error {
	if errors.Is(err, model.ErrConnection) || errors.Is(err, model.ErrStore) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	if isConnectionFailure(err) {
		return fmt.Errorf("%s: %w: %w", msg, model.ErrConnection, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, model.ErrStore, err)
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	// Class 08: connection exception. 57P0x: server shutting down.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P0")
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
