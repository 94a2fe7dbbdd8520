package model

import (
	"context"
	"io"
)

// ObjectReader gives read access to objects kept in a bucket.
type ObjectReader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}
