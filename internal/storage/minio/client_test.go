package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error

	getRC  io.ReadCloser
	getErr error

	statErr error

	gotBucket string
	gotKey    string
}

func (f *fakeMinio) BucketExists(_ context.Context, bucket string) (bool, error) {
	f.gotBucket = bucket
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeMinio) GetObject(_ context.Context, bucket, key string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	f.gotBucket, f.gotKey = bucket, key
	return f.getRC, f.getErr
}
func (f *fakeMinio) StatObject(_ context.Context, bucket, key string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	f.gotBucket, f.gotKey = bucket, key
	return minioLib.ObjectInfo{Key: key}, f.statErr
}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		c, err := NewClientWithAPI(ctx, api, "seeds")
		require.NoError(t, err)
		assert.Equal(t, "seeds", c.bucket)
		assert.Equal(t, "seeds", api.gotBucket)
	})

	t.Run("bucket missing", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{bucketExists: false}, "seeds")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("lookup error", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeMinio{bucketExistsErr: errors.New("boom")}, "seeds")
		assert.Nil(t, c)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to check bucket existence")
	})
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{getRC: io.NopCloser(strings.NewReader("identities: []"))}
		c := &Client{api: api, bucket: "seeds"}
		rc, err := c.Download(ctx, "dev/identities.yaml")
		require.NoError(t, err)
		defer rc.Close()

		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "identities: []", string(body))
		assert.Equal(t, "seeds", api.gotBucket)
		assert.Equal(t, "dev/identities.yaml", api.gotKey)
	})

	t.Run("error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{getErr: errors.New("get-fail")}, bucket: "seeds"}
		rc, err := c.Download(ctx, "k")
		assert.Nil(t, rc)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get object")
	})
}

func TestClient_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		c := &Client{api: &fakeMinio{}, bucket: "seeds"}
		ok, err := c.Exists(ctx, "k")
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		c := &Client{api: &fakeMinio{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "seeds"}
		ok, err := c.Exists(ctx, "absent")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other error", func(t *testing.T) {
		c := &Client{api: &fakeMinio{statErr: errors.New("stat-fail")}, bucket: "seeds"}
		ok, err := c.Exists(ctx, "k")
		assert.Error(t, err)
		assert.False(t, ok)
		assert.Contains(t, err.Error(), "failed to stat object")
	})
}
