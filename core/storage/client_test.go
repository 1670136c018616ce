package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog-sync/core/storage"
	"catalog-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name string
		cfg  storage.Config
	}{
		{"ValidConfig", storage.Config{Endpoint: "localhost:9000", AccessKey: "k", SecretKey: "s", Bucket: "snapshots", Region: "us-east-1"}},
		{"EndpointWithHTTP", storage.Config{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"}},
		{"EndpointWithHTTPS", storage.Config{Endpoint: "https://s3.amazonaws.com", AccessKey: "k", SecretKey: "s", UseSSL: true, Region: "us-east-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := storage.NewClient(tt.cfg)
			assert.NoError(t, err)
			assert.NotNil(t, client)
		})
	}
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "snapshots").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "snapshots", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "snapshots").Return(false, nil)
		m.On("MakeBucket", ctx, "snapshots", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "snapshots", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "snapshots").Return(false, errors.New("unreachable"))

		err := storage.EnsureBucket(ctx, m, "snapshots", "")
		assert.ErrorContains(t, err, "unreachable")
	})
}

func TestCountObjects(t *testing.T) {
	ctx := context.Background()

	m := new(mocks.Client)
	m.On("ListObjects", ctx, "bucket", minio.ListObjectsOptions{Prefix: "snapshots/", Recursive: true}).
		Return(mocks.Listing("snapshots/a/feed.json", "snapshots/a/listings.json"))

	count, err := storage.CountObjects(ctx, m, "bucket", "snapshots/")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestConfig_HostAndTimeout(t *testing.T) {
	tests := []struct {
		name        string
		cfg         storage.Config
		wantHost    string
		wantTimeout time.Duration
	}{
		{"plain host", storage.Config{Endpoint: "minio:9000", TimeoutSeconds: 5}, "minio:9000", 5 * time.Second},
		{"http scheme", storage.Config{Endpoint: "http://minio:9000"}, "minio:9000", 30 * time.Second},
		{"https scheme", storage.Config{Endpoint: "https://s3.example.com", TimeoutSeconds: -1}, "s3.example.com", 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantHost, tt.cfg.Host())
			assert.Equal(t, tt.wantTimeout, tt.cfg.Timeout())
		})
	}
}
