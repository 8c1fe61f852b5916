package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/lothronx/cm3070-lawtime-sub001/internal/config"
	"github.com/lothronx/cm3070-lawtime-sub001/internal/core/domain"
)

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Put writes an object and returns its path together with the public URL it
// is reachable at
func (a *Adapter) Put(ctx context.Context, path string, content io.Reader, size int64, mimeType string) (*domain.StoredObject, error) {
	_, err := a.client.PutObject(ctx, a.config.BucketName, path, content, size, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to put object: %w", err)
	}

	return &domain.StoredObject{
		Path:      path,
		PublicURL: a.publicURL(path),
	}, nil
}

// Copy promotes an object server-side within the bucket, no download and
// re-upload involved
func (a *Adapter) Copy(ctx context.Context, srcPath, dstPath string) error {
	src := minio.CopySrcOptions{Bucket: a.config.BucketName, Object: srcPath}
	dst := minio.CopyDestOptions{Bucket: a.config.BucketName, Object: dstPath}

	if _, err := a.client.CopyObject(ctx, dst, src); err != nil {
		return fmt.Errorf("failed to copy object %s to %s: %w", srcPath, dstPath, err)
	}
	return nil
}

// Remove deletes objects, reporting every failure
func (a *Adapter) Remove(ctx context.Context, paths []string) error {
	var errs []error
	for _, path := range paths {
		if err := a.client.RemoveObject(ctx, a.config.BucketName, path, minio.RemoveObjectOptions{}); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete object %s: %w", path, err))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	a.logger.Info("objects deleted", "count", len(paths), "bucket", a.config.BucketName)
	return nil
}

// SignedURL generates a fresh time-limited download URL for an object
func (a *Adapter) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, *time.Time, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, path, ttl, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	expiresAt := time.Now().Add(ttl)
	return presignedURL.String(), &expiresAt, nil
}

// List returns the paths of all objects under a prefix
func (a *Adapter) List(ctx context.Context, prefix string) ([]string, error) {
	var paths []string
	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}
		paths = append(paths, object.Key)
	}
	return paths, nil
}

func (a *Adapter) publicURL(path string) string {
	base := a.config.PublicBaseURL
	if base == "" {
		scheme := "http"
		if a.config.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, a.config.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), a.config.BucketName, path)
}
