// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-blog/internal/config"
)

// MinioObjectStorage keeps uploads in a single MinIO (S3-compatible) bucket.
type MinioObjectStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioObjectStorage constructs a MinIO client from cfg.
func NewMinioObjectStorage(cfg config.Objects) (*MinioObjectStorage, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("minio endpoint is required")
	}
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, errors.New("minio access key and secret key are required")
	}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, errors.New("minio bucket is required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}

	return &MinioObjectStorage{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// EnsureBucket creates the configured bucket when it does not exist.
func (m *MinioObjectStorage) EnsureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("error checking bucket %q: %w", m.bucket, err)
	}
	if exists {
		return nil
	}

	return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
}

func (m *MinioObjectStorage) Put(ctx context.Context, name string, body io.Reader, size int64, contentType string) (string, error) {
	if err := validateObjectName(name); err != nil {
		return "", err
	}

	_, err := m.client.PutObject(ctx, m.bucket, name, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("error uploading object %q: %w", name, err)
	}

	return ObjectPath(name), nil
}

// Get stats the object first so that a missing key surfaces as
// [ErrObjectNotFound] instead of failing on the first read.
func (m *MinioObjectStorage) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := validateObjectName(name); err != nil {
		return nil, err
	}

	if _, err := m.client.StatObject(ctx, m.bucket, name, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("error reading object %q: %w", name, err)
	}

	return m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
}

func (m *MinioObjectStorage) Delete(ctx context.Context, name string) error {
	if err := validateObjectName(name); err != nil {
		return err
	}

	return m.client.RemoveObject(ctx, m.bucket, name, minio.RemoveObjectOptions{})
}

// Bucket returns the configured bucket name.
func (m *MinioObjectStorage) Bucket() string {
	return m.bucket
}
