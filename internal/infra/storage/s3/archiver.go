package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"innsync/internal/domain/channels"
)

// Archiver keeps a copy of every outbound channel payload in an
// S3-compatible bucket, keyed by date, channel and batch id, for audit and
// replay of disputed syncs.
type Archiver struct {
	bucket         string
	client         *minio.Client
	logger         *slog.Logger
	bucketInitOnce sync.Once
	bucketInitErr  error
}

func NewArchiver(endpoint string, useSSL bool, accessKey, secretKey, bucket string, logger *slog.Logger) (*Archiver, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("s3: endpoint is required")
	}
	if bucket = strings.TrimSpace(bucket); bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}
	endpoint = strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(strings.TrimSpace(accessKey), strings.TrimSpace(secretKey), ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("s3: create client: %w", err)
	}
	return &Archiver{bucket: bucket, client: client, logger: logger}, nil
}

func (a *Archiver) Archive(ctx context.Context, batchID string, p channels.Payload) error {
	if err := a.ensureBucket(ctx); err != nil {
		return err
	}
	key := fmt.Sprintf("sync/%s/%s/%s%s", time.Now().UTC().Format("2006-01-02"), p.Channel, batchID, extensionFor(p.ContentType))
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(p.Body), int64(len(p.Body)), minio.PutObjectOptions{
		ContentType: p.ContentType,
	})
	if err != nil {
		return fmt.Errorf("s3: put object: %w", err)
	}
	if a.logger != nil {
		a.logger.Debug("payload archived", "bucket", a.bucket, "key", key, "bytes", len(p.Body))
	}
	return nil
}

func (a *Archiver) ensureBucket(ctx context.Context) error {
	a.bucketInitOnce.Do(func() {
		exists, err := a.client.BucketExists(ctx, a.bucket)
		if err != nil {
			a.bucketInitErr = fmt.Errorf("s3: check bucket: %w", err)
			return
		}
		if exists {
			return
		}
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			a.bucketInitErr = fmt.Errorf("s3: make bucket: %w", err)
		}
	})
	return a.bucketInitErr
}

func extensionFor(contentType string) string {
	if strings.Contains(contentType, "xml") {
		return ".xml"
	}
	if strings.Contains(contentType, "json") {
		return ".json"
	}
	return ".bin"
}
