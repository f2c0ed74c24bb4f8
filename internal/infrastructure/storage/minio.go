package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/engagement-tracker/internal/usecase/engagement"
	"github.com/johnquangdev/engagement-tracker/pkg/config"
)

// reportContentType is the content type of archived engagement reports
const reportContentType = "application/json"

// MinIOClient stores engagement reports in a MinIO (or S3 compatible) bucket
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	urlExpiry time.Duration
}

var _ engagement.ReportArchiver = (*MinIOClient)(nil)

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	// Initialize MinIO client
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:    minioClient,
		bucket:    cfg.BucketName,
		urlExpiry: 24 * time.Hour,
	}

	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket if it does not exist. Reports stay private
// and are shared through presigned URLs.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// PutReport uploads a serialized report and returns a presigned URL for it
func (m *MinIOClient) PutReport(ctx context.Context, key string, body []byte) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: reportContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	return m.GetFileURL(ctx, key)
}

// ListReports lists stored reports whose key starts with prefix
func (m *MinIOClient) ListReports(ctx context.Context, prefix string) ([]engagement.StoredReport, error) {
	var reports []engagement.StoredReport

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}

		url, err := m.GetFileURL(ctx, object.Key)
		if err != nil {
			return nil, err
		}
		reports = append(reports, engagement.StoredReport{
			Key:          object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
			Location:     url,
		})
	}

	return reports, nil
}

// GetFileURL gets a presigned URL for downloading an object
func (m *MinIOClient) GetFileURL(ctx context.Context, objectName string) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, m.urlExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return url.String(), nil
}

// Ping checks that the bucket is reachable
func (m *MinIOClient) Ping(ctx context.Context) error {
	if _, err := m.client.BucketExists(ctx, m.bucket); err != nil {
		return fmt.Errorf("failed to reach bucket: %w", err)
	}
	return nil
}
