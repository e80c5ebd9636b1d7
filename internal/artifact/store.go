package artifact

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the S3-compatible endpoint settings for artifact uploads.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Store mirrors generated reports and screenshots into an S3-compatible
// bucket, keyed by file key. A nil *Store is a no-op so callers can keep a
// single code path whether uploads are configured or not.
type Store struct {
	client   *minio.Client
	bucket   string
	region   string
	initOnce sync.Once
	initErr  error
}

// New builds a Store from the given config.
func New(cfg Config) (*Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("artifact: endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("artifact: access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("artifact: bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("artifact: init client: %w", err)
	}
	return &Store{client: client, bucket: bucket, region: region}, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// Put uploads one artifact under <fileKey>/<name>.
func (s *Store) Put(ctx context.Context, fileKey, name string, content []byte, contentType string) error {
	if s == nil {
		return nil
	}
	fileKey = strings.TrimSpace(fileKey)
	name = strings.TrimLeft(strings.TrimSpace(name), "/")
	if fileKey == "" {
		return fmt.Errorf("artifact: file key is required")
	}
	if name == "" {
		return fmt.Errorf("artifact: name is required")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("artifact: ensure bucket: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fileKey + "/" + name
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content),
		int64(len(content)), minio.PutObjectOptions{ContentType: contentType})
	return err
}
