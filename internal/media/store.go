package media

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

var ErrStorageDisabled = httperr.ErrUnavailable("avatar_storage_disabled")

// Store persists public objects and returns the URL they are served from.
type Store interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewS3Store(cfg *config.Config) *S3Store {
	opts := s3.Options{
		Region:       cfg.S3Region,
		UsePathStyle: cfg.S3Endpoint != "",
	}
	if cfg.S3AccessKey != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		)
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
	}

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &S3Store{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

// DisabledStore answers every upload with ErrStorageDisabled.
type DisabledStore struct{}

func (DisabledStore) Put(context.Context, string, string, []byte) (string, error) {
	return "", ErrStorageDisabled
}

// AvatarKey returns a fresh object key so CDN caches never serve a stale avatar.
func AvatarKey(masterID uint) string {
	return fmt.Sprintf("masters/%d/avatar-%s.webp", masterID, uuid.NewString())
}

var (
	_ Store = (*S3Store)(nil)
	_ Store = DisabledStore{}
)
