package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	internalConfig "github.com/sefazor/textback-landing/internal/config"
)

// CloudflareStorage serves page assets from an R2 bucket through the S3 API.
type CloudflareStorage struct {
	client *s3.Client
	bucket string
	prefix string
	logger *zap.Logger
}

func NewCloudflareStorage(ctx context.Context, cfg internalConfig.R2Config, logger *zap.Logger) (*CloudflareStorage, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.EndpointURL())
		o.UsePathStyle = true
	})

	return &CloudflareStorage{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger.Named("r2"),
	}, nil
}

func (s *CloudflareStorage) objectKey(key string) string {
	return s.prefix + strings.TrimPrefix(key, "/")
}

// Get opens an asset. Missing objects return ErrNotFound.
func (s *CloudflareStorage) Get(ctx context.Context, key string) (*Asset, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		s.logger.Error("failed to fetch asset", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch %s from R2: %w", key, err)
	}

	return &Asset{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

// Upload stores an asset under the configured prefix.
func (s *CloudflareStorage) Upload(ctx context.Context, key string, src io.Reader, contentType string) error {
	buf, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read asset content: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          bytes.NewReader(buf),
		ContentLength: aws.Int64(int64(len(buf))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}

	s.logger.Info("asset uploaded", zap.String("key", key), zap.Int("size", len(buf)))
	return nil
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
