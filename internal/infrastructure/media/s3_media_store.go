package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"fixsync/internal/infrastructure/logger"
	"fixsync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrMissingMediaBucket = errors.New("missing MEDIA_BUCKET")

type s3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3MediaStore stores job photos and videos in an S3 bucket and returns
// "s3://bucket/key" references.
type S3MediaStore struct {
	client s3PutAPI
	bucket string
}

var _ interfaces.IMediaStore = (*S3MediaStore)(nil)

// NewS3MediaStoreFromEnv builds the store from env vars.
//
// Supported env vars:
//   - MEDIA_BUCKET (required)
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, enables path-style addressing)
func NewS3MediaStoreFromEnv(ctx context.Context) (*S3MediaStore, error) {
	bucket := os.Getenv("MEDIA_BUCKET")
	if bucket == "" {
		return nil, ErrMissingMediaBucket
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(getenvDefault("AWS_REGION", "us-east-1")),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("[media][s3] client initialized bucket=%s endpoint=%q", bucket, endpoint)
	return &S3MediaStore{client: client, bucket: bucket}, nil
}

func (s *S3MediaStore) Put(ctx context.Context, jobID, filename, contentType string, data []byte) (string, error) {
	key := objectKey(jobID, filename)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		logger.Errorf("[media][s3] put failed job_id=%s key=%s err=%v", jobID, key, err)
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

func objectKey(jobID, filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return fmt.Sprintf("jobs/%s/%s-%s", jobID, uuid.NewString(), name)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
