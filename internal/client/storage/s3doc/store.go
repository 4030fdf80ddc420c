// Package s3doc stores remote documents as JSON objects in an
// S3-compatible bucket.
package s3doc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
)

//go:generate moq -out objectapi_mock.go . ObjectAPI

const contentTypeJSON = "application/json"

// ObjectAPI is the part of *s3.Client the store uses.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Config describes the bucket. Endpoint is set for S3-compatible services (MinIO).
type Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	Prefix          string `mapstructure:"prefix"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// Store is a remote.DocumentStore over S3 objects.
type Store struct {
	client ObjectAPI
	bucket string
	prefix string
}

var _ remote.DocumentStore = (*Store)(nil)

// NewClient builds an S3 client from cfg. Static credentials are used
// when given, otherwise the default AWS chain applies.
func NewClient(ctx context.Context, cfg Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO и подобные требуют path-style адресацию
			o.UsePathStyle = true
		}
	}), nil
}

// New creates a store writing under prefix in bucket.
func New(client ObjectAPI, bucket, prefix string) *Store {
	return &Store{client: client, bucket: bucket, prefix: prefix}
}

// objectKey maps a document path to its object key.
func (s *Store) objectKey(docPath string) string {
	return path.Join(s.prefix, docPath) + ".json"
}

// GetDocument implements remote.DocumentStore.
func (s *Store) GetDocument(ctx context.Context, docPath string) (json.RawMessage, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(docPath)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, remote.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get object %s: %w", docPath, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", docPath, err)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("object %s is not valid JSON", docPath)
	}
	return data, nil
}

// PutDocument implements remote.DocumentStore.
func (s *Store) PutDocument(ctx context.Context, docPath string, value json.RawMessage) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(docPath)),
		Body:          bytes.NewReader(value),
		ContentLength: aws.Int64(int64(len(value))),
		ContentType:   aws.String(contentTypeJSON),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", docPath, err)
	}
	return nil
}

// DeleteDocument implements remote.DocumentStore. S3 deletes are idempotent.
func (s *Store) DeleteDocument(ctx context.Context, docPath string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(docPath)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", docPath, err)
	}
	return nil
}
