package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Aadi-1821/RustynKart-backend/internal/config"
)

// S3Client is the subset of the S3 API the uploader needs. Narrowed for test
// doubles.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader stores product images in an S3 bucket and returns their public URL.
type Uploader struct {
	client  S3Client
	bucket  string
	baseURL string
}

// NewUploader builds an uploader from configuration. It returns nil without
// error when no bucket is configured so the product service can skip image
// handling in minimal deployments.
func NewUploader(ctx context.Context, cfg config.MediaConfig) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &Uploader{client: client, bucket: cfg.Bucket, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// NewUploaderWithClient wires a pre-built client, used by tests.
func NewUploaderWithClient(client S3Client, bucket, baseURL string) *Uploader {
	return &Uploader{client: client, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// UploadImage stores one multipart file under a generated key and returns the
// public URL. A nil file yields an empty URL, mirroring optional image slots.
func (u *Uploader) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if u == nil || file == nil {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := "products/" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", file.Filename, err)
	}

	return u.baseURL + "/" + key, nil
}
