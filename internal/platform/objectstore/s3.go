// Package objectstore stores report exports in S3 or an S3-compatible bucket.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"coreid/internal/platform/config"
)

const defaultURLExpiry = 24 * time.Hour

// Object describes a stored export.
type Object struct {
	Bucket    string    `json:"bucket"`
	Key       string    `json:"key"`
	Location  string    `json:"location"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store uploads private objects and hands out presigned download links.
type S3Store struct {
	bucket    string
	prefix    string
	uploader  uploader
	presigner presigner
	expiry    time.Duration
	now       func() time.Time
}

// New builds an S3 client from the default AWS credential chain. It returns
// nil, nil when no bucket is configured.
func New(ctx context.Context, cfg config.ExportConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}
	awsCfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Store{
		bucket:    cfg.Bucket,
		prefix:    strings.Trim(cfg.KeyPrefix, "/"),
		uploader:  manager.NewUploader(client),
		presigner: s3.NewPresignClient(client),
		expiry:    defaultURLExpiry,
		now:       time.Now,
	}, nil
}

// Put uploads body under prefix/name and returns a presigned GET URL.
func (s *S3Store) Put(ctx context.Context, name, contentType string, body io.Reader) (*Object, error) {
	key := path.Join(s.prefix, name)
	out, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", key, err)
	}

	signed, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", key, err)
	}

	return &Object{
		Bucket:    s.bucket,
		Key:       key,
		Location:  out.Location,
		URL:       signed.URL,
		ExpiresAt: s.now().Add(s.expiry),
	}, nil
}
