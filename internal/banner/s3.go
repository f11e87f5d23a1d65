package banner

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Options carries connection settings for an S3-compatible object store.
type S3Options struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Bucket          string
	// PublicURL is the base URL banners are reachable under. When empty the
	// endpoint itself is used.
	PublicURL string
}

// S3Backend stores banners in an S3-compatible bucket and hands out public
// object URLs as references. The bucket is expected to allow anonymous reads.
type S3Backend struct {
	client    *minio.Client
	bucket    string
	publicURL string
	now       func() time.Time
}

// NewS3Backend initializes the client and ensures the target bucket exists.
func NewS3Backend(opts S3Options) (*S3Backend, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", opts.Bucket, err)
		}
	}

	publicURL := strings.TrimSuffix(opts.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + opts.Endpoint
	}

	return &S3Backend{
		client:    client,
		bucket:    opts.Bucket,
		publicURL: publicURL,
		now:       time.Now,
	}, nil
}

// Store puts the banner under a timestamped key and returns its public URL.
func (b *S3Backend) Store(ctx context.Context, up Upload) (Reference, error) {
	if !formatAllowed(up.Filename) {
		return Reference{}, fmt.Errorf("%w: format %q not allowed", ErrInvalidUpload, filepath.Ext(up.Filename))
	}

	key := fmt.Sprintf("banners/%d-%s", b.now().UnixMilli(), filepath.Base(up.Filename))
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := b.client.PutObject(ctx, b.bucket, key, up.Reader, up.Size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return Reference{}, fmt.Errorf("put object %q: %w", key, err)
	}

	return Reference{Kind: KindRemote, Value: fmt.Sprintf("%s/%s/%s", b.publicURL, b.bucket, key)}, nil
}
