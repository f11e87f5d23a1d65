package banner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// cloudinaryFolder is the logical folder all banners live under on the CDN.
const cloudinaryFolder = "hr-website"

// cloudinaryTransformation downscales to at most 1000x1000 preserving aspect
// ratio; c_limit never upscales.
const cloudinaryTransformation = "c_limit,w_1000,h_1000"

// CloudinaryBackend uploads banners to the Cloudinary image CDN and hands out
// fully-qualified URLs as references.
type CloudinaryBackend struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryBackend returns a backend for the given Cloudinary account.
func NewCloudinaryBackend(cloudName, apiKey, apiSecret string) (*CloudinaryBackend, error) {
	client, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary client: %w", err)
	}
	return &CloudinaryBackend{client: client}, nil
}

// Store uploads the banner and returns its secure URL. Formats outside the
// whitelist are rejected before any bytes leave the process.
func (b *CloudinaryBackend) Store(ctx context.Context, up Upload) (Reference, error) {
	if !formatAllowed(up.Filename) {
		return Reference{}, fmt.Errorf("%w: format %q not allowed", ErrInvalidUpload, filepath.Ext(up.Filename))
	}

	res, err := b.client.Upload.Upload(ctx, up.Reader, uploader.UploadParams{
		Folder:         cloudinaryFolder,
		Transformation: cloudinaryTransformation,
	})
	if err != nil {
		return Reference{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return Reference{}, fmt.Errorf("cloudinary upload: %w", errors.New(res.Error.Message))
	}

	return Reference{Kind: KindRemote, Value: res.SecureURL}, nil
}
