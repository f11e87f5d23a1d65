package banner

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
)

// MaxUploadBytes is the banner size cap.
const MaxUploadBytes = 10 << 20

var (
	// ErrInvalidUpload indicates a missing file, a non-image declared type or
	// a format outside the hosted-storage whitelist.
	ErrInvalidUpload = errors.New("invalid upload")
	// ErrTooLarge indicates an upload over MaxUploadBytes.
	ErrTooLarge = errors.New("file too large")
)

// Upload carries one incoming banner file.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Backend stores a banner and returns its reference. Backends do not fall
// back to one another: a failed store is the caller's upload failure.
type Backend interface {
	Store(ctx context.Context, up Upload) (Reference, error)
}

// allowedRemoteFormats is the format whitelist enforced by hosted backends.
var allowedRemoteFormats = []string{"jpg", "jpeg", "png", "gif", "webp"}

func formatAllowed(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, allowed := range allowedRemoteFormats {
		if ext == allowed {
			return true
		}
	}
	return false
}
