package banner

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// LocalBackend writes banners into a directory on disk and hands out bare
// filenames as references. Filenames carry a millisecond timestamp prefix to
// resist collisions between uploads sharing an original name.
type LocalBackend struct {
	fs  afero.Fs
	dir string
	now func() time.Time
}

// NewLocalBackend returns a LocalBackend storing files under dir.
func NewLocalBackend(fsys afero.Fs, dir string) *LocalBackend {
	return &LocalBackend{fs: fsys, dir: dir, now: time.Now}
}

// Store writes the upload to disk and returns its filename reference.
func (b *LocalBackend) Store(_ context.Context, up Upload) (Reference, error) {
	if err := b.fs.MkdirAll(b.dir, 0o755); err != nil {
		return Reference{}, fmt.Errorf("create uploads dir: %w", err)
	}

	name := fmt.Sprintf("%d-%s", b.now().UnixMilli(), filepath.Base(up.Filename))
	f, err := b.fs.Create(filepath.Join(b.dir, name))
	if err != nil {
		return Reference{}, fmt.Errorf("create banner file %q: %w", name, err)
	}
	if _, err := io.Copy(f, up.Reader); err != nil {
		f.Close()
		return Reference{}, fmt.Errorf("write banner file %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return Reference{}, fmt.Errorf("close banner file %q: %w", name, err)
	}

	return Reference{Kind: KindLocal, Value: name}, nil
}
