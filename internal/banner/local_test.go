package banner

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestLocalBackendStore(t *testing.T) {
	fsys := afero.NewMemMapFs()
	backend := NewLocalBackend(fsys, "public/uploads")
	backend.now = func() time.Time { return time.UnixMilli(1700000000000) }

	ref, err := backend.Store(context.Background(), Upload{
		Filename:    "banner.png",
		ContentType: "image/png",
		Size:        4,
		Reader:      strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("store: %v", err)
	}

	if ref.Kind != KindLocal {
		t.Fatalf("kind = %v, want KindLocal", ref.Kind)
	}
	if ref.Value != "1700000000000-banner.png" {
		t.Fatalf("reference = %q", ref.Value)
	}

	content, err := afero.ReadFile(fsys, "public/uploads/1700000000000-banner.png")
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(content) != "data" {
		t.Fatalf("stored content = %q", content)
	}
}

func TestLocalBackendStripsPathFromFilename(t *testing.T) {
	fsys := afero.NewMemMapFs()
	backend := NewLocalBackend(fsys, "public/uploads")
	backend.now = func() time.Time { return time.UnixMilli(42) }

	ref, err := backend.Store(context.Background(), Upload{
		Filename: "../../etc/passwd.png",
		Reader:   strings.NewReader("x"),
	})
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	if ref.Value != "42-passwd.png" {
		t.Fatalf("reference = %q, directory parts not stripped", ref.Value)
	}
}
