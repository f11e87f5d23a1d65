package banner

import "testing"

func TestParseReference(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind Kind
	}{
		{"https url", "https://res.cloudinary.com/demo/image/upload/v1/hr-website/a.jpg", KindRemote},
		{"http url", "http://minio.local/banners/b.png", KindRemote},
		{"bare filename", "1700000000000-banner.png", KindLocal},
		{"filename with slash-like text", "httpdocs.png", KindLocal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := parseReference(tt.in)
			if ref.Kind != tt.kind {
				t.Fatalf("kind = %v, want %v", ref.Kind, tt.kind)
			}
			if ref.String() != tt.in {
				t.Fatalf("value = %q, want %q", ref.String(), tt.in)
			}
		})
	}
}

func TestReferenceURL(t *testing.T) {
	remote := Reference{Kind: KindRemote, Value: "https://cdn.example.com/a.jpg"}
	if got := remote.renderURL("/uploads"); got != remote.Value {
		t.Fatalf("remote URL rewritten: %q", got)
	}

	local := Reference{Kind: KindLocal, Value: "123-a.jpg"}
	if got := local.renderURL("/uploads/"); got != "/uploads/123-a.jpg" {
		t.Fatalf("local URL = %q", got)
	}
}

func TestFormatAllowed(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.gif", "e.webp"} {
		if !formatAllowed(name) {
			t.Fatalf("%q should be allowed", name)
		}
	}
	for _, name := range []string{"a.svg", "b.pdf", "noext", "c.png.exe"} {
		if formatAllowed(name) {
			t.Fatalf("%q should be rejected", name)
		}
	}
}
