package banner

import "strings"

// Kind distinguishes where a stored banner lives.
type Kind int

const (
	// KindLocal references are bare filenames under the uploads directory.
	KindLocal Kind = iota
	// KindRemote references are complete URLs on a hosted image service.
	KindRemote
)

// Reference identifies a stored banner image. The wire contract carries only
// the opaque string value; the kind tag keeps callers from guessing by
// inspecting string contents.
type Reference struct {
	Kind  Kind
	Value string
}

// parseReference classifies an opaque reference string by URL scheme.
func parseReference(s string) Reference {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return Reference{Kind: KindRemote, Value: s}
	}
	return Reference{Kind: KindLocal, Value: s}
}

// String returns the wire form of the reference.
func (r Reference) String() string { return r.Value }

// renderURL returns a renderable URL for the reference, joining local
// filenames onto the given path prefix. Remote references are returned as-is.
// Rendering itself happens client-side; this pins down the classification
// rules the frontend relies on.
func (r Reference) renderURL(prefix string) string {
	if r.Kind == KindRemote {
		return r.Value
	}
	return strings.TrimSuffix(prefix, "/") + "/" + r.Value
}
