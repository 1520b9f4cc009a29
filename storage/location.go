package storage

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	// ErrNotFound is returned when the object or document does not exist
	ErrNotFound = errors.New("object not found")
	// ErrUnsupportedScheme is returned for URIs no source can read
	ErrUnsupportedScheme = errors.New("unsupported source scheme")
)

// Location is a parsed remote source URI.
//
//	gs://bucket/path/object.yaml      Host=bucket     Path=path/object.yaml
//	s3://bucket/key.yaml              Host=bucket     Path=key.yaml
//	firestore://collection/document   Host=collection Path=document
//	https://example.com/taxonomy.yaml Raw is used as-is
type Location struct {
	Scheme string
	Host   string
	Path   string
	Raw    string
}

func (l Location) String() string {
	return l.Raw
}

// IsRemote reports whether uri names a remote source rather than a local file
func IsRemote(uri string) bool {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok {
		return false
	}
	switch strings.ToLower(scheme) {
	case "gs", "s3", "firestore", "http", "https":
		return true
	}
	return false
}

// LocalPath strips an optional file:// prefix
func LocalPath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}

// ParseLocation parses a remote source URI
func ParseLocation(uri string) (Location, error) {
	u, err := url.Parse(strings.TrimSpace(uri))
	if err != nil {
		return Location{}, fmt.Errorf("failed to parse source %q: %w", uri, err)
	}

	loc := Location{
		Scheme: strings.ToLower(u.Scheme),
		Host:   u.Host,
		Path:   strings.TrimPrefix(u.Path, "/"),
		Raw:    u.String(),
	}

	switch loc.Scheme {
	case "http", "https":
		if loc.Host == "" {
			return Location{}, fmt.Errorf("source %q has no host", uri)
		}
	case "gs", "s3":
		if loc.Host == "" || loc.Path == "" {
			return Location{}, fmt.Errorf("source %q must look like %s://bucket/object", uri, loc.Scheme)
		}
	case "firestore":
		if loc.Host == "" || loc.Path == "" {
			return Location{}, fmt.Errorf("source %q must look like firestore://collection/document", uri)
		}
	default:
		return Location{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	return loc, nil
}
