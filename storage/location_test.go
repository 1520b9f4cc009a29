package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		uri    string
		scheme string
		host   string
		path   string
	}{
		{"gs://skills-bucket/taxonomies/default.yaml", "gs", "skills-bucket", "taxonomies/default.yaml"},
		{"s3://skills/taxonomy.json", "s3", "skills", "taxonomy.json"},
		{"firestore://taxonomies/current", "firestore", "taxonomies", "current"},
		{"https://example.com/taxonomy.yaml", "https", "example.com", "taxonomy.yaml"},
		{"GS://Bucket/obj", "gs", "Bucket", "obj"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			loc, err := ParseLocation(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, loc.Scheme)
			assert.Equal(t, tt.host, loc.Host)
			assert.Equal(t, tt.path, loc.Path)
		})
	}
}

func TestParseLocationErrors(t *testing.T) {
	for _, uri := range []string{
		"gs://bucket-only",
		"s3:///key",
		"firestore://collection",
		"https:///no-host",
	} {
		_, err := ParseLocation(uri)
		assert.Error(t, err, uri)
	}

	_, err := ParseLocation("ftp://host/file")
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("gs://b/o"))
	assert.True(t, IsRemote("S3://b/o"))
	assert.True(t, IsRemote("firestore://c/d"))
	assert.True(t, IsRemote("https://example.com/t.yaml"))
	assert.False(t, IsRemote("taxonomy.yaml"))
	assert.False(t, IsRemote("file:///etc/taxonomy.yaml"))
	assert.False(t, IsRemote("/abs/path.yaml"))
}

func TestLocalPath(t *testing.T) {
	assert.Equal(t, "/etc/taxonomy.yaml", LocalPath("file:///etc/taxonomy.yaml"))
	assert.Equal(t, "taxonomy.yaml", LocalPath("taxonomy.yaml"))
}
