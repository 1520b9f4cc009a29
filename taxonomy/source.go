package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/myjobmatch/skillgap/storage"
)

// Fetcher reads a document from a remote URI
type Fetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

// Load resolves the taxonomy to serve.
//
// A non-empty source is required to load: it is read from disk (plain path or
// file://) or through fetcher for gs://, s3://, firestore:// and http(s)://.
// With no source, fallbackFile is used when it exists and the built-in
// default otherwise.
func Load(ctx context.Context, source, fallbackFile string, fetcher Fetcher) (*Taxonomy, error) {
	if source == "" {
		if fallbackFile != "" {
			data, err := os.ReadFile(fallbackFile)
			switch {
			case err == nil:
				log.Printf("[Taxonomy] Loading %s", fallbackFile)
				return parseFrom(fallbackFile, data)
			case !errors.Is(err, fs.ErrNotExist):
				return nil, fmt.Errorf("failed to read taxonomy file %s: %w", fallbackFile, err)
			}
		}
		log.Println("[Taxonomy] Using built-in taxonomy")
		return Default()
	}

	if storage.IsRemote(source) {
		if fetcher == nil {
			return nil, fmt.Errorf("no fetcher configured for %s", source)
		}
		log.Printf("[Taxonomy] Fetching %s", source)
		data, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
		return parseFrom(source, data)
	}

	path := storage.LocalPath(source)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}
	log.Printf("[Taxonomy] Loading %s", path)
	return parseFrom(path, data)
}

func parseFrom(origin string, data []byte) (*Taxonomy, error) {
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy %s: %w", origin, err)
	}
	log.Printf("[Taxonomy] Loaded %d roles from %s", len(t.roles), origin)
	return t, nil
}
