package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/myjobmatch/skillgap/config"
)

// Source reads raw bytes from one kind of remote store
type Source interface {
	Read(ctx context.Context, loc Location) ([]byte, error)
	Close() error
}

// Opener creates a Source for a scheme
type Opener func(ctx context.Context, cfg *config.Config) (Source, error)

// Fetcher reads documents from gs://, s3://, firestore:// and http(s):// URIs.
// A client is opened for each fetch and closed afterwards; taxonomy documents
// are read once at startup so there is nothing to pool.
type Fetcher struct {
	cfg      *config.Config
	openers  map[string]Opener
	attempts int
	backoff  time.Duration
}

// NewFetcher creates a fetcher with the built-in sources registered
func NewFetcher(cfg *config.Config) *Fetcher {
	f := &Fetcher{
		cfg:      cfg,
		openers:  make(map[string]Opener),
		attempts: 3,
		backoff:  500 * time.Millisecond,
	}

	f.Register("gs", func(ctx context.Context, cfg *config.Config) (Source, error) {
		return NewCloudStorageClient(ctx, cfg)
	})
	f.Register("s3", func(ctx context.Context, cfg *config.Config) (Source, error) {
		return NewS3Client(ctx, cfg)
	})
	f.Register("firestore", func(ctx context.Context, cfg *config.Config) (Source, error) {
		return NewFirestoreClient(ctx, cfg)
	})
	httpOpener := func(ctx context.Context, cfg *config.Config) (Source, error) {
		return NewHTTPSource(cfg), nil
	}
	f.Register("http", httpOpener)
	f.Register("https", httpOpener)

	return f
}

// Register installs or replaces the opener for scheme
func (f *Fetcher) Register(scheme string, opener Opener) {
	f.openers[scheme] = opener
}

// WithRetry overrides the attempt count and base backoff
func (f *Fetcher) WithRetry(attempts int, backoff time.Duration) *Fetcher {
	if attempts < 1 {
		attempts = 1
	}
	f.attempts = attempts
	f.backoff = backoff
	return f
}

// Fetch reads the document at uri, retrying transient failures
func (f *Fetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	loc, err := ParseLocation(uri)
	if err != nil {
		return nil, err
	}

	opener, ok := f.openers[loc.Scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
	}

	if f.cfg != nil && f.cfg.HTTPTimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(f.cfg.HTTPTimeoutSeconds)*time.Second)
		defer cancel()
	}

	source, err := opener(ctx, f.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s source: %w", loc.Scheme, err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			log.Printf("[Storage] Failed to close %s source: %v", loc.Scheme, err)
		}
	}()

	attempt := 0
	data, err := retry(ctx, f.attempts, f.backoff, func() ([]byte, error) {
		attempt++
		data, err := source.Read(ctx, loc)
		if err != nil {
			log.Printf("[Storage] Read %s failed (attempt %d/%d): %v", loc, attempt, f.attempts, err)
		}
		return data, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", loc, err)
	}

	log.Printf("[Storage] Fetched %s (%d bytes)", loc, len(data))
	return data, nil
}
