package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/myjobmatch/skillgap/config"
)

// taxonomyDocument is the Firestore shape of a stored taxonomy. The YAML or
// JSON text is kept verbatim so role and skill order survive.
type taxonomyDocument struct {
	Content   string    `firestore:"content"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("PROJECT_ID is required for Firestore")
	}

	client, err := firestore.NewClient(ctx, cfg.ProjectID, googleOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// Read returns the content field of the document named by a firestore:// location
func (f *FirestoreClient) Read(ctx context.Context, loc Location) ([]byte, error) {
	content, err := f.GetContent(ctx, loc.Host, loc.Path)
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

// GetContent retrieves the content field of collection/docPath
func (f *FirestoreClient) GetContent(ctx context.Context, collection, docPath string) (string, error) {
	docRef := f.client.Doc(collection + "/" + docPath)
	if docRef == nil {
		return "", fmt.Errorf("invalid document path %s/%s", collection, docPath)
	}

	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", fmt.Errorf("firestore://%s/%s: %w", collection, docPath, ErrNotFound)
		}
		return "", fmt.Errorf("failed to get document: %w", err)
	}

	var stored taxonomyDocument
	if err := doc.DataTo(&stored); err != nil {
		return "", fmt.Errorf("failed to parse document data: %w", err)
	}
	if strings.TrimSpace(stored.Content) == "" {
		return "", fmt.Errorf("document %s/%s has no content field", collection, docPath)
	}

	if !stored.UpdatedAt.IsZero() {
		log.Printf("[Firestore] Document %s/%s last updated %s", collection, docPath, stored.UpdatedAt.Format(time.RFC3339))
	}

	return stored.Content, nil
}
