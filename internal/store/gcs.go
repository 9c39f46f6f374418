// Package store persists generator output: finished level packs to
// Google Cloud Storage, and a request/result audit trail to Postgres.
// Both are optional; a server run with neither configured simply skips
// persistence.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/storage"
)

// LevelPackStore uploads encoded level JSON to a fixed GCS bucket.
type LevelPackStore struct {
	bucket string
}

// NewLevelPackStore builds a LevelPackStore targeting bucket.
func NewLevelPackStore(bucket string) *LevelPackStore {
	return &LevelPackStore{bucket: bucket}
}

// Put uploads items, marshaled as JSON, under the given level id.
func (s *LevelPackStore) Put(ctx context.Context, levelID string, items interface{}) error {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	object := client.Bucket(s.bucket).Object(fmt.Sprintf("%s.json", levelID))
	writer := object.NewWriter(ctx)

	if err := json.NewEncoder(writer).Encode(items); err != nil {
		writer.Close()
		return fmt.Errorf("encode level pack: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close storage writer: %w", err)
	}
	return nil
}
