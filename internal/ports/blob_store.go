package ports

import "context"

// BlobStore is a flat key-value store of string blobs. Get returns
// domain.ErrKeyNotFound when the key is absent.
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
