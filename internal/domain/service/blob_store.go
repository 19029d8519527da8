package service

import "context"

// BlobStore is the remote object storage holding images.
type BlobStore interface {
	// Fetch reads the object at locator. A missing object is
	// ErrStorageNotFound, any other failure ErrStorageUnavailable.
	Fetch(ctx context.Context, locator string) ([]byte, error)

	// Put writes data at path and returns the locator of the new object.
	Put(ctx context.Context, data []byte, path string) (string, error)

	Close() error
}

// BlobCache is the device-local image cache keyed by logical file name.
type BlobCache interface {
	// Read returns the cached bytes. ok is false on a miss.
	Read(ctx context.Context, name string) (data []byte, ok bool, err error)

	Write(ctx context.Context, name string, data []byte) error

	Close() error
}
