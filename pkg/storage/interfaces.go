package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("asset not found")

// Asset is an opened asset body. Callers must close Body.
type Asset struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

type AssetStore interface {
	Get(ctx context.Context, key string) (*Asset, error)
	Upload(ctx context.Context, key string, src io.Reader, contentType string) error
}
