// Package storage persists uploaded photo bytes under a caller-chosen object
// name. Backends: local disk and S3-compatible object storage.
package storage

import (
	"context"
	"io"
)

type Store interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
}

type Fake struct {
	SaveFn func(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
}

func (f *Fake) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if f.SaveFn != nil {
		return f.SaveFn(ctx, name, r, size, contentType)
	}
	panic("unexpected Save")
}
