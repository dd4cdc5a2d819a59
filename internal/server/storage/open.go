package storage

import (
	"context"
	"fmt"
)

// Snapshot backends.
const (
	TypeFile     = "file"
	TypePostgres = "postgres"
	TypeS3       = "s3"
)

// Options selects and configures a snapshot backend.
type Options struct {
	Type string
	File string
	DSN  string
	S3   S3Config
}

// Open builds the backend named by o.Type. The returned close function
// releases backend resources and is never nil.
func Open(ctx context.Context, o Options) (Snapshotter, func() error, error) {
	noop := func() error { return nil }

	switch o.Type {
	case TypeFile, "":
		return NewFileSnapshotter(o.File), noop, nil
	case TypePostgres:
		p, err := OpenPostgres(ctx, o.DSN)
		if err != nil {
			return nil, noop, err
		}
		return p, p.Close, nil
	case TypeS3:
		s, err := NewS3Snapshotter(ctx, o.S3)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage type %q", o.Type)
	}
}
