package store

import (
	"context"
	"fmt"

	"touchline/internal/career"
)

// Options selects and configures a snapshot backend.
type Options struct {
	Driver        string // "postgres", "redis" or "file"
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	FilePath      string
}

// Open builds the configured backend. The returned closer is always
// safe to call.
func Open(ctx context.Context, opts Options) (career.SnapshotStore, func(), error) {
	switch opts.Driver {
	case "postgres":
		pg, err := OpenPostgres(ctx, opts.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case "redis":
		r, err := OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	case "file", "":
		f, err := OpenFile(opts.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
