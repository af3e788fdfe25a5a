// Package clickhouse stores recorded meter data in ClickHouse and serves it back as a
// store source.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// DefaultBlocksLimit caps the number of blocks returned by Blocks.
const DefaultBlocksLimit = 1000

type Repository struct {
	conn        Conn
	metrics     Metrics
	loc         *time.Location
	blocksLimit uint64
}

// Option customizes a Repository.
type Option func(*Repository)

// WithLocation sets the time zone block dates and heatmap days are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(r *Repository) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithBlocksLimit overrides DefaultBlocksLimit.
func WithBlocksLimit(limit uint64) Option {
	return func(r *Repository) {
		if limit > 0 {
			r.blocksLimit = limit
		}
	}
}

func NewRepository(dsn string, metrics Metrics, opts ...Option) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return newRepository(nativeConn{conn: conn}, metrics, opts...), nil
}

func newRepository(conn Conn, metrics Metrics, opts ...Option) *Repository {
	r := &Repository{
		conn:        conn,
		metrics:     metrics,
		loc:         time.UTC,
		blocksLimit: DefaultBlocksLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

// nativeConn adapts driver.Conn to Conn.
type nativeConn struct {
	conn driver.Conn
}

func (c nativeConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, query, args...)
}

func (c nativeConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c nativeConn) Close() error {
	return c.conn.Close()
}
