package cache

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// ErrMiss is returned by Store.Get when the key is absent.
var ErrMiss = errors.New("cache miss")

type (
	// Store is a byte-oriented key/value store with expiry.
	Store interface {
		Get(ctx context.Context, key string) ([]byte, error)
		Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	}
	Metrics interface {
		ObserveLookup(hit bool, err error)
	}
)
