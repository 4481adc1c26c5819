package interfaces

import (
	"context"
	"time"
)

// IReportCache is an optional read-through cache for report queries.
// Get returns (nil, nil) on a miss.

type IReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
