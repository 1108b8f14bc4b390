// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"devlens_backend/internal/feature/analysis/domain/entity"
	"devlens_backend/internal/feature/analysis/usecase"
)

// CachingReportRepository decorates a ReportRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository.
type CachingReportRepository struct {
	inner     usecase.ReportRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingReportRepository decorates a ReportRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "reports".
func NewCachingReportRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ReportRepository, namespace string) *CachingReportRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "reports"
	}
	return &CachingReportRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Compile-time check that the decorator still satisfies the interface.
var _ usecase.ReportRepository = (*CachingReportRepository)(nil)

// Create persists the report and invalidates the cached listing of its
// repository.
func (c *CachingReportRepository) Create(ctx context.Context, report *entity.Report) error {
	// First write to the underlying repository (MySQL)
	if err := c.inner.Create(ctx, report); err != nil {
		return err
	}
	// Exit early if Redis is not configured
	if c.rdb == nil {
		return nil
	}

	// Invalidate the listing for this repository (best effort)
	_ = c.deleteByPattern(ctx, c.cacheKeyPrefix(report.RepoID)+"*")
	return nil
}

// ListByRepo retrieves reports, checking cache first then falling back to
// the database.
func (c *CachingReportRepository) ListByRepo(ctx context.Context, repoID uint) ([]entity.Report, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByRepo(ctx, repoID)
	}

	key := c.cacheKey(repoID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Report
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByRepo(ctx, repoID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a repository's report listing.
func (c *CachingReportRepository) cacheKey(repoID uint) string {
	return fmt.Sprintf("%s:%d:list", c.namespace, repoID)
}

// cacheKeyPrefix generates a prefix for invalidating a repository's entries.
func (c *CachingReportRepository) cacheKeyPrefix(repoID uint) string {
	return fmt.Sprintf("%s:%d:", c.namespace, repoID)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingReportRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
