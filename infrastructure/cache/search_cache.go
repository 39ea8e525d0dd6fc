package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tagtube/domain/model"
	"tagtube/domain/repository"
	"tagtube/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// Store is the part of a Redis client the search cache needs.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// SearchCache keeps successful search results in Redis for a while.
// Failures are never cached and Redis errors fall through to the
// wrapped search.
type SearchCache struct {
	next  repository.IVideoSearch
	store Store
	ttl   time.Duration
}

func NewSearchCache(next repository.IVideoSearch, store Store, ttl time.Duration) repository.IVideoSearch {
	if store == nil || ttl <= 0 {
		return next
	}
	return &SearchCache{next: next, store: store, ttl: ttl}
}

func KeywordKey(query string, maxResults int) string {
	return fmt.Sprintf("search:kw:%d:%s", maxResults, query)
}

func URLKey(url string) string {
	return "search:url:" + url
}

func (c *SearchCache) Search(ctx context.Context, query string, maxResults int) ([]model.RawResult, error) {
	return c.cached(ctx, KeywordKey(query, maxResults), func() ([]model.RawResult, error) {
		return c.next.Search(ctx, query, maxResults)
	})
}

func (c *SearchCache) SearchByURL(ctx context.Context, url string) ([]model.RawResult, error) {
	return c.cached(ctx, URLKey(url), func() ([]model.RawResult, error) {
		return c.next.SearchByURL(ctx, url)
	})
}

func (c *SearchCache) cached(ctx context.Context, key string, load func() ([]model.RawResult, error)) ([]model.RawResult, error) {
	payload, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var results []model.RawResult
		jsonErr := json.Unmarshal(payload, &results)
		if jsonErr == nil {
			logger.GetLogger().WithField("key", key).Debug("Search cache hit")
			return results, nil
		}
		logger.GetLogger().WithFields(map[string]interface{}{"key": key, "error": jsonErr}).Warn("Discarding unreadable cache entry")
	case !errors.Is(err, redis.Nil):
		logger.GetLogger().WithFields(map[string]interface{}{"key": key, "error": err}).Warn("Search cache unavailable")
	}

	results, err := load()
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"key": key, "error": err}).Warn("Search results not cacheable")
		return results, nil
	}
	if err := c.store.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{"key": key, "error": err}).Warn("Failed to write search cache")
	}
	return results, nil
}
