package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"doctorhub-api/internal/domain/entity"
	domainRepo "doctorhub-api/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	// Sorted set of normalized keywords scored by request count
	RedisSearchKeywordsKey = "doctorhub:search:keywords"

	redisAnalyticsTimeout = 2 * time.Second

	// Longer keywords are truncated before they are counted.
	maxKeywordRunes = 64
)

type redisSearchAnalyticsRepository struct {
	redisClient *redis.Client
}

func NewRedisSearchAnalyticsRepository(redisClient *redis.Client) domainRepo.SearchAnalyticsRepository {
	return &redisSearchAnalyticsRepository{redisClient: redisClient}
}

func (r *redisSearchAnalyticsRepository) RecordSearch(ctx context.Context, keyword string) error {
	keyword = analyticsKeyword(keyword)
	if keyword == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisAnalyticsTimeout)
	defer cancel()

	if err := r.redisClient.ZIncrBy(ctx, RedisSearchKeywordsKey, 1, keyword).Err(); err != nil {
		return fmt.Errorf("record search %q: %w", keyword, err)
	}
	return nil
}

func (r *redisSearchAnalyticsRepository) TopSearches(ctx context.Context, limit int) ([]entity.SearchStat, error) {
	ctx, cancel := context.WithTimeout(ctx, redisAnalyticsTimeout)
	defer cancel()

	entries, err := r.redisClient.ZRevRangeWithScores(ctx, RedisSearchKeywordsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("top searches: %w", err)
	}

	stats := make([]entity.SearchStat, 0, len(entries))
	for _, entry := range entries {
		query, ok := entry.Member.(string)
		if !ok {
			continue
		}
		stats = append(stats, entity.SearchStat{Query: query, Count: int64(entry.Score)})
	}
	return stats, nil
}

// analyticsKeyword lower-cases and trims keyword, keeping at most maxKeywordRunes runes.
func analyticsKeyword(keyword string) string {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if runes := []rune(keyword); len(runes) > maxKeywordRunes {
		keyword = strings.TrimSpace(string(runes[:maxKeywordRunes]))
	}
	return keyword
}

// noopSearchAnalyticsRepository is used when no Redis is configured.
type noopSearchAnalyticsRepository struct{}

func NewNoopSearchAnalyticsRepository() domainRepo.SearchAnalyticsRepository {
	return noopSearchAnalyticsRepository{}
}

func (noopSearchAnalyticsRepository) RecordSearch(ctx context.Context, keyword string) error {
	return nil
}

func (noopSearchAnalyticsRepository) TopSearches(ctx context.Context, limit int) ([]entity.SearchStat, error) {
	return []entity.SearchStat{}, nil
}
