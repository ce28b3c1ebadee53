package repository

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisSearchAnalytics_EmptyKeywordIsIgnored(t *testing.T) {
	repo := NewRedisSearchAnalyticsRepository(unreachableRedis(t))

	assert.NoError(t, repo.RecordSearch(context.Background(), "   "))
}

func TestRedisSearchAnalytics_UnreachableReturnsError(t *testing.T) {
	repo := NewRedisSearchAnalyticsRepository(unreachableRedis(t))

	assert.Error(t, repo.RecordSearch(context.Background(), "cardio"))

	stats, err := repo.TopSearches(context.Background(), 5)
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestAnalyticsKeyword(t *testing.T) {
	assert.Equal(t, "cardio", analyticsKeyword("  CARDIO "))
	assert.Equal(t, "", analyticsKeyword("   "))

	long := analyticsKeyword(strings.Repeat("Ab", 500))
	assert.Equal(t, maxKeywordRunes, utf8.RuneCountInString(long))
	assert.Equal(t, strings.Repeat("ab", maxKeywordRunes/2), long)

	multibyte := analyticsKeyword(strings.Repeat("डॉक्टर", 50))
	assert.Equal(t, maxKeywordRunes, utf8.RuneCountInString(multibyte))
	assert.True(t, utf8.ValidString(multibyte))
}

func TestRedisSearchAnalytics_TruncatesKeywordInError(t *testing.T) {
	repo := NewRedisSearchAnalyticsRepository(unreachableRedis(t))

	err := repo.RecordSearch(context.Background(), strings.Repeat("x", 10000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), strings.Repeat("x", maxKeywordRunes))
	assert.NotContains(t, err.Error(), strings.Repeat("x", maxKeywordRunes+1))
}

func TestNoopSearchAnalytics(t *testing.T) {
	repo := NewNoopSearchAnalyticsRepository()

	require.NoError(t, repo.RecordSearch(context.Background(), "cardio"))
	stats, err := repo.TopSearches(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, stats)
	assert.Empty(t, stats)
}
