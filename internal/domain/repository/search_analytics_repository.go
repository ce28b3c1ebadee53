package repository

import (
	"context"

	"doctorhub-api/internal/domain/entity"
)

type SearchAnalyticsRepository interface {
	RecordSearch(ctx context.Context, keyword string) error
	TopSearches(ctx context.Context, limit int) ([]entity.SearchStat, error)
}
