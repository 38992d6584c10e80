// api/util/cache_service.go

package util

import (
	"context"

	"github.com/planweave/api/db"
	"github.com/planweave/api/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) SetValidationReport(ctx context.Context, reportID string, results []model.ValidationResult) error {
	return db.CacheValidationReport(ctx, reportID, results)
}

func (c *CacheService) GetValidationReport(ctx context.Context, reportID string) ([]model.ValidationResult, error) {
	return db.GetCachedValidationReport(ctx, reportID)
}

func (c *CacheService) DeleteValidationReport(ctx context.Context, reportID string) error {
	return db.DeleteCachedValidationReport(ctx, reportID)
}
