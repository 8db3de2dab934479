package services

import (
	"context"
	"math"
	"time"

	"servio/internal/models/response_models"
	"servio/internal/repositories"
	mem "servio/pkg/memcache"
	"servio/pkg/utils"
)

const baseInfoCacheKey = "dashboard:base_info"

type DashboardServiceInterface interface {
	// GetBaseInfo aggregates the public marketplace counts. Results
	// may be served from cache for up to the configured TTL.
	GetBaseInfo(ctx context.Context) (*response_models.BaseInfoResponse, error)
}

type DashboardService struct {
	repo     repositories.DashboardRepository
	cache    mem.SnapshotStore
	cacheTTL time.Duration
}

func NewDashboardService(repo repositories.DashboardRepository, cache mem.SnapshotStore, cacheTTL time.Duration) DashboardServiceInterface {
	return &DashboardService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *DashboardService) GetBaseInfo(ctx context.Context) (*response_models.BaseInfoResponse, error) {
	if s.cacheTTL > 0 {
		if cached, ok := s.cache.Get(baseInfoCacheKey); ok {
			if info, ok := cached.(response_models.BaseInfoResponse); ok {
				response := info
				return &response, nil
			}
		}
	}

	reviewCount, err := s.repo.CountReviews(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	avg, err := s.repo.AverageRating(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	businessCount, err := s.repo.CountBusinessUsers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	offerCount, err := s.repo.CountOffers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	info := response_models.BaseInfoResponse{
		ReviewCount:          reviewCount,
		AverageRating:        math.Round(avg*10) / 10,
		BusinessProfileCount: businessCount,
		OfferCount:           offerCount,
	}

	if s.cacheTTL > 0 {
		s.cache.Set(baseInfoCacheKey, info, s.cacheTTL)
	}

	response := info
	return &response, nil
}
