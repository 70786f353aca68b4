package catalog

import (
	"context"

	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
)

// CatalogService serves the treatment catalogue, read-through cached in Redis.
type CatalogService interface {
	// All returns every service with its full slot list.
	All(ctx context.Context) ([]models.Service, error)
	// Summaries returns the {_id, name} projection of every service.
	Summaries(ctx context.Context) ([]models.ServiceSummary, error)
}

// DefaultCatalogService is the production implementation. Cache may be nil.
type DefaultCatalogService struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client
}

func (s *DefaultCatalogService) All(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if utils.CacheGetJSON(ctx, s.Cache, utils.CatalogCacheKey, &services) {
		return services, nil
	}

	services, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	utils.CacheSetJSON(ctx, s.Cache, utils.CatalogCacheKey, services, utils.CatalogCacheTTL)
	return services, nil
}

func (s *DefaultCatalogService) Summaries(ctx context.Context) ([]models.ServiceSummary, error) {
	var summaries []models.ServiceSummary
	if utils.CacheGetJSON(ctx, s.Cache, utils.CatalogNamesCacheKey, &summaries) {
		return summaries, nil
	}

	summaries, err := s.Repo.GetSummaries(ctx)
	if err != nil {
		return nil, err
	}
	utils.CacheSetJSON(ctx, s.Cache, utils.CatalogNamesCacheKey, summaries, utils.CatalogCacheTTL)
	return summaries, nil
}
