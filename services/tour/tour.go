package tour

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	tourRepo "travelerapp/database/repository/tour"
	"travelerapp/models"
	"travelerapp/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogCacheKey = utils.TourCachePrefix + "catalog"

// DefaultTourService implements TourService.
type DefaultTourService struct {
	Repo  tourRepo.TourRepository
	Cache *redis.Client
}

// ListTours returns the catalog. Lookup order: Redis cache, document
// store, static seed data. A remote read failure is logged and degraded,
// never surfaced.
func (svc *DefaultTourService) ListTours() []models.Tour {
	logger := utils.GetLogger()

	if cached := svc.cachedCatalog(); cached != nil {
		return cached
	}

	tours, err := svc.Repo.ListTours()
	if err != nil {
		logger.Warn("tour catalog read failed, falling back to seed data", zap.Error(err))
		return SeedTours()
	}
	if len(tours) == 0 {
		logger.Warn("tour catalog is empty, falling back to seed data")
		return SeedTours()
	}

	for i := range tours {
		tours[i].ReviewCount = int(svc.ReviewCount(tours[i].ID))
	}

	svc.cacheCatalog(tours)
	return tours
}

// SearchTours filters the catalog by title, location and category.
func (svc *DefaultTourService) SearchTours(query string) []models.Tour {
	query = strings.ToLower(strings.TrimSpace(query))
	tours := svc.ListTours()
	if query == "" {
		return tours
	}

	var matched []models.Tour
	for _, t := range tours {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.DisplayLocation()), query) ||
			strings.Contains(strings.ToLower(t.Category), query) {
			matched = append(matched, t)
		}
	}
	return matched
}

// GetTour fetches a single tour. Unlike the catalog there is no
// substitute for a specific tour, so failures are surfaced.
func (svc *DefaultTourService) GetTour(tourID string) (*models.Tour, error) {
	t, err := svc.Repo.GetTourByID(tourID)
	if err != nil {
		return nil, err
	}
	t.ReviewCount = int(svc.ReviewCount(tourID))
	return t, nil
}

// ReviewCount derives the review count for a tour, best effort.
func (svc *DefaultTourService) ReviewCount(tourID string) int64 {
	count, err := svc.Repo.CountReviews(tourID)
	if err != nil {
		utils.GetLogger().Debug("review count lookup failed",
			zap.String("tourId", tourID), zap.Error(err))
		return 0
	}
	return count
}

func (svc *DefaultTourService) cachedCatalog() []models.Tour {
	if svc.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := svc.Cache.Get(ctx, catalogCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var tours []models.Tour
	if err := json.Unmarshal(data, &tours); err != nil {
		return nil
	}
	return tours
}

func (svc *DefaultTourService) cacheCatalog(tours []models.Tour) {
	if svc.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(tours)
	if err != nil {
		return
	}
	if err := svc.Cache.Set(ctx, catalogCacheKey, data, utils.TourCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("failed to cache tour catalog", zap.Error(err))
	}
}
