package routes

import (
	"context"

	"ecokosova-dashboard/internal/models"
)

// Source computes routes, normally the backend gateway
type Source interface {
	ZoneRoute(ctx context.Context, zoneID string, q models.RouteQuery) (*models.Route, error)
}

// Service answers route requests from the cache before asking the backend
type Service struct {
	source Source
	cache  *Cache
}

func NewService(source Source, cache *Cache) *Service {
	if cache == nil {
		cache = NewCache(0, 0)
	}
	return &Service{source: source, cache: cache}
}

// ZoneRoute fills unset query fields from the defaults
func (s *Service) ZoneRoute(ctx context.Context, zoneID string, q models.RouteQuery) (models.Route, error) {
	def := models.DefaultRouteQuery()
	if q.Strategy == "" {
		q.Strategy = def.Strategy
	}
	if q.StartLat == 0 && q.StartLon == 0 {
		q.StartLat, q.StartLon = def.StartLat, def.StartLon
	}

	key := Key(zoneID, q)
	if route, ok := s.cache.Get(key); ok {
		return route, nil
	}

	route, err := s.source.ZoneRoute(ctx, zoneID, q)
	if err != nil {
		return models.Route{}, err
	}
	s.cache.Set(key, *route)
	return *route, nil
}

func (s *Service) Invalidate() { s.cache.Invalidate() }

func (s *Service) Stats() Stats { return s.cache.Stats() }
