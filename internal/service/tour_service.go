package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/store"
)

type TourService struct {
	store *store.TourStore
	cache *cache.Cache
}

func NewTourService(store *store.TourStore, cache *cache.Cache) *TourService {
	return &TourService{store: store, cache: cache}
}

func (s *TourService) List(ctx context.Context) ([]catalog.Tour, error) {
	if cached, ok := s.cache.Get(PathTours); ok {
		if tours, ok := cached.([]catalog.Tour); ok {
			return tours, nil
		}
	}
	tours, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(PathTours, tours)
	return tours, nil
}

func (s *TourService) Get(ctx context.Context, id int64) (*catalog.Tour, error) {
	return s.store.Get(ctx, id)
}

func (s *TourService) Options(ctx context.Context) ([]catalog.Ref, error) {
	return s.store.Options(ctx)
}

func (s *TourService) Upsert(ctx context.Context, values url.Values) UpsertResult {
	if !authenticated(ctx) {
		return authFailure()
	}

	tour, errs := catalog.ParseTourForm(values)
	if errs != nil {
		return validationFailure(errs)
	}

	if tour.ID > 0 {
		if err := s.store.Update(ctx, tour); err != nil {
			return classifyWriteError(err, "tours.slug")
		}
		s.cache.Invalidate(PathTours)
		return UpsertResult{Success: true, Message: "Tour updated."}
	}

	if _, err := s.store.Insert(ctx, tour); err != nil {
		return classifyWriteError(err, "tours.slug")
	}
	s.cache.Invalidate(PathTours)
	return UpsertResult{Success: true, Message: "Tour created."}
}

func (s *TourService) Delete(ctx context.Context, id int64) DeleteResult {
	if !authenticated(ctx) {
		return DeleteResult{Message: "Operation failed: not authenticated."}
	}
	if id <= 0 {
		return DeleteResult{Message: "A valid tour ID is required."}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		slog.Error("failed to delete tour", "id", id, "error", err)
		return DeleteResult{Message: "Failed to delete the tour."}
	}
	s.cache.Invalidate(PathTours)
	return DeleteResult{Success: true, Message: "Tour deleted."}
}
