package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/store"
)

type CasinoService struct {
	store *store.CasinoStore
	cache *cache.Cache
}

func NewCasinoService(store *store.CasinoStore, cache *cache.Cache) *CasinoService {
	return &CasinoService{store: store, cache: cache}
}

func (s *CasinoService) List(ctx context.Context) ([]catalog.CasinoWithStars, error) {
	if cached, ok := s.cache.Get(PathCasinos); ok {
		if casinos, ok := cached.([]catalog.CasinoWithStars); ok {
			return casinos, nil
		}
	}
	casinos, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(PathCasinos, casinos)
	return casinos, nil
}

func (s *CasinoService) Get(ctx context.Context, id int64) (*catalog.Casino, error) {
	return s.store.Get(ctx, id)
}

func (s *CasinoService) Options(ctx context.Context) ([]catalog.Ref, error) {
	return s.store.Options(ctx)
}

func (s *CasinoService) Upsert(ctx context.Context, values url.Values) UpsertResult {
	if !authenticated(ctx) {
		return authFailure()
	}

	casino, errs := catalog.ParseCasinoForm(values)
	if errs != nil {
		return validationFailure(errs)
	}

	if casino.ID > 0 {
		if err := s.store.Update(ctx, casino); err != nil {
			return classifyWriteError(err, "casinos.slug")
		}
		s.cache.Invalidate(PathCasinos)
		return UpsertResult{Success: true, Message: "Casino updated."}
	}

	if _, err := s.store.Insert(ctx, casino); err != nil {
		return classifyWriteError(err, "casinos.slug")
	}
	s.cache.Invalidate(PathCasinos)
	return UpsertResult{Success: true, Message: "Casino created."}
}

func (s *CasinoService) Delete(ctx context.Context, id int64) DeleteResult {
	if !authenticated(ctx) {
		return DeleteResult{Message: "Operation failed: not authenticated."}
	}
	if id <= 0 {
		return DeleteResult{Message: "A valid casino ID is required."}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		slog.Error("failed to delete casino", "id", id, "error", err)
		return DeleteResult{Message: "Failed to delete the casino."}
	}
	s.cache.Invalidate(PathCasinos)
	return DeleteResult{Success: true, Message: "Casino deleted."}
}
