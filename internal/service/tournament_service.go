package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/store"
)

type TournamentService struct {
	store *store.TournamentStore
	cache *cache.Cache
}

func NewTournamentService(store *store.TournamentStore, cache *cache.Cache) *TournamentService {
	return &TournamentService{store: store, cache: cache}
}

func (s *TournamentService) List(ctx context.Context) ([]catalog.TournamentRow, error) {
	if cached, ok := s.cache.Get(PathTournaments); ok {
		if tournaments, ok := cached.([]catalog.TournamentRow); ok {
			return tournaments, nil
		}
	}
	tournaments, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(PathTournaments, tournaments)
	return tournaments, nil
}

func (s *TournamentService) Get(ctx context.Context, id int64) (*catalog.Tournament, error) {
	return s.store.Get(ctx, id)
}

func (s *TournamentService) Upsert(ctx context.Context, values url.Values) UpsertResult {
	if !authenticated(ctx) {
		return authFailure()
	}

	tournament, errs := catalog.ParseTournamentForm(values)
	if errs != nil {
		return validationFailure(errs)
	}

	if tournament.ID > 0 {
		if err := s.store.Update(ctx, tournament); err != nil {
			return classifyWriteError(err, "tournaments.slug")
		}
		s.cache.Invalidate(PathTournaments)
		return UpsertResult{Success: true, Message: "Tournament updated."}
	}

	if _, err := s.store.Insert(ctx, tournament); err != nil {
		return classifyWriteError(err, "tournaments.slug")
	}
	s.cache.Invalidate(PathTournaments)
	return UpsertResult{Success: true, Message: "Tournament created."}
}

func (s *TournamentService) Delete(ctx context.Context, id int64) DeleteResult {
	if !authenticated(ctx) {
		return DeleteResult{Message: "Operation failed: not authenticated."}
	}
	if id <= 0 {
		return DeleteResult{Message: "A valid tournament ID is required."}
	}

	if err := s.store.Delete(ctx, id); err != nil {
		slog.Error("failed to delete tournament", "id", id, "error", err)
		return DeleteResult{Message: "Failed to delete the tournament."}
	}
	s.cache.Invalidate(PathTournaments)
	return DeleteResult{Success: true, Message: "Tournament deleted."}
}
