package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/allinlistings/admin/internal/cache"
	"github.com/allinlistings/admin/internal/catalog"
	"github.com/allinlistings/admin/internal/store"
	"github.com/jmoiron/sqlx"
)

type EventService struct {
	db    *sqlx.DB
	store *store.EventStore
	cache *cache.Cache
}

func NewEventService(db *sqlx.DB, store *store.EventStore, cache *cache.Cache) *EventService {
	return &EventService{db: db, store: store, cache: cache}
}

func (s *EventService) List(ctx context.Context) ([]catalog.EventRow, error) {
	if cached, ok := s.cache.Get(PathEvents); ok {
		if events, ok := cached.([]catalog.EventRow); ok {
			return events, nil
		}
	}
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(PathEvents, events)
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id int64) (*catalog.Event, error) {
	return s.store.Get(ctx, id)
}

func (s *EventService) Options(ctx context.Context) ([]catalog.Ref, error) {
	return s.store.Options(ctx)
}

func (s *EventService) Upsert(ctx context.Context, values url.Values) UpsertResult {
	if !authenticated(ctx) {
		return authFailure()
	}

	event, errs := catalog.ParseEventForm(values)
	if errs != nil {
		return validationFailure(errs)
	}

	if event.ID > 0 {
		if err := s.store.Update(ctx, event); err != nil {
			return classifyWriteError(err, "events.slug")
		}
		s.cache.Invalidate(PathEvents)
		return UpsertResult{Success: true, Message: "Event updated."}
	}

	if _, err := s.store.Insert(ctx, event); err != nil {
		return classifyWriteError(err, "events.slug")
	}
	s.cache.Invalidate(PathEvents)
	return UpsertResult{Success: true, Message: "Event created."}
}

// Delete implements the two-phase protocol: without force it only counts
// dependent tournaments and, if any exist, asks for confirmation. With force
// it removes the tournaments and the event in one transaction.
func (s *EventService) Delete(ctx context.Context, id int64, force bool) DeleteEventResult {
	if !authenticated(ctx) {
		return DeleteEventResult{DeleteResult: DeleteResult{Message: "Operation failed: not authenticated."}}
	}
	if id <= 0 {
		return DeleteEventResult{DeleteResult: DeleteResult{Message: "A valid event ID is required."}}
	}

	if !force {
		count, err := s.store.CountTournaments(ctx, id)
		if err != nil {
			slog.Error("failed to count event tournaments", "id", id, "error", err)
			return DeleteEventResult{DeleteResult: DeleteResult{Message: "Failed to check associated tournaments."}}
		}
		if count > 0 {
			return DeleteEventResult{
				DeleteResult: DeleteResult{
					Message: fmt.Sprintf("This event has %d associated tournament(s). Deleting it will remove them too.", count),
				},
				RequiresConfirmation: true,
				TournamentCount:      count,
			}
		}

		if err := s.store.Delete(ctx, id); err != nil {
			slog.Error("failed to delete event", "id", id, "error", err)
			return DeleteEventResult{DeleteResult: DeleteResult{Message: "Failed to delete the event."}}
		}
		s.cache.Invalidate(PathEvents)
		return DeleteEventResult{DeleteResult: DeleteResult{Success: true, Message: "Event deleted."}}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin event delete", "id", id, "error", err)
		return DeleteEventResult{DeleteResult: DeleteResult{Message: "Failed to delete the event."}}
	}
	defer tx.Rollback()

	if err := s.store.DeleteTournamentsTx(ctx, tx, id); err != nil {
		slog.Error("failed to delete event tournaments", "id", id, "error", err)
		return DeleteEventResult{DeleteResult: DeleteResult{Message: "Failed to delete associated tournaments."}}
	}
	if err := s.store.DeleteTx(ctx, tx, id); err != nil {
		slog.Error("failed to delete event", "id", id, "error", err)
		return DeleteEventResult{DeleteResult: DeleteResult{Message: "Failed to delete the event."}}
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit event delete", "id", id, "error", err)
		return DeleteEventResult{DeleteResult: DeleteResult{Message: "Failed to delete the event."}}
	}

	s.cache.Invalidate(PathEvents, PathTournaments)
	return DeleteEventResult{DeleteResult: DeleteResult{Success: true, Message: "Event and associated tournaments deleted."}}
}
