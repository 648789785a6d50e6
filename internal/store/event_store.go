package store

import (
	"context"

	"github.com/allinlistings/admin/internal/catalog"
	"github.com/jmoiron/sqlx"
)

type EventStore struct {
	db *sqlx.DB
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) List(ctx context.Context) ([]catalog.EventRow, error) {
	var events []catalog.EventRow
	err := s.db.SelectContext(ctx, &events, `
		SELECT e.*, c.name AS casino_name, t.name AS tour_name
		FROM events e
		JOIN casinos c ON c.id = e.casino_id
		JOIN tours t ON t.id = e.tour_id
		ORDER BY e.date_from DESC`)
	return events, err
}

func (s *EventStore) Get(ctx context.Context, id int64) (*catalog.Event, error) {
	var event catalog.Event
	err := s.db.GetContext(ctx, &event, "SELECT * FROM events WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventStore) Options(ctx context.Context) ([]catalog.Ref, error) {
	var refs []catalog.Ref
	err := s.db.SelectContext(ctx, &refs, "SELECT id, name FROM events ORDER BY date_from DESC")
	return refs, err
}

func (s *EventStore) Insert(ctx context.Context, e *catalog.Event) (int64, error) {
	res, err := s.db.NamedExecContext(ctx, `INSERT INTO events (name, slug, casino_id, tour_id, date_from, date_to, draft)
		VALUES (:name, :slug, :casino_id, :tour_id, :date_from, :date_to, :draft)`, e)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *EventStore) Update(ctx context.Context, e *catalog.Event) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE events SET
		name = :name,
		slug = :slug,
		casino_id = :casino_id,
		tour_id = :tour_id,
		date_from = :date_from,
		date_to = :date_to,
		draft = :draft
		WHERE id = :id`, e)
	return err
}

// CountTournaments is the dry-run half of the two-phase event delete.
func (s *EventStore) CountTournaments(ctx context.Context, eventID int64) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM tournaments WHERE event_id = ?", eventID)
	return count, err
}

func (s *EventStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	return err
}

func (s *EventStore) DeleteTournamentsTx(ctx context.Context, tx *sqlx.Tx, eventID int64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM tournaments WHERE event_id = ?", eventID)
	return err
}

func (s *EventStore) DeleteTx(ctx context.Context, tx *sqlx.Tx, id int64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
	return err
}
