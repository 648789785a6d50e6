package store

import (
	"context"

	"github.com/allinlistings/admin/internal/catalog"
	"github.com/jmoiron/sqlx"
)

type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

// List joins each tournament with its casino and, when it belongs to an
// event, the event and the event's tour.
func (s *TournamentStore) List(ctx context.Context) ([]catalog.TournamentRow, error) {
	var tournaments []catalog.TournamentRow
	err := s.db.SelectContext(ctx, &tournaments, `
		SELECT tr.*, c.name AS casino_name, e.name AS event_name, t.name AS tour_name
		FROM tournaments tr
		JOIN casinos c ON c.id = tr.casino_id
		LEFT JOIN events e ON e.id = tr.event_id
		LEFT JOIN tours t ON t.id = e.tour_id
		ORDER BY tr.date DESC, tr.time ASC`)
	return tournaments, err
}

func (s *TournamentStore) Get(ctx context.Context, id int64) (*catalog.Tournament, error) {
	var tournament catalog.Tournament
	err := s.db.GetContext(ctx, &tournament, "SELECT * FROM tournaments WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentStore) Insert(ctx context.Context, t *catalog.Tournament) (int64, error) {
	res, err := s.db.NamedExecContext(ctx, `INSERT INTO tournaments
		(name, slug, casino_id, event_id, date, time, buyin, fee, points, leveltime, punctuality, bounty, registerlevels, content, draft)
		VALUES (:name, :slug, :casino_id, :event_id, :date, :time, :buyin, :fee, :points, :leveltime, :punctuality, :bounty, :registerlevels, :content, :draft)`, t)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *TournamentStore) Update(ctx context.Context, t *catalog.Tournament) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE tournaments SET
		name = :name,
		slug = :slug,
		casino_id = :casino_id,
		event_id = :event_id,
		date = :date,
		time = :time,
		buyin = :buyin,
		fee = :fee,
		points = :points,
		leveltime = :leveltime,
		punctuality = :punctuality,
		bounty = :bounty,
		registerlevels = :registerlevels,
		content = :content,
		draft = :draft
		WHERE id = :id`, t)
	return err
}

func (s *TournamentStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tournaments WHERE id = ?", id)
	return err
}
