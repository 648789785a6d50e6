package store

import (
	"context"

	"github.com/allinlistings/admin/internal/catalog"
	"github.com/jmoiron/sqlx"
)

type TourStore struct {
	db *sqlx.DB
}

func NewTourStore(db *sqlx.DB) *TourStore {
	return &TourStore{db: db}
}

func (s *TourStore) List(ctx context.Context) ([]catalog.Tour, error) {
	var tours []catalog.Tour
	err := s.db.SelectContext(ctx, &tours, "SELECT * FROM tours ORDER BY name ASC")
	return tours, err
}

func (s *TourStore) Get(ctx context.Context, id int64) (*catalog.Tour, error) {
	var tour catalog.Tour
	err := s.db.GetContext(ctx, &tour, "SELECT * FROM tours WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (s *TourStore) Options(ctx context.Context) ([]catalog.Ref, error) {
	var refs []catalog.Ref
	err := s.db.SelectContext(ctx, &refs, "SELECT id, name FROM tours ORDER BY name ASC")
	return refs, err
}

func (s *TourStore) Insert(ctx context.Context, t *catalog.Tour) (int64, error) {
	res, err := s.db.NamedExecContext(ctx, `INSERT INTO tours (name, slug, logo)
		VALUES (:name, :slug, :logo)`, t)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *TourStore) Update(ctx context.Context, t *catalog.Tour) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE tours SET
		name = :name,
		slug = :slug,
		logo = :logo
		WHERE id = :id`, t)
	return err
}

func (s *TourStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM tours WHERE id = ?", id)
	return err
}
