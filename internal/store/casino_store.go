package store

import (
	"context"

	"github.com/allinlistings/admin/internal/catalog"
	"github.com/jmoiron/sqlx"
)

type CasinoStore struct {
	db *sqlx.DB
}

func NewCasinoStore(db *sqlx.DB) *CasinoStore {
	return &CasinoStore{db: db}
}

// List returns all casinos with their rating sub-rows attached.
func (s *CasinoStore) List(ctx context.Context) ([]catalog.CasinoWithStars, error) {
	var casinos []catalog.Casino
	err := s.db.SelectContext(ctx, &casinos, "SELECT * FROM casinos ORDER BY name ASC")
	if err != nil {
		return nil, err
	}

	var stars []catalog.CasinoStar
	err = s.db.SelectContext(ctx, &stars, "SELECT * FROM casino_stars ORDER BY casino_id, category")
	if err != nil {
		return nil, err
	}

	byCasino := make(map[int64][]catalog.CasinoStar)
	for _, star := range stars {
		byCasino[star.CasinoID] = append(byCasino[star.CasinoID], star)
	}

	result := make([]catalog.CasinoWithStars, 0, len(casinos))
	for _, c := range casinos {
		result = append(result, catalog.CasinoWithStars{Casino: c, Stars: byCasino[c.ID]})
	}
	return result, nil
}

func (s *CasinoStore) Get(ctx context.Context, id int64) (*catalog.Casino, error) {
	var casino catalog.Casino
	err := s.db.GetContext(ctx, &casino, "SELECT * FROM casinos WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return &casino, nil
}

func (s *CasinoStore) Options(ctx context.Context) ([]catalog.Ref, error) {
	var refs []catalog.Ref
	err := s.db.SelectContext(ctx, &refs, "SELECT id, name FROM casinos ORDER BY name ASC")
	return refs, err
}

func (s *CasinoStore) Insert(ctx context.Context, c *catalog.Casino) (int64, error) {
	res, err := s.db.NamedExecContext(ctx, `INSERT INTO casinos (name, slug, logo, color, content)
		VALUES (:name, :slug, :logo, :color, :content)`, c)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *CasinoStore) Update(ctx context.Context, c *catalog.Casino) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE casinos SET
		name = :name,
		slug = :slug,
		logo = :logo,
		color = :color,
		content = :content
		WHERE id = :id`, c)
	return err
}

func (s *CasinoStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM casinos WHERE id = ?", id)
	return err
}
