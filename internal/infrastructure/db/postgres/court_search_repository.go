package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hireproof/backcheck/internal/core/domain"
)

const courtSearchColumns = `id, status, search_type, date, candidate_id, created_at, updated_at`

// CourtSearchRepository persists court searches.
type CourtSearchRepository struct {
	db *DB
}

func NewCourtSearchRepository(db *DB) *CourtSearchRepository {
	return &CourtSearchRepository{db: db}
}

func (r *CourtSearchRepository) Create(ctx context.Context, s *domain.CourtSearch) (*domain.CourtSearch, error) {
	row := r.db.querier(ctx).QueryRow(ctx, `
		INSERT INTO court_searches (status, search_type, date, candidate_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+courtSearchColumns,
		s.Status, s.SearchType, s.Date, s.CandidateID)

	created, err := scanCourtSearch(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("insert court search: %w", err)
	}
	return created, nil
}

func (r *CourtSearchRepository) FindByID(ctx context.Context, id int64) (*domain.CourtSearch, error) {
	row := r.db.querier(ctx).QueryRow(ctx,
		`SELECT `+courtSearchColumns+` FROM court_searches WHERE id = $1`, id)

	s, err := scanCourtSearch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourtSearchNotFound
		}
		return nil, fmt.Errorf("find court search: %w", err)
	}
	return s, nil
}

func (r *CourtSearchRepository) FindByCandidateID(ctx context.Context, candidateID int64) ([]*domain.CourtSearch, error) {
	rows, err := r.db.querier(ctx).Query(ctx,
		`SELECT `+courtSearchColumns+` FROM court_searches WHERE candidate_id = $1 ORDER BY id`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list court searches: %w", err)
	}
	defer rows.Close()

	searches := []*domain.CourtSearch{}
	for rows.Next() {
		s, err := scanCourtSearch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan court search: %w", err)
		}
		searches = append(searches, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list court searches: %w", err)
	}
	return searches, nil
}

func (r *CourtSearchRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.CourtSearch, error) {
	row := r.db.querier(ctx).QueryRow(ctx, `
		UPDATE court_searches SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+courtSearchColumns, id, status)

	updated, err := scanCourtSearch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourtSearchNotFound
		}
		return nil, fmt.Errorf("update court search status: %w", err)
	}
	return updated, nil
}

func (r *CourtSearchRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.querier(ctx).Exec(ctx, `DELETE FROM court_searches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete court search: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourtSearchNotFound
	}
	return nil
}

func (r *CourtSearchRepository) DeleteByCandidateID(ctx context.Context, candidateID int64) (int64, error) {
	tag, err := r.db.querier(ctx).Exec(ctx,
		`DELETE FROM court_searches WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return 0, fmt.Errorf("delete court searches by candidate: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanCourtSearch(row pgx.Row) (*domain.CourtSearch, error) {
	var s domain.CourtSearch
	err := row.Scan(&s.ID, &s.Status, &s.SearchType, &s.Date, &s.CandidateID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
