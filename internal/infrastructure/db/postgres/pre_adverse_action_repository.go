package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hireproof/backcheck/internal/core/domain"
)

// PreAdverseActionRepository persists pre-adverse actions. Charges are stored
// as a JSONB document.
type PreAdverseActionRepository struct {
	db *DB
}

func NewPreAdverseActionRepository(db *DB) *PreAdverseActionRepository {
	return &PreAdverseActionRepository{db: db}
}

func (r *PreAdverseActionRepository) Create(ctx context.Context, p *domain.PreAdverseAction) (*domain.PreAdverseAction, error) {
	charges, err := json.Marshal(p.Charges)
	if err != nil {
		return nil, fmt.Errorf("encode charges: %w", err)
	}

	row := r.db.querier(ctx).QueryRow(ctx, `
		INSERT INTO pre_adverse_actions (candidate_id, charges)
		VALUES ($1, $2)
		RETURNING id, candidate_id, charges, created_at, updated_at`,
		p.CandidateID, charges)

	created, err := scanPreAdverseAction(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("insert pre-adverse action: %w", err)
	}
	return created, nil
}

func (r *PreAdverseActionRepository) FindByCandidateID(ctx context.Context, candidateID int64) ([]*domain.PreAdverseAction, error) {
	rows, err := r.db.querier(ctx).Query(ctx, `
		SELECT id, candidate_id, charges, created_at, updated_at
		FROM pre_adverse_actions WHERE candidate_id = $1 ORDER BY id`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("list pre-adverse actions: %w", err)
	}
	defer rows.Close()

	var actions []*domain.PreAdverseAction
	for rows.Next() {
		a, err := scanPreAdverseAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pre-adverse action: %w", err)
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pre-adverse actions: %w", err)
	}
	return actions, nil
}

func scanPreAdverseAction(row pgx.Row) (*domain.PreAdverseAction, error) {
	var (
		a       domain.PreAdverseAction
		charges []byte
	)
	if err := row.Scan(&a.ID, &a.CandidateID, &charges, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(charges, &a.Charges); err != nil {
		return nil, fmt.Errorf("decode charges: %w", err)
	}
	return &a, nil
}
