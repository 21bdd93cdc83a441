package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hireproof/backcheck/internal/core/domain"
)

const candidateColumns = `id, name, email, dob, phone, zipcode, social_security,
	drivers_license, adjudication, status, location, date, created_at, updated_at`

// CandidateRepository persists candidates. Driver-level absences and
// constraint violations are translated to domain errors here so services
// never see raw pgx errors.
type CandidateRepository struct {
	db *DB
}

func NewCandidateRepository(db *DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) Create(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	row := r.db.querier(ctx).QueryRow(ctx, `
		INSERT INTO candidates (name, email, dob, phone, zipcode, social_security,
			drivers_license, adjudication, status, location, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+candidateColumns,
		c.Name, c.Email, c.DOB, c.Phone, c.Zipcode, c.SocialSecurity,
		c.DriversLicense, c.Adjudication, c.Status, c.Location, c.Date)

	created, err := scanCandidate(row)
	if err != nil {
		if isUniqueViolation(err, "candidates_email_key") {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert candidate: %w", err)
	}
	return created, nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	row := r.db.querier(ctx).QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("find candidate: %w", err)
	}
	return c, nil
}

func (r *CandidateRepository) FindByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	row := r.db.querier(ctx).QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE email = $1`, email)

	c, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("find candidate by email: %w", err)
	}
	return c, nil
}

func (r *CandidateRepository) FindAll(ctx context.Context) ([]*domain.Candidate, error) {
	rows, err := r.db.querier(ctx).Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

func (r *CandidateRepository) Update(ctx context.Context, c *domain.Candidate) (*domain.Candidate, error) {
	row := r.db.querier(ctx).QueryRow(ctx, `
		UPDATE candidates
		SET name = $2, email = $3, dob = $4, phone = $5, zipcode = $6,
			social_security = $7, drivers_license = $8, adjudication = $9,
			status = $10, location = $11, date = $12, updated_at = now()
		WHERE id = $1
		RETURNING `+candidateColumns,
		c.ID, c.Name, c.Email, c.DOB, c.Phone, c.Zipcode,
		c.SocialSecurity, c.DriversLicense, c.Adjudication,
		c.Status, c.Location, c.Date)

	updated, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		if isUniqueViolation(err, "candidates_email_key") {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update candidate: %w", err)
	}
	return updated, nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.querier(ctx).Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCandidateNotFound
	}
	return nil
}

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var c domain.Candidate
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.DOB, &c.Phone, &c.Zipcode,
		&c.SocialSecurity, &c.DriversLicense, &c.Adjudication, &c.Status,
		&c.Location, &c.Date, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
