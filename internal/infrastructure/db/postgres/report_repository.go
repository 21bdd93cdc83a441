package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hireproof/backcheck/internal/core/domain"
)

const reportColumns = `id, status, package, adjudication, turnaround_time,
	completed_at, candidate_id, created_at, updated_at`

// ReportRepository persists reports.
type ReportRepository struct {
	db *DB
}

func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	row := r.db.querier(ctx).QueryRow(ctx, `
		INSERT INTO reports (status, package, adjudication, turnaround_time, completed_at, candidate_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+reportColumns,
		rep.Status, rep.Package, rep.Adjudication, rep.TurnaroundTime, rep.CompletedAt, rep.CandidateID)

	created, err := scanReport(row)
	if err != nil {
		if isUniqueViolation(err, "reports_candidate_id_key") {
			return nil, domain.ErrReportExists
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return created, nil
}

func (r *ReportRepository) FindByID(ctx context.Context, id int64) (*domain.Report, error) {
	row := r.db.querier(ctx).QueryRow(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)

	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return rep, nil
}

func (r *ReportRepository) FindByCandidateID(ctx context.Context, candidateID int64) (*domain.Report, error) {
	row := r.db.querier(ctx).QueryRow(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE candidate_id = $1`, candidateID)

	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report by candidate: %w", err)
	}
	return rep, nil
}

func (r *ReportRepository) Update(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	row := r.db.querier(ctx).QueryRow(ctx, `
		UPDATE reports
		SET status = $2, package = $3, adjudication = $4, turnaround_time = $5,
			completed_at = $6, updated_at = now()
		WHERE id = $1
		RETURNING `+reportColumns,
		rep.ID, rep.Status, rep.Package, rep.Adjudication, rep.TurnaroundTime, rep.CompletedAt)

	updated, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("update report: %w", err)
	}
	return updated, nil
}

func (r *ReportRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.querier(ctx).Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *ReportRepository) DeleteByCandidateID(ctx context.Context, candidateID int64) (int64, error) {
	tag, err := r.db.querier(ctx).Exec(ctx, `DELETE FROM reports WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return 0, fmt.Errorf("delete reports by candidate: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanReport(row pgx.Row) (*domain.Report, error) {
	var rep domain.Report
	err := row.Scan(&rep.ID, &rep.Status, &rep.Package, &rep.Adjudication,
		&rep.TurnaroundTime, &rep.CompletedAt, &rep.CandidateID, &rep.CreatedAt, &rep.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}
