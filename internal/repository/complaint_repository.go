package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/complaint-service/internal/domain"
)

// ComplaintFilter captures dashboard listing parameters.
type ComplaintFilter struct {
	Status *domain.ComplaintStatus
	Limit  int
	Offset int
}

// ComplaintRepository encapsulates complaint persistence.
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *domain.Complaint) error
	Update(ctx context.Context, complaint *domain.Complaint) error
	GetByID(ctx context.Context, id string) (*domain.Complaint, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*domain.Complaint, error)
	List(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error)
	Count(ctx context.Context, status *domain.ComplaintStatus) (int, error)
	Delete(ctx context.Context, id string) error
}

type complaintRepository struct {
	pool *pgxpool.Pool
}

// NewComplaintRepository instantiates repository.
func NewComplaintRepository(pool *pgxpool.Pool) ComplaintRepository {
	return &complaintRepository{pool: pool}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        INSERT INTO complaints (id, tracking_id, name, email, body, body_html, status, submitter_ip, submitter_user_agent)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		complaint.ID,
		complaint.TrackingID,
		complaint.SubmitterName,
		complaint.SubmitterEmail,
		complaint.Body,
		complaint.BodyHTML,
		complaint.Status,
		complaint.SubmitterIP,
		complaint.SubmitterUserAgent,
	).Scan(&complaint.CreatedAt, &complaint.UpdatedAt)
}

func (r *complaintRepository) Update(ctx context.Context, complaint *domain.Complaint) error {
	const query = `
        UPDATE complaints SET status=$1, resolved_at=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	if err := r.pool.QueryRow(ctx, query,
		complaint.Status,
		complaint.ResolvedAt,
		complaint.ID,
	).Scan(&complaint.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	const query = `
        SELECT id, tracking_id, name, email, body, body_html, status, submitter_ip, submitter_user_agent,
               resolved_at, created_at, updated_at
        FROM complaints WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *complaintRepository) GetByTrackingID(ctx context.Context, trackingID string) (*domain.Complaint, error) {
	const query = `
        SELECT id, tracking_id, name, email, body, body_html, status, submitter_ip, submitter_user_agent,
               resolved_at, created_at, updated_at
        FROM complaints WHERE tracking_id=UPPER($1)`
	return r.fetchSingle(ctx, query, trackingID)
}

func (r *complaintRepository) List(ctx context.Context, filter ComplaintFilter) ([]domain.Complaint, error) {
	base := `SELECT id, tracking_id, name, email, body, body_html, status, submitter_ip, submitter_user_agent,
                    resolved_at, created_at, updated_at
             FROM complaints`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepository) Count(ctx context.Context, status *domain.ComplaintStatus) (int, error) {
	var count int
	if status != nil {
		err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM complaints WHERE status=$1`, *status).Scan(&count)
		return count, err
	}
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM complaints`).Scan(&count)
	return count, err
}

func (r *complaintRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM complaints WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *complaintRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Complaint, error) {
	var complaint domain.Complaint
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&complaint.ID,
		&complaint.TrackingID,
		&complaint.SubmitterName,
		&complaint.SubmitterEmail,
		&complaint.Body,
		&complaint.BodyHTML,
		&complaint.Status,
		&complaint.SubmitterIP,
		&complaint.SubmitterUserAgent,
		&complaint.ResolvedAt,
		&complaint.CreatedAt,
		&complaint.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func scanComplaints(rows pgx.Rows) ([]domain.Complaint, error) {
	var result []domain.Complaint
	for rows.Next() {
		var complaint domain.Complaint
		if err := rows.Scan(
			&complaint.ID,
			&complaint.TrackingID,
			&complaint.SubmitterName,
			&complaint.SubmitterEmail,
			&complaint.Body,
			&complaint.BodyHTML,
			&complaint.Status,
			&complaint.SubmitterIP,
			&complaint.SubmitterUserAgent,
			&complaint.ResolvedAt,
			&complaint.CreatedAt,
			&complaint.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, complaint)
	}
	return result, rows.Err()
}
