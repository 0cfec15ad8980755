package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/staffing/pkg/staffing"
)

// RequestRepository хранит разобранные заявки. Результат конвейера лежит в JSONB.
type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) (*RequestRepository, error) {
	r := &RequestRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, fmt.Errorf("ensure staffing_requests schema: %w", err)
	}
	return r, nil
}

func (r *RequestRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS staffing_requests (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	filename TEXT NOT NULL DEFAULT '',
	request_code TEXT NOT NULL DEFAULT '',
	extraction JSONB NOT NULL,
	summary TEXT NOT NULL DEFAULT '',
	model TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS staffing_requests_owner_created_idx
	ON staffing_requests (owner_id, created_at DESC);
`)
	return err
}

const requestColumns = `id, owner_id, filename, extraction, summary, model, created_at`

func (r *RequestRepository) Create(ctx context.Context, req staffing.Request) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(req.Extraction)
	if err != nil {
		return fmt.Errorf("marshal extraction: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO staffing_requests (id, owner_id, filename, request_code, extraction, summary, model, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, req.ID, req.OwnerID, req.Filename, req.Extraction.Meta.RequestID, payload, req.Summary, req.Model, req.CreatedAt)
	return err
}

func (r *RequestRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (staffing.Request, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+requestColumns+`
FROM staffing_requests WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	req, err := scanRequest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return staffing.Request{}, staffing.ErrNotFound
	}
	return req, err
}

func (r *RequestRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]staffing.Request, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT `+requestColumns+`
FROM staffing_requests WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []staffing.Request{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, req)
	}
	return res, rows.Err()
}

func (r *RequestRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM staffing_requests WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return staffing.ErrNotFound
	}
	return nil
}

func scanRequest(row pgx.Row) (staffing.Request, error) {
	var (
		req     staffing.Request
		payload []byte
		created time.Time
	)
	if err := row.Scan(&req.ID, &req.OwnerID, &req.Filename, &payload, &req.Summary, &req.Model, &created); err != nil {
		return staffing.Request{}, err
	}
	if err := json.Unmarshal(payload, &req.Extraction); err != nil {
		return staffing.Request{}, fmt.Errorf("unmarshal extraction %s: %w", req.ID, err)
	}
	req.CreatedAt = created.UTC()
	return req, nil
}
