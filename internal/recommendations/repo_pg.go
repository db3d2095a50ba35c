package recommendations

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO recommendations (id, user_id, rec_date, ui_context, payload, status, presented_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	var uiContext any
	if record.UIContext != "" {
		uiContext = record.UIContext
	}
	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Date,
		uiContext,
		[]byte(record.Payload),
		record.Status,
		record.PresentedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, id string) (Record, error) {
	const query = `
SELECT id, user_id, rec_date, ui_context, payload, status, presented_at, updated_at
FROM recommendations
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id, userID)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return record, nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, userID, id string, status Status) (Record, error) {
	current, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return Record{}, err
	}
	if !CanTransition(current.Status, status) {
		return Record{}, ErrInvalidTransition
	}

	// Optimistic guard: the row must still be in the status we checked.
	const query = `
UPDATE recommendations
SET status = $1, updated_at = now()
WHERE id = $2 AND user_id = $3 AND status = $4`
	res, err := r.DB.ExecContext(ctx, query, status, id, userID, current.Status)
	if err != nil {
		return Record{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Record{}, err
	}
	if affected == 0 {
		return Record{}, ErrInvalidTransition
	}
	return r.GetByID(ctx, userID, id)
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	const query = `
SELECT id, user_id, rec_date, ui_context, payload, status, presented_at, updated_at
FROM recommendations
WHERE user_id = $1
ORDER BY presented_at DESC
LIMIT $2 OFFSET $3`
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var record Record
	var uiContext sql.NullString
	var payload []byte
	if err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.Date,
		&uiContext,
		&payload,
		&record.Status,
		&record.PresentedAt,
		&record.UpdatedAt,
	); err != nil {
		return Record{}, err
	}
	if uiContext.Valid {
		record.UIContext = uiContext.String
	}
	record.Payload = payload
	return record, nil
}
