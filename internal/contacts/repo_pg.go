package contacts

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, contact Contact) error {
	const query = `
INSERT INTO contacts (id, user_id, full_name, pipeline_stage, last_activity_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		contact.ID,
		contact.UserID,
		contact.FullName,
		contact.PipelineStage,
		contact.LastActivityAt,
		contact.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListNeedsFollowUp(ctx context.Context, userID string, limit int) ([]Contact, error) {
	const query = `
SELECT id, user_id, full_name, pipeline_stage, last_activity_at, created_at
FROM contacts
WHERE user_id = $1 AND pipeline_stage = $2
ORDER BY last_activity_at ASC
LIMIT $3`
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, StageNeedsFollowUp, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Contact
	for rows.Next() {
		var contact Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.UserID,
			&contact.FullName,
			&contact.PipelineStage,
			&contact.LastActivityAt,
			&contact.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, contact)
	}
	return out, rows.Err()
}
