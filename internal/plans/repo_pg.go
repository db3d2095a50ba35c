package plans

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"agentcrm-backend/internal/actions"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) GetByUser(ctx context.Context, userID string) (DailyPlan, error) {
	const query = `
SELECT user_id, required_actions, completed_actions
FROM daily_plans
WHERE user_id = $1
LIMIT 1`
	var plan DailyPlan
	var required []byte
	var completed []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&plan.UserID, &required, &completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DailyPlan{}, ErrNotFound
		}
		return DailyPlan{}, err
	}
	if err := json.Unmarshal(required, &plan.RequiredActions); err != nil {
		return DailyPlan{}, fmt.Errorf("decode required_actions: %w", err)
	}
	if err := json.Unmarshal(completed, &plan.CompletedActions); err != nil {
		return DailyPlan{}, fmt.Errorf("decode completed_actions: %w", err)
	}
	return plan, nil
}

func (r *PGRepo) Upsert(ctx context.Context, plan DailyPlan) error {
	const query = `
INSERT INTO daily_plans (user_id, required_actions, completed_actions, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (user_id) DO UPDATE SET
  required_actions = EXCLUDED.required_actions,
  completed_actions = EXCLUDED.completed_actions,
  updated_at = now()`
	required, err := json.Marshal(orEmpty(plan.RequiredActions))
	if err != nil {
		return fmt.Errorf("encode required_actions: %w", err)
	}
	completed, err := json.Marshal(orEmpty(plan.CompletedActions))
	if err != nil {
		return fmt.Errorf("encode completed_actions: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query, plan.UserID, required, completed)
	return err
}

func orEmpty(keys []actions.Key) []actions.Key {
	if keys == nil {
		return []actions.Key{}
	}
	return keys
}
