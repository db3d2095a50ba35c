package plans

import (
	"context"
	"sync"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	plans map[string]DailyPlan
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{plans: make(map[string]DailyPlan)}
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (DailyPlan, error) {
	if err := ctx.Err(); err != nil {
		return DailyPlan{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	plan, ok := r.plans[userID]
	if !ok {
		return DailyPlan{}, ErrNotFound
	}
	return plan, nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, plan DailyPlan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.UserID] = plan
	return nil
}
