package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

const (
	// brandRunsPrefix keys the per-brand run list: radius:brand:{key}:runs
	brandRunsPrefix = "radius:brand:"
	// runKeyPrefix keys full run data by id: radius:run:{run_id}
	runKeyPrefix = "radius:run:"

	runTTL = 30 * 24 * time.Hour
)

// Redis keeps run history in Redis so it survives process restarts.
// Same-brand appends are serialized by Redis's single-threaded command
// execution; the LTRIM keeps only the Retention newest runs.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Store(ctx context.Context, run *domain.AnalysisRun) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	brandKey := r.brandRunsKey(run.Request.Brand)

	pipe := r.client.Pipeline()
	pipe.RPush(ctx, brandKey, data)
	pipe.LTrim(ctx, brandKey, int64(-Retention), -1)
	pipe.Expire(ctx, brandKey, runTTL)
	pipe.Set(ctx, r.runKey(run.RunID), data, runTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store run: %w", err)
	}
	return nil
}

func (r *Redis) Latest(ctx context.Context, brand string) (*domain.AnalysisRun, error) {
	return r.atIndex(ctx, brand, -1, domain.ErrNoRuns)
}

func (r *Redis) Previous(ctx context.Context, brand string) (*domain.AnalysisRun, error) {
	return r.atIndex(ctx, brand, -2, domain.ErrNoPreviousRun)
}

func (r *Redis) atIndex(ctx context.Context, brand string, idx int64, missing error) (*domain.AnalysisRun, error) {
	data, err := r.client.LIndex(ctx, r.brandRunsKey(brand), idx).Result()
	if err == redis.Nil {
		return nil, missing
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read run history: %w", err)
	}

	var run domain.AnalysisRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}

func (r *Redis) ByID(ctx context.Context, runID string) (*domain.AnalysisRun, error) {
	data, err := r.client.Get(ctx, r.runKey(runID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	var run domain.AnalysisRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &run, nil
}

func (r *Redis) History(ctx context.Context, brand string, limit int) ([]domain.RunSummary, error) {
	start := int64(0)
	if limit > 0 {
		start = int64(-limit)
	}

	items, err := r.client.LRange(ctx, r.brandRunsKey(brand), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read run history: %w", err)
	}

	// most-recent-first
	out := make([]domain.RunSummary, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		var run domain.AnalysisRun
		if err := json.Unmarshal([]byte(items[i]), &run); err != nil {
			return nil, fmt.Errorf("failed to unmarshal run: %w", err)
		}
		out = append(out, run.Summary())
	}
	return out, nil
}

func (r *Redis) brandRunsKey(brand string) string {
	return fmt.Sprintf("%s%s:runs", brandRunsPrefix, BrandKey(brand))
}

func (r *Redis) runKey(runID string) string {
	return fmt.Sprintf("%s%s", runKeyPrefix, runID)
}
