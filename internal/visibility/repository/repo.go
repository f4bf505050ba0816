package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// Retention is the per-brand cap; the oldest runs are evicted beyond it.
const Retention = 100

// RunRepository is the append-only per-brand history of completed runs.
// For one normalized brand key, runs are stored in arrival order:
// "latest" is the last stored run and "previous" the second-to-last.
type RunRepository interface {
	Store(ctx context.Context, run *domain.AnalysisRun) error
	Latest(ctx context.Context, brand string) (*domain.AnalysisRun, error)
	Previous(ctx context.Context, brand string) (*domain.AnalysisRun, error)
	ByID(ctx context.Context, runID string) (*domain.AnalysisRun, error)
	History(ctx context.Context, brand string, limit int) ([]domain.RunSummary, error)
}

// BrandKey normalizes a raw brand string to its history key: lowercase,
// leading "www." and trailing slash stripped. Two raw strings that
// normalize identically share one history line.
func BrandKey(brand string) string {
	key := strings.ToLower(strings.TrimSpace(brand))
	key = strings.TrimPrefix(key, "www.")
	key = strings.TrimSuffix(key, "/")
	return key
}

// Memory keeps run history in process memory. History is lost on restart,
// which the pipeline's contract allows.
type Memory struct {
	mu    sync.RWMutex
	runs  map[string][]*domain.AnalysisRun
	byID  map[string]*domain.AnalysisRun
}

func NewMemory() *Memory {
	return &Memory{
		runs: map[string][]*domain.AnalysisRun{},
		byID: map[string]*domain.AnalysisRun{},
	}
}

func (m *Memory) Store(_ context.Context, run *domain.AnalysisRun) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	key := BrandKey(run.Request.Brand)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[key] = append(m.runs[key], run)
	m.byID[run.RunID] = run

	if len(m.runs[key]) > Retention {
		evicted := m.runs[key][:len(m.runs[key])-Retention]
		for _, old := range evicted {
			delete(m.byID, old.RunID)
		}
		m.runs[key] = m.runs[key][len(m.runs[key])-Retention:]
	}
	return nil
}

func (m *Memory) Latest(_ context.Context, brand string) (*domain.AnalysisRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.runs[BrandKey(brand)]
	if len(history) == 0 {
		return nil, domain.ErrNoRuns
	}
	return history[len(history)-1], nil
}

func (m *Memory) Previous(_ context.Context, brand string) (*domain.AnalysisRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.runs[BrandKey(brand)]
	if len(history) < 2 {
		return nil, domain.ErrNoPreviousRun
	}
	return history[len(history)-2], nil
}

func (m *Memory) ByID(_ context.Context, runID string) (*domain.AnalysisRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.byID[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return run, nil
}

func (m *Memory) History(_ context.Context, brand string, limit int) ([]domain.RunSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.runs[BrandKey(brand)]
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}

	out := make([]domain.RunSummary, 0, limit)
	for i := len(history) - 1; i >= len(history)-limit; i-- {
		out = append(out, history[i].Summary())
	}
	return out, nil
}
