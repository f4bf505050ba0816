package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisRepo(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedis(client), mr
}

func TestRedis_StoreAndLatest(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRedisRepo(t)

	run := newRun("Acme", 55)
	require.NoError(t, repo.Store(ctx, run))
	require.NotEmpty(t, run.RunID)

	latest, err := repo.Latest(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, run.RunID, latest.RunID)
	assert.Equal(t, 55, latest.Score.Percentage)

	// both the history list and the by-id key carry a TTL
	assert.Greater(t, mr.TTL("radius:brand:acme:runs").Seconds(), 0.0)
	assert.Greater(t, mr.TTL("radius:run:"+run.RunID).Seconds(), 0.0)
}

func TestRedis_MissingHistoryErrors(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRedisRepo(t)

	_, err := repo.Latest(ctx, "nobody")
	require.ErrorIs(t, err, domain.ErrNoRuns)

	_, err = repo.Previous(ctx, "nobody")
	require.ErrorIs(t, err, domain.ErrNoPreviousRun)

	require.NoError(t, repo.Store(ctx, newRun("Acme", 40)))
	_, err = repo.Previous(ctx, "Acme")
	require.ErrorIs(t, err, domain.ErrNoPreviousRun)
}

func TestRedis_PreviousReturnsSecondToLast(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRedisRepo(t)

	first := newRun("Acme", 40)
	second := newRun("Acme", 65)
	require.NoError(t, repo.Store(ctx, first))
	require.NoError(t, repo.Store(ctx, second))

	prev, err := repo.Previous(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, first.RunID, prev.RunID)

	latest, err := repo.Latest(ctx, "Acme")
	require.NoError(t, err)
	assert.Equal(t, second.RunID, latest.RunID)
}

func TestRedis_ByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRedisRepo(t)

	run := newRun("Acme", 70)
	require.NoError(t, repo.Store(ctx, run))

	got, err := repo.ByID(ctx, run.RunID)
	require.NoError(t, err)
	assert.Equal(t, 70, got.Score.Percentage)

	_, err = repo.ByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestRedis_HistoryMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRedisRepo(t)

	ids := make([]string, 4)
	for i := range ids {
		run := newRun("Acme", i*10)
		require.NoError(t, repo.Store(ctx, run))
		ids[i] = run.RunID
	}

	history, err := repo.History(ctx, "Acme", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, ids[3], history[0].RunID)
	assert.Equal(t, ids[2], history[1].RunID)

	all, err := repo.History(ctx, "Acme", 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRedis_RetentionTrimsList(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRedisRepo(t)

	for i := 0; i < Retention+3; i++ {
		require.NoError(t, repo.Store(ctx, newRun("Acme", i%100)))
	}

	items, err := mr.List("radius:brand:acme:runs")
	require.NoError(t, err)
	assert.Len(t, items, Retention)
}

func TestRedis_BrandKeySharing(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRedisRepo(t)

	require.NoError(t, repo.Store(ctx, newRun("WWW.Example.com/", 25)))

	latest, err := repo.Latest(ctx, "example.com")
	require.NoError(t, err)
	assert.Equal(t, 25, latest.Score.Percentage)
}
