package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchive_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	run := newRun("WWW.Example.com/", 45)
	run.RunID = "run-1"
	run.CreatedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO visibility_run_archive").
		WithArgs("run-1", "example.com", 45, 1, 0, sqlmock.AnyArg(), run.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewArchive(db).Insert(context.Background(), run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchive_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO visibility_run_archive").
		WillReturnError(errors.New("connection reset"))

	err = NewArchive(db).Insert(context.Background(), newRun("Acme", 10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to archive run")
}

func TestArchive_History(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"run_id", "created_at", "visibility_pct", "query_count", "alert_count"}).
		AddRow("run-2", now, 60, 14, 2).
		AddRow("run-1", now.Add(-24*time.Hour), 45, 12, 0)

	mock.ExpectQuery("SELECT run_id, created_at, visibility_pct").
		WithArgs("acme", 10).
		WillReturnRows(rows)

	history, err := NewArchive(db).History(context.Background(), "Acme", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)

	assert.Equal(t, "run-2", history[0].RunID)
	assert.Equal(t, 60, history[0].VisibilityPercentage)
	assert.Equal(t, 14, history[0].QueryCount)
	assert.Equal(t, "run-1", history[1].RunID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchive_HistoryDefaultsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT run_id, created_at, visibility_pct").
		WithArgs("acme", Retention).
		WillReturnRows(sqlmock.NewRows([]string{"run_id", "created_at", "visibility_pct", "query_count", "alert_count"}))

	history, err := NewArchive(db).History(context.Background(), "Acme", 0)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NoError(t, mock.ExpectationsWereMet())
}
