// internal/common/database/postgres_test.go
package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"saas-benchmarks/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var scenarioColumns = []string{"id", "name", "baseline", "scenario", "created_by", "created_at"}

func newScenarioRepo(t *testing.T) (*ScenarioRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := NewScenarioRepository(db, "saved_scenarios")
	repo.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo, mock
}

func TestScenarioRepository_Save(t *testing.T) {
	repo, mock := newScenarioRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO saved_scenarios")).
		WithArgs(sqlmock.AnyArg(), "Growth Acceleration", sqlmock.AnyArg(), sqlmock.AnyArg(), "analyst@example.com", time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	base := models.DefaultCompanyMetrics()
	scenario := base
	scenario.ARRGrowth = 100

	saved, err := repo.Save(context.Background(), models.SavedScenario{
		Name:      "Growth Acceleration",
		Baseline:  base,
		Scenario:  scenario,
		CreatedBy: "analyst@example.com",
	})
	require.NoError(t, err)

	assert.Len(t, saved.ID, 36)
	assert.Equal(t, 2025, saved.CreatedAt.Year())
	assert.Equal(t, 100.0, saved.Scenario.ARRGrowth)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScenarioRepository_SaveFails(t *testing.T) {
	repo, mock := newScenarioRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO saved_scenarios")).
		WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.Save(context.Background(), models.SavedScenario{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert scenario")
}

func TestScenarioRepository_Get(t *testing.T) {
	repo, mock := newScenarioRepo(t)
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM saved_scenarios WHERE id = $1")).
		WithArgs("8c1f").
		WillReturnRows(sqlmock.NewRows(scenarioColumns).
			AddRow("8c1f", "Efficiency Focus", []byte(`{"arrGrowth":80,"fcfMargin":-20}`), []byte(`{"arrGrowth":70,"fcfMargin":-5}`), nil, created))

	got, err := repo.Get(context.Background(), "8c1f")
	require.NoError(t, err)

	assert.Equal(t, "Efficiency Focus", got.Name)
	assert.Equal(t, 80.0, got.Baseline.ARRGrowth)
	assert.Equal(t, -5.0, got.Scenario.FCFMargin)
	assert.Empty(t, got.CreatedBy)
	assert.Equal(t, created, got.CreatedAt)
}

func TestScenarioRepository_GetMissing(t *testing.T) {
	repo, mock := newScenarioRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM saved_scenarios WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(scenarioColumns))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScenarioRepository_ListByName(t *testing.T) {
	repo, mock := newScenarioRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1")).
		WithArgs("Balanced Growth", 10).
		WillReturnRows(sqlmock.NewRows(scenarioColumns).
			AddRow("a", "Balanced Growth", []byte(`{}`), []byte(`{}`), "x", now).
			AddRow("b", "Balanced Growth", []byte(`{}`), []byte(`{}`), "y", now.Add(-time.Hour)))

	got, err := repo.ListByName(context.Background(), "Balanced Growth", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "y", got[1].CreatedBy)
}

func TestScenarioRepository_EnsureSchema(t *testing.T) {
	repo, mock := newScenarioRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS saved_scenarios")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
