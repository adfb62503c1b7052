// internal/common/database/postgres.go
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"saas-benchmarks/internal/common/config"
	"saas-benchmarks/internal/models"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// ErrNotFound is returned when a lookup finds nothing.
var ErrNotFound = errors.New("not found")

// PostgresClient wraps the SQL database connection
type PostgresClient struct {
	DB *sql.DB
}

func NewPostgres(cfg config.PostgresConfig) (*PostgresClient, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &PostgresClient{DB: db}, nil
}

func (c *PostgresClient) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

func (c *PostgresClient) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// ScenarioRepository persists saved scenarios. Baseline and scenario
// metrics are stored as JSONB.
type ScenarioRepository struct {
	db    *sql.DB
	table string
	now   func() time.Time
}

func NewScenarioRepository(db *sql.DB, table string) *ScenarioRepository {
	if table == "" {
		table = "saved_scenarios"
	}
	return &ScenarioRepository{db: db, table: table, now: func() time.Time { return time.Now().UTC() }}
}

// EnsureSchema creates the scenario table when missing.
func (r *ScenarioRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			baseline JSONB NOT NULL,
			scenario JSONB NOT NULL,
			created_by TEXT,
			created_at TIMESTAMPTZ NOT NULL
		)`, r.table))
	if err != nil {
		return fmt.Errorf("create %s: %w", r.table, err)
	}
	return nil
}

// Save inserts s with a fresh ID and creation time and returns the stored
// row.
func (r *ScenarioRepository) Save(ctx context.Context, s models.SavedScenario) (models.SavedScenario, error) {
	baseline, err := json.Marshal(s.Baseline)
	if err != nil {
		return models.SavedScenario{}, fmt.Errorf("marshal baseline: %w", err)
	}
	scenario, err := json.Marshal(s.Scenario)
	if err != nil {
		return models.SavedScenario{}, fmt.Errorf("marshal scenario: %w", err)
	}

	s.ID = uuid.New().String()
	s.CreatedAt = r.now()

	_, err = r.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, name, baseline, scenario, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`, r.table),
		s.ID, s.Name, baseline, scenario, s.CreatedBy, s.CreatedAt,
	)
	if err != nil {
		return models.SavedScenario{}, fmt.Errorf("insert scenario: %w", err)
	}

	return s, nil
}

// Get loads one scenario by ID. A missing row is ErrNotFound.
func (r *ScenarioRepository) Get(ctx context.Context, id string) (models.SavedScenario, error) {
	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id, name, baseline, scenario, created_by, created_at
		FROM %s WHERE id = $1`, r.table), id)

	s, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SavedScenario{}, fmt.Errorf("scenario %s: %w", id, ErrNotFound)
	}
	return s, err
}

// ListByName returns the most recent scenarios with the given name.
func (r *ScenarioRepository) ListByName(ctx context.Context, name string, limit int) ([]models.SavedScenario, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, name, baseline, scenario, created_by, created_at
		FROM %s WHERE name = $1
		ORDER BY created_at DESC
		LIMIT $2`, r.table), name, limit)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var out []models.SavedScenario
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScenario(row rowScanner) (models.SavedScenario, error) {
	var (
		s                  models.SavedScenario
		baseline, scenario []byte
		createdBy          sql.NullString
	)
	if err := row.Scan(&s.ID, &s.Name, &baseline, &scenario, &createdBy, &s.CreatedAt); err != nil {
		return models.SavedScenario{}, err
	}
	if err := json.Unmarshal(baseline, &s.Baseline); err != nil {
		return models.SavedScenario{}, fmt.Errorf("decode baseline: %w", err)
	}
	if err := json.Unmarshal(scenario, &s.Scenario); err != nil {
		return models.SavedScenario{}, fmt.Errorf("decode scenario: %w", err)
	}
	s.CreatedBy = createdBy.String
	return s, nil
}
