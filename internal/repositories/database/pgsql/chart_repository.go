package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_app/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_app/internal/models"
	"github.com/SscSPs/bookkeeping_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxChartRepository struct {
	db pgQuerier
}

// newPgxChartRepository creates a new repository for chart heads.
func newPgxChartRepository(db pgQuerier) *PgxChartRepository {
	return &PgxChartRepository{db: db}
}

var _ portsrepo.ChartRepositoryFacade = (*PgxChartRepository)(nil)

const chartColumns = `chart_id, user_id, name, account_type, date, created_at, created_by, last_updated_at, last_updated_by`

// SaveChart inserts a new chart head and returns its id.
func (r *PgxChartRepository) SaveChart(ctx context.Context, chart domain.Chart) (int64, error) {
	m := mapping.ToModelChart(chart)
	query := `
		INSERT INTO charts (user_id, name, account_type, date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING chart_id;
	`
	var id int64
	err := r.db.QueryRow(ctx, query,
		m.UserID, m.Name, m.AccountType, m.Date, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: chart %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return 0, fmt.Errorf("failed to save chart %q: %w", m.Name, err)
	}
	return id, nil
}

// FindChartByID retrieves a chart head owned by userID.
func (r *PgxChartRepository) FindChartByID(ctx context.Context, userID string, chartID int64) (*domain.Chart, error) {
	query := `SELECT ` + chartColumns + ` FROM charts WHERE user_id = $1 AND chart_id = $2;`
	return r.findOne(ctx, query, userID, chartID)
}

// FindChartByName retrieves a chart head by its exact name.
func (r *PgxChartRepository) FindChartByName(ctx context.Context, userID string, name string) (*domain.Chart, error) {
	query := `SELECT ` + chartColumns + ` FROM charts WHERE user_id = $1 AND name = $2;`
	return r.findOne(ctx, query, userID, name)
}

// ListCharts retrieves all chart heads owned by userID in name order.
func (r *PgxChartRepository) ListCharts(ctx context.Context, userID string) ([]domain.Chart, error) {
	query := `SELECT ` + chartColumns + ` FROM charts WHERE user_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list charts: %w", err)
	}
	defer rows.Close()

	var charts []models.Chart
	for rows.Next() {
		m, err := scanChart(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chart: %w", err)
		}
		charts = append(charts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chart rows: %w", err)
	}
	return mapping.ToDomainChartSlice(charts), nil
}

func (r *PgxChartRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Chart, error) {
	m, err := scanChart(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find chart: %w", err)
	}
	chart := mapping.ToDomainChart(m)
	return &chart, nil
}

func scanChart(s rowScanner) (models.Chart, error) {
	var m models.Chart
	err := s.Scan(
		&m.ChartID, &m.UserID, &m.Name, &m.AccountType, &m.Date,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
