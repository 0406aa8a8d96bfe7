package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/vacation"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type vacationRepository struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.Repository {
	return &vacationRepository{db: db}
}

const vacationSelectColumns = `
	v.id, v.trabajador_id, v.fecha_inicio, v.fecha_fin, v.dias, v.estado,
	v.creado_por, v.creado_en, v.resuelto_por, v.resuelto_en,
	t.nombres, t.apellidos, t.empresa_id, e.razon_social
`

// Create implements vacation.Repository.
func (r *vacationRepository) Create(ctx context.Context, req vacation.VacationRequest) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacaciones (
			id, trabajador_id, fecha_inicio, fecha_fin, dias, estado, creado_por, creado_en
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, creado_en
	`

	err := q.QueryRow(ctx, query,
		req.WorkerID,
		req.StartDate,
		req.EndDate,
		req.Days,
		req.Status,
		req.CreatedBy,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return vacation.VacationRequest{}, fmt.Errorf("failed to create vacation request: %w", err)
	}

	return req, nil
}

// GetByID implements vacation.Repository.
func (r *vacationRepository) GetByID(ctx context.Context, id string) (vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacaciones v
		JOIN trabajadores t ON t.id = v.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE v.id = $1
	`, vacationSelectColumns)

	v, err := r.scanVacation(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return vacation.VacationRequest{}, vacation.ErrNotFound
		}
		return vacation.VacationRequest{}, fmt.Errorf("failed to get vacation request: %w", err)
	}
	return v, nil
}

// ListByWorker implements vacation.Repository.
func (r *vacationRepository) ListByWorker(ctx context.Context, workerID string) ([]vacation.VacationRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacaciones v
		JOIN trabajadores t ON t.id = v.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE v.trabajador_id = $1
		ORDER BY v.creado_en DESC
	`, vacationSelectColumns)

	return r.queryVacations(ctx, q, query, workerID)
}

// List implements vacation.Repository.
func (r *vacationRepository) List(ctx context.Context, filter vacation.ListFilter) ([]vacation.VacationRequest, error) {
	if len(filter.CompanyIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	baseWhere := "t.empresa_id = ANY($1)"
	args := []interface{}{filter.CompanyIDs}
	if filter.CompanyID != nil && *filter.CompanyID != "" {
		baseWhere += " AND t.empresa_id = $2"
		args = append(args, *filter.CompanyID)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM vacaciones v
		JOIN trabajadores t ON t.id = v.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE %s
		ORDER BY v.creado_en DESC
	`, vacationSelectColumns, baseWhere)

	return r.queryVacations(ctx, q, query, args...)
}

// Resolve implements vacation.Repository.
func (r *vacationRepository) Resolve(ctx context.Context, id string, status vacation.Status, resolvedBy string, resolvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE vacaciones
		SET estado = $2, resuelto_por = $3, resuelto_en = $4
		WHERE id = $1 AND estado = $5
	`, id, status, resolvedBy, resolvedAt, vacation.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to resolve vacation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vacaciones WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check vacation request: %w", err)
		}
		if !exists {
			return vacation.ErrNotFound
		}
		return vacation.ErrAlreadyResolved
	}
	return nil
}

func (r *vacationRepository) scanVacation(row pgx.Row) (vacation.VacationRequest, error) {
	var v vacation.VacationRequest
	err := row.Scan(
		&v.ID, &v.WorkerID, &v.StartDate, &v.EndDate, &v.Days, &v.Status,
		&v.CreatedBy, &v.CreatedAt, &v.ResolvedBy, &v.ResolvedAt,
		&v.WorkerFirstNames, &v.WorkerLastNames, &v.CompanyID, &v.CompanyName,
	)
	return v, err
}

func (r *vacationRepository) queryVacations(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]vacation.VacationRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacation requests: %w", err)
	}
	defer rows.Close()

	var vacations []vacation.VacationRequest
	for rows.Next() {
		v, err := r.scanVacation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vacation request: %w", err)
		}
		vacations = append(vacations, v)
	}
	return vacations, rows.Err()
}
