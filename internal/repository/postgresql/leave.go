package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/leave"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

const leaveSelectColumns = `
	l.id, l.trabajador_id, l.tipo, l.fecha_inicio, l.fecha_fin, l.dias,
	l.motivo_detallado, l.adjunto_url, l.estado, l.creado_por, l.creado_en,
	l.resuelto_por, l.resuelto_en,
	t.nombres, t.apellidos, t.empresa_id, e.razon_social
`

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO licencias (
			id, trabajador_id, tipo, fecha_inicio, fecha_fin, dias,
			motivo_detallado, adjunto_url, estado, creado_por, creado_en
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, creado_en
	`

	err := q.QueryRow(ctx, query,
		req.WorkerID,
		req.Type,
		req.StartDate,
		req.EndDate,
		req.Days,
		req.Reason,
		req.AttachmentURL,
		req.Status,
		req.CreatedBy,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM licencias l
		JOIN trabajadores t ON t.id = l.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE l.id = $1
	`, leaveSelectColumns)

	l, err := r.scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return l, nil
}

// ListByWorker implements leave.Repository.
func (r *leaveRepository) ListByWorker(ctx context.Context, workerID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM licencias l
		JOIN trabajadores t ON t.id = l.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE l.trabajador_id = $1
		ORDER BY l.creado_en DESC
	`, leaveSelectColumns)

	return r.queryLeaves(ctx, q, query, workerID)
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
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
		FROM licencias l
		JOIN trabajadores t ON t.id = l.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE %s
		ORDER BY l.creado_en DESC
	`, leaveSelectColumns, baseWhere)

	return r.queryLeaves(ctx, q, query, args...)
}

// Resolve implements leave.Repository. The estado precondition lives in the
// UPDATE itself so two concurrent resolvers cannot both succeed.
func (r *leaveRepository) Resolve(ctx context.Context, id string, status leave.Status, resolvedBy string, resolvedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE licencias
		SET estado = $2, resuelto_por = $3, resuelto_en = $4
		WHERE id = $1 AND estado = $5
	`, id, status, resolvedBy, resolvedAt, leave.StatusPending)
	if err != nil {
		return fmt.Errorf("failed to resolve leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either missing or no longer pending; distinguish for the caller.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM licencias WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check leave request: %w", err)
		}
		if !exists {
			return leave.ErrNotFound
		}
		return leave.ErrAlreadyResolved
	}
	return nil
}

func (r *leaveRepository) scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.WorkerID, &l.Type, &l.StartDate, &l.EndDate, &l.Days,
		&l.Reason, &l.AttachmentURL, &l.Status, &l.CreatedBy, &l.CreatedAt,
		&l.ResolvedBy, &l.ResolvedAt,
		&l.WorkerFirstNames, &l.WorkerLastNames, &l.CompanyID, &l.CompanyName,
	)
	return l, err
}

func (r *leaveRepository) queryLeaves(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var leaves []leave.LeaveRequest
	for rows.Next() {
		l, err := r.scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	return leaves, rows.Err()
}
