package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/attendance"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const clockEventSelectColumns = `
	m.id, m.trabajador_id, m.tipo_marca, m.timestamp, m.hash,
	t.nombres, t.apellidos, t.empresa_id, e.razon_social
`

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, event attendance.ClockEvent) (attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO marcas (id, trabajador_id, tipo_marca, timestamp, hash)
		VALUES (uuidv7(), $1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		event.WorkerID,
		event.Type,
		event.Timestamp,
		event.Hash,
	).Scan(&event.ID)
	if err != nil {
		return attendance.ClockEvent{}, fmt.Errorf("failed to create clock event: %w", err)
	}

	return event, nil
}

// ListByWorkerBetween implements attendance.Repository.
func (r *attendanceRepository) ListByWorkerBetween(ctx context.Context, workerID string, from, to time.Time) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM marcas m
		JOIN trabajadores t ON t.id = m.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE m.trabajador_id = $1 AND m.timestamp BETWEEN $2 AND $3
		ORDER BY m.timestamp ASC
	`, clockEventSelectColumns)

	return r.queryEvents(ctx, q, query, workerID, from, to)
}

// ListByWorker implements attendance.Repository.
func (r *attendanceRepository) ListByWorker(ctx context.Context, workerID string) ([]attendance.ClockEvent, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM marcas m
		JOIN trabajadores t ON t.id = m.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE m.trabajador_id = $1
		ORDER BY m.timestamp DESC
	`, clockEventSelectColumns)

	return r.queryEvents(ctx, q, query, workerID)
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.ClockEvent, error) {
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
		FROM marcas m
		JOIN trabajadores t ON t.id = m.trabajador_id
		LEFT JOIN empresas e ON e.id = t.empresa_id
		WHERE %s
		ORDER BY m.timestamp DESC
	`, clockEventSelectColumns, baseWhere)

	return r.queryEvents(ctx, q, query, args...)
}

func (r *attendanceRepository) queryEvents(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.ClockEvent, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query clock events: %w", err)
	}
	defer rows.Close()

	var events []attendance.ClockEvent
	for rows.Next() {
		var e attendance.ClockEvent
		err := rows.Scan(
			&e.ID, &e.WorkerID, &e.Type, &e.Timestamp, &e.Hash,
			&e.WorkerFirstNames, &e.WorkerLastNames, &e.CompanyID, &e.CompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
