package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/company"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepository{db: db}
}

const workerSelectColumns = `
	t.id, t.empresa_id, t.rut, t.nombres, t.apellidos, t.fecha_ingreso, t.cargo,
	t.area_trabajador, t.tipo_contrato, t.correo, t.estado, t.turno_id, t.creado_en,
	e.razon_social,
	tu.id, tu.empresa_id, tu.nombre, tu.hora_entrada, tu.hora_salida, tu.tolerancia_minutos
`

func scanWorker(row pgx.Row) (worker.Worker, error) {
	var w worker.Worker
	var shiftID, shiftCompanyID, shiftName, shiftEntry, shiftExit *string
	var shiftTolerance *int

	err := row.Scan(
		&w.ID, &w.CompanyID, &w.RUT, &w.FirstNames, &w.LastNames, &w.HireDate, &w.Position,
		&w.Area, &w.ContractType, &w.Email, &w.Status, &w.ShiftID, &w.CreatedAt,
		&w.CompanyName,
		&shiftID, &shiftCompanyID, &shiftName, &shiftEntry, &shiftExit, &shiftTolerance,
	)
	if err != nil {
		return worker.Worker{}, err
	}

	if shiftID != nil {
		w.Shift = &company.Shift{
			ID:               *shiftID,
			CompanyID:        *shiftCompanyID,
			Name:             *shiftName,
			EntryTime:        *shiftEntry,
			ExitTime:         *shiftExit,
			ToleranceMinutes: *shiftTolerance,
		}
	}

	return w, nil
}

// GetByID implements worker.Repository.
func (r *workerRepository) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM trabajadores t
		LEFT JOIN empresas e ON e.id = t.empresa_id
		LEFT JOIN turnos tu ON tu.id = t.turno_id
		WHERE t.id = $1
	`, workerSelectColumns)

	w, err := scanWorker(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker by id: %w", err)
	}
	return w, nil
}

// GetByIDInCompanies implements worker.Repository.
func (r *workerRepository) GetByIDInCompanies(ctx context.Context, id string, companyIDs []string) (worker.Worker, error) {
	if len(companyIDs) == 0 {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM trabajadores t
		LEFT JOIN empresas e ON e.id = t.empresa_id
		LEFT JOIN turnos tu ON tu.id = t.turno_id
		WHERE t.id = $1 AND t.empresa_id = ANY($2)
	`, workerSelectColumns)

	w, err := scanWorker(q.QueryRow(ctx, query, id, companyIDs))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, fmt.Errorf("failed to get worker in companies: %w", err)
	}
	return w, nil
}
