package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/company"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepository{db: db}
}

// GetByID implements company.Repository.
func (r *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, razon_social, rut_empresa, direccion, comuna, ciudad, region, creado_en
		FROM empresas
		WHERE id = $1
	`

	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.LegalName, &c.TaxID, &c.Address, &c.Commune, &c.City, &c.Region, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company by id: %w", err)
	}
	return c, nil
}

// ListByIDs implements company.Repository.
func (r *companyRepository) ListByIDs(ctx context.Context, ids []string) ([]company.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, razon_social, rut_empresa, direccion, comuna, ciudad, region, creado_en
		FROM empresas
		WHERE id = ANY($1)
		ORDER BY razon_social
	`

	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.ID, &c.LegalName, &c.TaxID, &c.Address, &c.Commune, &c.City, &c.Region, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// ListShiftsByCompany implements company.Repository.
func (r *companyRepository) ListShiftsByCompany(ctx context.Context, companyID string) ([]company.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, empresa_id, nombre, hora_entrada, hora_salida, tolerancia_minutos
		FROM turnos
		WHERE empresa_id = $1
		ORDER BY nombre
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []company.Shift
	for rows.Next() {
		var s company.Shift
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.EntryTime, &s.ExitTime, &s.ToleranceMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}
