package postgresql

import (
	"context"
	"fmt"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/audit"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepository{db: db}
}

// Create implements audit.Repository.
func (r *auditRepository) Create(ctx context.Context, entry audit.Entry) (audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO auditoria_cambios (id, usuario_id, empresa_id, accion, modelo_afectado, registro_id, motivo, fecha)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, fecha
	`

	err := q.QueryRow(ctx, query,
		entry.UserID,
		entry.CompanyID,
		entry.Action,
		entry.Model,
		entry.RecordID,
		entry.Reason,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return audit.Entry{}, fmt.Errorf("failed to create audit entry: %w", err)
	}

	return entry, nil
}

// List implements audit.Repository.
func (r *auditRepository) List(ctx context.Context, filter audit.ListFilter) ([]audit.Entry, error) {
	if len(filter.CompanyIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	baseWhere := "a.empresa_id = ANY($1)"
	args := []interface{}{filter.CompanyIDs}
	if filter.CompanyID != nil && *filter.CompanyID != "" {
		baseWhere += " AND a.empresa_id = $2"
		args = append(args, *filter.CompanyID)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.usuario_id, a.empresa_id, a.accion, a.modelo_afectado,
			   a.registro_id, a.motivo, a.fecha,
			   u.email, e.razon_social
		FROM auditoria_cambios a
		JOIN usuarios u ON u.id = a.usuario_id
		LEFT JOIN empresas e ON e.id = a.empresa_id
		WHERE %s
		ORDER BY a.fecha DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		err := rows.Scan(
			&e.ID, &e.UserID, &e.CompanyID, &e.Action, &e.Model,
			&e.RecordID, &e.Reason, &e.CreatedAt,
			&e.UserEmail, &e.CompanyName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
