package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Neicx/Kivo-Asistencia/internal/domain/user"
	"github.com/Neicx/Kivo-Asistencia/internal/domain/worker"
	"github.com/Neicx/Kivo-Asistencia/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

const userSelectColumns = `
	u.id, u.trabajador_id, u.rut, u.email, u.password_hash, u.rol, u.estado, u.creado_en,
	t.id, t.empresa_id, t.rut, t.nombres, t.apellidos, t.cargo, t.area_trabajador,
	t.tipo_contrato, t.estado, t.turno_id
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	var w worker.Worker
	var workerID, workerCompanyID, workerRUT, workerFirstNames, workerLastNames *string
	var workerPosition, workerArea, workerContract, workerStatus, workerShiftID *string

	err := row.Scan(
		&u.ID, &u.WorkerID, &u.RUT, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt,
		&workerID, &workerCompanyID, &workerRUT, &workerFirstNames, &workerLastNames,
		&workerPosition, &workerArea, &workerContract, &workerStatus, &workerShiftID,
	)
	if err != nil {
		return user.User{}, err
	}

	if workerID != nil {
		w.ID = *workerID
		w.CompanyID = workerCompanyID
		if workerRUT != nil {
			w.RUT = *workerRUT
		}
		if workerFirstNames != nil {
			w.FirstNames = *workerFirstNames
		}
		if workerLastNames != nil {
			w.LastNames = *workerLastNames
		}
		w.Position = workerPosition
		w.Area = workerArea
		if workerContract != nil {
			w.ContractType = worker.ContractType(*workerContract)
		}
		if workerStatus != nil {
			w.Status = worker.Status(*workerStatus)
		}
		w.ShiftID = workerShiftID
		u.Worker = &w
	}

	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM usuarios u
		LEFT JOIN trabajadores t ON t.id = u.trabajador_id
		WHERE u.id = $1
	`, userSelectColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return u, nil
}

// GetByRUT implements user.Repository.
func (r *userRepository) GetByRUT(ctx context.Context, rut string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM usuarios u
		LEFT JOIN trabajadores t ON t.id = u.trabajador_id
		WHERE u.rut = $1
	`, userSelectColumns)

	u, err := scanUser(q.QueryRow(ctx, query, rut))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by rut: %w", err)
	}
	return u, nil
}

// Create implements user.Repository.
func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO usuarios (id, trabajador_id, rut, email, password_hash, rol, estado, creado_en)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, creado_en
	`

	err := q.QueryRow(ctx, query,
		newUser.WorkerID,
		newUser.RUT,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.Status,
	).Scan(&newUser.ID, &newUser.CreatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Update implements user.Repository.
func (r *userRepository) Update(ctx context.Context, req user.UpdateUserFields) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Email != nil {
		sets = append(sets, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.PasswordHash != nil {
		sets = append(sets, fmt.Sprintf("password_hash = $%d", argIdx))
		args = append(args, *req.PasswordHash)
		argIdx++
	}
	if req.Role != nil {
		sets = append(sets, fmt.Sprintf("rol = $%d", argIdx))
		args = append(args, *req.Role)
		argIdx++
	}
	if req.Status != nil {
		sets = append(sets, fmt.Sprintf("estado = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.WorkerID != nil {
		sets = append(sets, fmt.Sprintf("trabajador_id = $%d", argIdx))
		args = append(args, *req.WorkerID)
		argIdx++
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, req.ID)
	query := fmt.Sprintf("UPDATE usuarios SET %s WHERE id = $%d", strings.Join(sets, ", "), argIdx)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// ExistsByRUTOrEmail implements user.Repository.
func (r *userRepository) ExistsByRUTOrEmail(ctx context.Context, rut, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE rut = $1 OR email = $2)`,
		rut, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// ListAffiliations implements user.Repository.
func (r *userRepository) ListAffiliations(ctx context.Context, userID string) ([]user.CompanyAffiliation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ue.id, ue.usuario_id, ue.empresa_id, ue.rol, e.razon_social
		FROM usuario_empresas ue
		JOIN empresas e ON e.id = ue.empresa_id
		WHERE ue.usuario_id = $1
		ORDER BY e.razon_social
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list affiliations: %w", err)
	}
	defer rows.Close()

	var affiliations []user.CompanyAffiliation
	for rows.Next() {
		var a user.CompanyAffiliation
		if err := rows.Scan(&a.ID, &a.UserID, &a.CompanyID, &a.Role, &a.CompanyName); err != nil {
			return nil, fmt.Errorf("failed to scan affiliation: %w", err)
		}
		affiliations = append(affiliations, a)
	}
	return affiliations, rows.Err()
}

// ReplaceAffiliations implements user.Repository.
func (r *userRepository) ReplaceAffiliations(ctx context.Context, userID string, affiliations []user.CompanyAffiliation) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM usuario_empresas WHERE usuario_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear affiliations: %w", err)
	}

	for _, a := range affiliations {
		_, err := q.Exec(ctx, `
			INSERT INTO usuario_empresas (id, usuario_id, empresa_id, rol)
			VALUES (uuidv7(), $1, $2, $3)
			ON CONFLICT (usuario_id, empresa_id) DO UPDATE SET rol = EXCLUDED.rol
		`, userID, a.CompanyID, a.Role)
		if err != nil {
			return fmt.Errorf("failed to insert affiliation: %w", err)
		}
	}
	return nil
}

// ListByCompanies implements user.Repository.
func (r *userRepository) ListByCompanies(ctx context.Context, companyIDs []string, companyID *string) ([]user.User, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	baseWhere := "ue.empresa_id = ANY($1)"
	args := []interface{}{companyIDs}
	if companyID != nil && *companyID != "" {
		baseWhere += " AND ue.empresa_id = $2"
		args = append(args, *companyID)
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT %s
		FROM usuarios u
		JOIN usuario_empresas ue ON ue.usuario_id = u.id
		LEFT JOIN trabajadores t ON t.id = u.trabajador_id
		WHERE %s
		ORDER BY u.email
	`, userSelectColumns, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by companies: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
