package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/app/models/dto"
	"github.com/lramirez/acredita/internal/db"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/dberrors"
)

// UsuarioRepository handles database operations for login accounts
type UsuarioRepository struct {
	database *db.PostgresDB
}

// NewUsuarioRepository creates a new account repository
func NewUsuarioRepository(database *db.PostgresDB) *UsuarioRepository {
	return &UsuarioRepository{database: database}
}

// GetByEmail retrieves an account with its role key
func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	query := `
		SELECT u.id_usuario, u.email, u.password_hash, u.nombre, u.rol_id, ro.clave
		FROM usuarios u
		JOIN roles ro ON ro.id_rol = u.rol_id
		WHERE u.email = $1
	`

	var usuario models.Usuario
	err := r.database.Pool.QueryRow(ctx, query, email).Scan(
		&usuario.ID,
		&usuario.Email,
		&usuario.PasswordHash,
		&usuario.Nombre,
		&usuario.RolID,
		&usuario.RolClave,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("error retrieving usuario: %w", err)
	}

	return &usuario, nil
}

// GetByID retrieves an account with its role key
func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*models.Usuario, error) {
	query := `
		SELECT u.id_usuario, u.email, u.password_hash, u.nombre, u.rol_id, ro.clave
		FROM usuarios u
		JOIN roles ro ON ro.id_rol = u.rol_id
		WHERE u.id_usuario = $1
	`

	var usuario models.Usuario
	err := r.database.Pool.QueryRow(ctx, query, id).Scan(
		&usuario.ID,
		&usuario.Email,
		&usuario.PasswordHash,
		&usuario.Nombre,
		&usuario.RolID,
		&usuario.RolClave,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("error retrieving usuario: %w", err)
	}

	return &usuario, nil
}

// GetAll retrieves accounts with role and, for coordinators, the career
func (r *UsuarioRepository) GetAll(ctx context.Context, rol, search string) ([]*dto.UsuarioResumen, error) {
	query := `
		SELECT u.id_usuario, u.email, u.nombre, ro.clave, c.id_carrera
		FROM usuarios u
		JOIN roles ro ON ro.id_rol = u.rol_id
		LEFT JOIN coordinadores c ON c.usuario_id = u.id_usuario
		WHERE 1=1
	`
	var args []any
	if rol != "" {
		args = append(args, rol)
		query += fmt.Sprintf(` AND ro.clave = $%d`, len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(` AND (u.email ILIKE $%d OR u.nombre ILIKE $%d)`, len(args), len(args))
	}
	query += ` ORDER BY u.id_usuario`

	rows, err := r.database.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumenes []*dto.UsuarioResumen
	for rows.Next() {
		var resumen dto.UsuarioResumen
		if err := rows.Scan(&resumen.ID, &resumen.Email, &resumen.Nombre, &resumen.Rol, &resumen.CarreraID); err != nil {
			return nil, err
		}
		resumenes = append(resumenes, &resumen)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resumenes, nil
}

// Create inserts an account and, for coordinators, its career assignment,
// in one transaction
func (r *UsuarioRepository) Create(ctx context.Context, usuario *models.Usuario, carreraID *string) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var rolID int
		err := tx.QueryRow(ctx,
			`SELECT id_rol FROM roles WHERE clave = $1`, usuario.RolClave).Scan(&rolID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrRolInvalid
			}
			return fmt.Errorf("error resolving rol: %w", err)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO usuarios (email, password_hash, nombre, rol_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id_usuario`,
			usuario.Email, usuario.PasswordHash, usuario.Nombre, rolID).Scan(&usuario.ID)
		if err != nil {
			if dberrors.IsDuplicate(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating usuario: %w", err)
		}
		usuario.RolID = rolID

		if usuario.RolClave == models.RolCoordinador && carreraID != nil {
			_, err = tx.Exec(ctx, `
				INSERT INTO coordinadores (usuario_id, id_carrera)
				VALUES ($1, $2)`,
				usuario.ID, *carreraID)
			if err != nil {
				if dberrors.IsMissingReference(err) {
					return apperrors.ErrCarreraMissing
				}
				return fmt.Errorf("error assigning coordinador: %w", err)
			}
		}

		return nil
	})
}

// UpdatePassword replaces the stored password hash
func (r *UsuarioRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	cmdTag, err := r.database.Pool.Exec(ctx,
		`UPDATE usuarios SET password_hash = $2 WHERE id_usuario = $1`, id, passwordHash)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUsuarioNotFound
	}

	return nil
}

// Delete removes an account. Coordinator assignments are dropped and any
// linked student is detached, never deleted, so its answers survive.
func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM coordinadores WHERE usuario_id = $1`, id); err != nil {
			return fmt.Errorf("error removing coordinador assignments: %w", err)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE estudiantes SET usuario_id = NULL WHERE usuario_id = $1`, id); err != nil {
			return fmt.Errorf("error detaching estudiante: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM usuarios WHERE id_usuario = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting usuario: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUsuarioNotFound
		}

		return nil
	})
}
