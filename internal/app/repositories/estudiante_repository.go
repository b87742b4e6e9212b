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

// EstudianteRepository handles database operations for students and their
// linked login accounts
type EstudianteRepository struct {
	database *db.PostgresDB
	cascader *Cascader
}

// NewEstudianteRepository creates a new student repository
func NewEstudianteRepository(database *db.PostgresDB) *EstudianteRepository {
	return &EstudianteRepository{
		database: database,
		cascader: NewCascader(database),
	}
}

// ListFilter narrows the student roster query.
type ListFilter struct {
	// CarreraID keeps only students with answers in that career.
	CarreraID string
	// Search matches control number or name, case insensitive.
	Search string
	// SoloActivos keeps only students with at least one answer.
	SoloActivos bool
}

// GetAll retrieves the student roster with account email and answer counts
func (r *EstudianteRepository) GetAll(ctx context.Context, filter ListFilter) ([]*dto.EstudianteResumen, error) {
	query := `
		SELECT e.id_estudiante, e.nombre, u.email, COUNT(r.id_estudiante) AS respuestas
		FROM estudiantes e
		LEFT JOIN usuarios u ON u.id_usuario = e.usuario_id
		LEFT JOIN respuestas r ON r.id_estudiante = e.id_estudiante
		WHERE 1=1
	`
	var args []any
	if filter.CarreraID != "" {
		args = append(args, filter.CarreraID)
		query += fmt.Sprintf(`
			AND EXISTS (SELECT 1 FROM respuestas rc
				WHERE rc.id_estudiante = e.id_estudiante AND rc.id_carrera = $%d)`, len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(`
			AND (e.id_estudiante ILIKE $%d OR e.nombre ILIKE $%d)`, len(args), len(args))
	}
	query += `
		GROUP BY e.id_estudiante, e.nombre, u.email
	`
	if filter.SoloActivos {
		query += ` HAVING COUNT(r.id_estudiante) > 0`
	}
	query += ` ORDER BY e.id_estudiante`

	rows, err := r.database.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumenes []*dto.EstudianteResumen
	for rows.Next() {
		var resumen dto.EstudianteResumen
		if err := rows.Scan(&resumen.ID, &resumen.Nombre, &resumen.Email, &resumen.Respuestas); err != nil {
			return nil, err
		}
		resumen.Activo = resumen.Respuestas > 0
		resumenes = append(resumenes, &resumen)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resumenes, nil
}

// GetStats returns the aggregate roster card
func (r *EstudianteRepository) GetStats(ctx context.Context) (*dto.EstudiantesStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM estudiantes),
			(SELECT COUNT(DISTINCT id_estudiante) FROM respuestas),
			(SELECT COUNT(*) FROM estudiantes WHERE usuario_id IS NOT NULL),
			(SELECT COUNT(*) FROM respuestas)
	`

	var stats dto.EstudiantesStats
	err := r.database.Pool.QueryRow(ctx, query).Scan(
		&stats.Total, &stats.Activos, &stats.ConCuenta, &stats.Respuestas)
	if err != nil {
		return nil, fmt.Errorf("error retrieving estudiantes stats: %w", err)
	}

	return &stats, nil
}

// GetByID retrieves a student by control number
func (r *EstudianteRepository) GetByID(ctx context.Context, id string) (*models.Estudiante, error) {
	query := `
		SELECT id_estudiante, nombre, usuario_id
		FROM estudiantes
		WHERE id_estudiante = $1
	`

	var estudiante models.Estudiante
	err := r.database.Pool.QueryRow(ctx, query, id).Scan(
		&estudiante.ID, &estudiante.Nombre, &estudiante.UsuarioID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEstudianteNotFound
		}
		return nil, fmt.Errorf("error retrieving estudiante: %w", err)
	}

	return &estudiante, nil
}

// GetDetalle retrieves a student with the per-career answer summary
func (r *EstudianteRepository) GetDetalle(ctx context.Context, id string) (*dto.EstudianteDetalle, error) {
	query := `
		SELECT e.id_estudiante, e.nombre, u.email
		FROM estudiantes e
		LEFT JOIN usuarios u ON u.id_usuario = e.usuario_id
		WHERE e.id_estudiante = $1
	`

	var detalle dto.EstudianteDetalle
	err := r.database.Pool.QueryRow(ctx, query, id).Scan(&detalle.ID, &detalle.Nombre, &detalle.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEstudianteNotFound
		}
		return nil, fmt.Errorf("error retrieving estudiante: %w", err)
	}

	evalQuery := `
		SELECT id_carrera, COUNT(DISTINCT id_materia), COUNT(*)
		FROM respuestas
		WHERE id_estudiante = $1
		GROUP BY id_carrera
		ORDER BY id_carrera
	`

	rows, err := r.database.Pool.Query(ctx, evalQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detalle.Evaluaciones = []dto.EvaluacionCarrera{}
	for rows.Next() {
		var eval dto.EvaluacionCarrera
		if err := rows.Scan(&eval.CarreraID, &eval.Materias, &eval.Respuestas); err != nil {
			return nil, err
		}
		detalle.Evaluaciones = append(detalle.Evaluaciones, eval)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &detalle, nil
}

// CreateWithUsuario inserts the student together with its ALUMNO login
// account in one transaction and returns the new account id
func (r *EstudianteRepository) CreateWithUsuario(ctx context.Context, estudiante *models.Estudiante, email, passwordHash string) (int64, error) {
	var usuarioID int64
	err := r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO usuarios (email, password_hash, nombre, rol_id)
			VALUES ($1, $2, $3, (SELECT id_rol FROM roles WHERE clave = 'ALUMNO'))
			RETURNING id_usuario`,
			email, passwordHash, estudiante.Nombre).Scan(&usuarioID)
		if err != nil {
			if dberrors.IsDuplicate(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating usuario for estudiante: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO estudiantes (id_estudiante, nombre, usuario_id)
			VALUES ($1, $2, $3)`,
			estudiante.ID, estudiante.Nombre, usuarioID)
		if err != nil {
			if dberrors.IsDuplicate(err) {
				return apperrors.ErrEstudianteAlreadyExists
			}
			return fmt.Errorf("error creating estudiante: %w", err)
		}

		estudiante.UsuarioID = &usuarioID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return usuarioID, nil
}

// CreateBare inserts a student without a login account
func (r *EstudianteRepository) CreateBare(ctx context.Context, estudiante *models.Estudiante) error {
	_, err := r.database.Pool.Exec(ctx, `
		INSERT INTO estudiantes (id_estudiante, nombre, usuario_id)
		VALUES ($1, $2, $3)`,
		estudiante.ID, estudiante.Nombre, estudiante.UsuarioID)
	if err != nil {
		if dberrors.IsDuplicate(err) {
			return apperrors.ErrEstudianteAlreadyExists
		}
		return fmt.Errorf("error creating estudiante: %w", err)
	}

	return nil
}

// UpdateNombre renames a student
func (r *EstudianteRepository) UpdateNombre(ctx context.Context, id, nombre string) error {
	cmdTag, err := r.database.Pool.Exec(ctx,
		`UPDATE estudiantes SET nombre = $2 WHERE id_estudiante = $1`, id, nombre)
	if err != nil {
		return fmt.Errorf("error updating estudiante: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEstudianteNotFound
	}

	return nil
}

// cascadeSpec builds the dependency count and delete plan for one student.
// The linked login account and registrations go with the student but only
// answers gate the delete.
func (r *EstudianteRepository) cascadeSpec(id string) CascadeSpec {
	return CascadeSpec{
		Entity: "estudiante",
		Args:   []any{id},
		CountSQL: `
			SELECT
				(SELECT COUNT(*) FROM respuestas WHERE id_estudiante = $1)
		`,
		CountClasses: []string{"respuestas"},
		Steps: []CascadeStep{
			{Class: "respuestas", SQL: `DELETE FROM respuestas WHERE id_estudiante = $1`},
			{Class: "alumno_materia", SQL: `DELETE FROM alumno_materia WHERE id_estudiante = $1`},
			{Class: "usuarios", SQL: `
				DELETE FROM usuarios u
				USING estudiantes e
				WHERE u.id_usuario = e.usuario_id AND e.id_estudiante = $1`},
		},
		TargetSQL: `DELETE FROM estudiantes WHERE id_estudiante = $1`,
		NotFound:  apperrors.ErrEstudianteNotFound,
	}
}

// CountDependencies returns the dependent row counts for one student
func (r *EstudianteRepository) CountDependencies(ctx context.Context, id string) (DependencyCounts, error) {
	return r.cascader.CountDependencies(ctx, r.cascadeSpec(id))
}

// Delete removes a student, cascading over answers when force is set
func (r *EstudianteRepository) Delete(ctx context.Context, id string, force bool) (DeleteReport, error) {
	report, _, err := r.cascader.Delete(ctx, r.cascadeSpec(id), force)
	return report, err
}
