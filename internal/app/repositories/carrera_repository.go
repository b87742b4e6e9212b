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

// CarreraRepository handles database operations for careers
type CarreraRepository struct {
	database *db.PostgresDB
	cascader *Cascader
}

// NewCarreraRepository creates a new career repository
func NewCarreraRepository(database *db.PostgresDB) *CarreraRepository {
	return &CarreraRepository{
		database: database,
		cascader: NewCascader(database),
	}
}

// Create inserts a new career
func (r *CarreraRepository) Create(ctx context.Context, carrera *models.Carrera) error {
	query := `
		INSERT INTO carreras (id_carrera, nom_carrera)
		VALUES ($1, $2)
	`

	_, err := r.database.Pool.Exec(ctx, query, carrera.ID, carrera.Nombre)
	if err != nil {
		if dberrors.IsDuplicate(err) {
			return apperrors.ErrCarreraAlreadyExists
		}
		return fmt.Errorf("error creating carrera: %w", err)
	}

	return nil
}

// GetByID retrieves a career by its code
func (r *CarreraRepository) GetByID(ctx context.Context, id string) (*models.Carrera, error) {
	query := `
		SELECT id_carrera, nom_carrera
		FROM carreras
		WHERE id_carrera = $1
	`

	var carrera models.Carrera
	err := r.database.Pool.QueryRow(ctx, query, id).Scan(&carrera.ID, &carrera.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCarreraNotFound
		}
		return nil, fmt.Errorf("error retrieving carrera: %w", err)
	}

	return &carrera, nil
}

// GetAll retrieves all careers ordered by code
func (r *CarreraRepository) GetAll(ctx context.Context) ([]*models.Carrera, error) {
	query := `
		SELECT id_carrera, nom_carrera
		FROM carreras
		ORDER BY id_carrera
	`

	rows, err := r.database.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carreras []*models.Carrera
	for rows.Next() {
		var carrera models.Carrera
		if err := rows.Scan(&carrera.ID, &carrera.Nombre); err != nil {
			return nil, err
		}
		carreras = append(carreras, &carrera)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return carreras, nil
}

// GetResumen retrieves the administration listing: every career with its
// coordinator, if any, and its materia and atributo totals. A career with
// several coordinators produces one row per coordinator.
func (r *CarreraRepository) GetResumen(ctx context.Context) ([]dto.CarreraResumen, error) {
	query := `
		SELECT c.id_carrera, c.nom_carrera, u.nombre, u.email,
			(SELECT COUNT(*) FROM materias m WHERE m.id_carrera = c.id_carrera),
			(SELECT COUNT(*) FROM atributos a WHERE a.id_carrera = c.id_carrera)
		FROM carreras c
		LEFT JOIN coordinadores co ON co.id_carrera = c.id_carrera
		LEFT JOIN usuarios u ON u.id_usuario = co.usuario_id
		ORDER BY c.id_carrera
	`

	rows, err := r.database.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumen []dto.CarreraResumen
	for rows.Next() {
		var row dto.CarreraResumen
		if err := rows.Scan(
			&row.ID, &row.Nombre,
			&row.Coordinador, &row.CoordinadorEmail,
			&row.Materias, &row.Atributos,
		); err != nil {
			return nil, err
		}
		resumen = append(resumen, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resumen, nil
}

// Update renames an existing career
func (r *CarreraRepository) Update(ctx context.Context, carrera *models.Carrera) error {
	query := `
		UPDATE carreras
		SET nom_carrera = $2
		WHERE id_carrera = $1
	`

	cmdTag, err := r.database.Pool.Exec(ctx, query, carrera.ID, carrera.Nombre)
	if err != nil {
		return fmt.Errorf("error updating carrera: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCarreraNotFound
	}

	return nil
}

// cascadeSpec builds the dependency count and delete plan for one career.
// Answers and registrations go first, then the per-career catalog rows,
// then coordinator assignments, then the career itself.
func (r *CarreraRepository) cascadeSpec(id string) CascadeSpec {
	return CascadeSpec{
		Entity: "carrera",
		Args:   []any{id},
		CountSQL: `
			SELECT
				(SELECT COUNT(*) FROM materias WHERE id_carrera = $1),
				(SELECT COUNT(*) FROM atributos WHERE id_carrera = $1),
				(SELECT COUNT(*) FROM criterios WHERE id_carrera = $1),
				(SELECT COUNT(*) FROM materia_atributo WHERE id_carrera = $1),
				(SELECT COUNT(*) FROM respuestas WHERE id_carrera = $1),
				(SELECT COUNT(*) FROM alumno_materia am
					JOIN materias m ON m.id_materia = am.id_materia
					WHERE m.id_carrera = $1),
				(SELECT COUNT(*) FROM coordinadores WHERE id_carrera = $1)
		`,
		CountClasses: []string{
			"materias", "atributos", "criterios", "materia_atributo",
			"respuestas", "alumno_materia", "coordinadores",
		},
		Steps: []CascadeStep{
			{Class: "respuestas", SQL: `DELETE FROM respuestas WHERE id_carrera = $1`},
			{Class: "alumno_materia", SQL: `
				DELETE FROM alumno_materia am
				USING materias m
				WHERE am.id_materia = m.id_materia AND m.id_carrera = $1`},
			{Class: "materia_atributo", SQL: `DELETE FROM materia_atributo WHERE id_carrera = $1`},
			{Class: "materia_atributo", SQL: `
				DELETE FROM materia_atributo ma
				USING materias m
				WHERE ma.id_materia = m.id_materia AND m.id_carrera = $1`},
			{Class: "criterios", SQL: `DELETE FROM criterios WHERE id_carrera = $1`},
			{Class: "atributos", SQL: `DELETE FROM atributos WHERE id_carrera = $1`},
			{Class: "materias", SQL: `DELETE FROM materias WHERE id_carrera = $1`},
			{Class: "coordinadores", SQL: `DELETE FROM coordinadores WHERE id_carrera = $1`},
		},
		TargetSQL: `DELETE FROM carreras WHERE id_carrera = $1`,
		NotFound:  apperrors.ErrCarreraNotFound,
	}
}

// CountDependencies returns the dependent row counts for one career
func (r *CarreraRepository) CountDependencies(ctx context.Context, id string) (DependencyCounts, error) {
	return r.cascader.CountDependencies(ctx, r.cascadeSpec(id))
}

// Delete removes a career, cascading over its dependents when force is set
func (r *CarreraRepository) Delete(ctx context.Context, id string, force bool) (DeleteReport, error) {
	report, _, err := r.cascader.Delete(ctx, r.cascadeSpec(id), force)
	return report, err
}
