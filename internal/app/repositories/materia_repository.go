package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/db"
	"github.com/lramirez/acredita/internal/pkg/apperrors"
	"github.com/lramirez/acredita/internal/pkg/dberrors"
)

// MateriaRepository handles database operations for subjects
type MateriaRepository struct {
	database *db.PostgresDB
	cascader *Cascader
}

// NewMateriaRepository creates a new subject repository
func NewMateriaRepository(database *db.PostgresDB) *MateriaRepository {
	return &MateriaRepository{
		database: database,
		cascader: NewCascader(database),
	}
}

// Create inserts a new subject
func (r *MateriaRepository) Create(ctx context.Context, materia *models.Materia) error {
	query := `
		INSERT INTO materias (id_materia, nom_materia, id_carrera, mat_fecini, mat_fecfin)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.database.Pool.Exec(ctx, query,
		materia.ID, materia.Nombre, materia.CarreraID, materia.FechaInicio, materia.FechaFin)
	if err != nil {
		if dberrors.IsDuplicate(err) {
			return apperrors.ErrMateriaAlreadyExists
		}
		if dberrors.IsMissingReference(err) {
			return apperrors.ErrCarreraMissing
		}
		return fmt.Errorf("error creating materia: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by its code
func (r *MateriaRepository) GetByID(ctx context.Context, id string) (*models.Materia, error) {
	query := `
		SELECT id_materia, nom_materia, id_carrera, mat_fecini, mat_fecfin
		FROM materias
		WHERE id_materia = $1
	`

	var materia models.Materia
	err := r.database.Pool.QueryRow(ctx, query, id).Scan(
		&materia.ID,
		&materia.Nombre,
		&materia.CarreraID,
		&materia.FechaInicio,
		&materia.FechaFin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMateriaNotFound
		}
		return nil, fmt.Errorf("error retrieving materia: %w", err)
	}

	return &materia, nil
}

// GetAll retrieves subjects, optionally filtered by career
func (r *MateriaRepository) GetAll(ctx context.Context, carreraID string) ([]*models.Materia, error) {
	query := `
		SELECT id_materia, nom_materia, id_carrera, mat_fecini, mat_fecfin
		FROM materias
	`
	args := []any{}
	if carreraID != "" {
		query += ` WHERE id_carrera = $1`
		args = append(args, carreraID)
	}
	query += ` ORDER BY id_materia`

	rows, err := r.database.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materias []*models.Materia
	for rows.Next() {
		var materia models.Materia
		if err := rows.Scan(
			&materia.ID,
			&materia.Nombre,
			&materia.CarreraID,
			&materia.FechaInicio,
			&materia.FechaFin,
		); err != nil {
			return nil, err
		}
		materias = append(materias, &materia)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materias, nil
}

// Update applies a partial update; nil fields keep the stored value
func (r *MateriaRepository) Update(ctx context.Context, id string, nombre, carreraID, fecini, fecfin *string) error {
	query := `
		UPDATE materias
		SET nom_materia = COALESCE($2, nom_materia),
		    id_carrera  = COALESCE($3, id_carrera),
		    mat_fecini  = COALESCE($4::date, mat_fecini),
		    mat_fecfin  = COALESCE($5::date, mat_fecfin)
		WHERE id_materia = $1
	`

	cmdTag, err := r.database.Pool.Exec(ctx, query, id, nombre, carreraID, fecini, fecfin)
	if err != nil {
		if dberrors.IsMissingReference(err) {
			return apperrors.ErrCarreraMissing
		}
		return fmt.Errorf("error updating materia: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMateriaNotFound
	}

	return nil
}

// cascadeSpec builds the dependency count and delete plan for one subject.
// Registrations are removed alongside the answers but never gate the
// delete; only answers and attribute mappings do.
func (r *MateriaRepository) cascadeSpec(id string) CascadeSpec {
	return CascadeSpec{
		Entity: "materia",
		Args:   []any{id},
		CountSQL: `
			SELECT
				(SELECT COUNT(*) FROM respuestas WHERE id_materia = $1),
				(SELECT COUNT(*) FROM materia_atributo WHERE id_materia = $1)
		`,
		CountClasses: []string{"respuestas", "mapa"},
		Steps: []CascadeStep{
			{Class: "respuestas", SQL: `DELETE FROM respuestas WHERE id_materia = $1`},
			{Class: "alumno_materia", SQL: `DELETE FROM alumno_materia WHERE id_materia = $1`},
			{Class: "materia_atributo", SQL: `DELETE FROM materia_atributo WHERE id_materia = $1`},
		},
		TargetSQL: `DELETE FROM materias WHERE id_materia = $1`,
		NotFound:  apperrors.ErrMateriaNotFound,
	}
}

// CountDependencies returns the dependent row counts for one subject
func (r *MateriaRepository) CountDependencies(ctx context.Context, id string) (DependencyCounts, error) {
	return r.cascader.CountDependencies(ctx, r.cascadeSpec(id))
}

// Delete removes a subject, cascading over its dependents when force is set
func (r *MateriaRepository) Delete(ctx context.Context, id string, force bool) (DeleteReport, error) {
	report, _, err := r.cascader.Delete(ctx, r.cascadeSpec(id), force)
	return report, err
}
