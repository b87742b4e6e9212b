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

// MateriaAtributoRepository handles database operations for the
// subject-to-attribute contribution map
type MateriaAtributoRepository struct {
	database *db.PostgresDB
	cascader *Cascader
}

// NewMateriaAtributoRepository creates a new mapping repository
func NewMateriaAtributoRepository(database *db.PostgresDB) *MateriaAtributoRepository {
	return &MateriaAtributoRepository{
		database: database,
		cascader: NewCascader(database),
	}
}

// Create inserts a new mapping
func (r *MateriaAtributoRepository) Create(ctx context.Context, mapeo *models.MateriaAtributo) error {
	query := `
		INSERT INTO materia_atributo (id_carrera, id_materia, id_atributo, nivel)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.database.Pool.Exec(ctx, query,
		mapeo.CarreraID, mapeo.MateriaID, mapeo.AtributoID, mapeo.Nivel)
	if err != nil {
		if dberrors.IsDuplicate(err) {
			return apperrors.ErrMapeoAlreadyExists
		}
		if dberrors.IsMissingReference(err) {
			return apperrors.ErrAtributoMissing
		}
		return fmt.Errorf("error creating mapeo: %w", err)
	}

	return nil
}

// GetAll retrieves mappings filtered by career and optionally subject
func (r *MateriaAtributoRepository) GetAll(ctx context.Context, carreraID, materiaID string) ([]*models.MateriaAtributo, error) {
	query := `
		SELECT id_carrera, id_materia, id_atributo, nivel
		FROM materia_atributo
	`
	var args []any
	switch {
	case carreraID != "" && materiaID != "":
		query += ` WHERE id_carrera = $1 AND id_materia = $2`
		args = append(args, carreraID, materiaID)
	case carreraID != "":
		query += ` WHERE id_carrera = $1`
		args = append(args, carreraID)
	case materiaID != "":
		query += ` WHERE id_materia = $1`
		args = append(args, materiaID)
	}
	query += ` ORDER BY id_materia, id_atributo`

	rows, err := r.database.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mapeos []*models.MateriaAtributo
	for rows.Next() {
		var mapeo models.MateriaAtributo
		if err := rows.Scan(
			&mapeo.CarreraID,
			&mapeo.MateriaID,
			&mapeo.AtributoID,
			&mapeo.Nivel,
		); err != nil {
			return nil, err
		}
		mapeos = append(mapeos, &mapeo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mapeos, nil
}

// MateriaBelongsToCarrera reports whether the subject exists and is owned
// by the given career
func (r *MateriaAtributoRepository) MateriaBelongsToCarrera(ctx context.Context, materiaID, carreraID string) (bool, bool, error) {
	var ownerID string
	err := r.database.Pool.QueryRow(ctx,
		`SELECT id_carrera FROM materias WHERE id_materia = $1`, materiaID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("error checking materia ownership: %w", err)
	}

	return true, ownerID == carreraID, nil
}

// Update changes the contribution level of a mapping
func (r *MateriaAtributoRepository) Update(ctx context.Context, carreraID, materiaID string, atributoID int, nivel models.Nivel) error {
	query := `
		UPDATE materia_atributo
		SET nivel = $4
		WHERE id_carrera = $1 AND id_materia = $2 AND id_atributo = $3
	`

	cmdTag, err := r.database.Pool.Exec(ctx, query, carreraID, materiaID, atributoID, nivel)
	if err != nil {
		return fmt.Errorf("error updating mapeo: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMapeoNotFound
	}

	return nil
}

// cascadeSpec builds the dependency count and delete plan for one mapping.
// Dropping a mapping also drops the answers given through it.
func (r *MateriaAtributoRepository) cascadeSpec(carreraID, materiaID string, atributoID int) CascadeSpec {
	return CascadeSpec{
		Entity: "mapeo",
		Args:   []any{carreraID, materiaID, atributoID},
		CountSQL: `
			SELECT
				(SELECT COUNT(*) FROM respuestas
					WHERE id_carrera = $1 AND id_materia = $2 AND id_atributo = $3)
		`,
		CountClasses: []string{"respuestas"},
		Steps: []CascadeStep{
			{Class: "respuestas", SQL: `
				DELETE FROM respuestas
				WHERE id_carrera = $1 AND id_materia = $2 AND id_atributo = $3`},
		},
		TargetSQL: `DELETE FROM materia_atributo WHERE id_carrera = $1 AND id_materia = $2 AND id_atributo = $3`,
		NotFound:  apperrors.ErrMapeoNotFound,
	}
}

// CountDependencies returns the dependent row counts for one mapping
func (r *MateriaAtributoRepository) CountDependencies(ctx context.Context, carreraID, materiaID string, atributoID int) (DependencyCounts, error) {
	return r.cascader.CountDependencies(ctx, r.cascadeSpec(carreraID, materiaID, atributoID))
}

// Delete removes a mapping, cascading over its answers when force is set
func (r *MateriaAtributoRepository) Delete(ctx context.Context, carreraID, materiaID string, atributoID int, force bool) (DeleteReport, error) {
	report, _, err := r.cascader.Delete(ctx, r.cascadeSpec(carreraID, materiaID, atributoID), force)
	return report, err
}
