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

// CriterioRepository handles database operations for rubric criteria
type CriterioRepository struct {
	database *db.PostgresDB
	cascader *Cascader
}

// NewCriterioRepository creates a new criterion repository
func NewCriterioRepository(database *db.PostgresDB) *CriterioRepository {
	return &CriterioRepository{
		database: database,
		cascader: NewCascader(database),
	}
}

// Create inserts a new criterion
func (r *CriterioRepository) Create(ctx context.Context, criterio *models.Criterio) error {
	query := `
		INSERT INTO criterios (id_carrera, id_atributo, id_criterio, descripcion, des_n1, des_n2, des_n3, des_n4)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.database.Pool.Exec(ctx, query,
		criterio.CarreraID, criterio.AtributoID, criterio.ID,
		criterio.Descripcion, criterio.DesN1, criterio.DesN2, criterio.DesN3, criterio.DesN4)
	if err != nil {
		if dberrors.IsDuplicate(err) {
			return apperrors.ErrCriterioAlreadyExists
		}
		if dberrors.IsMissingReference(err) {
			return apperrors.ErrAtributoMissing
		}
		return fmt.Errorf("error creating criterio: %w", err)
	}

	return nil
}

// GetByID retrieves one criterion by its composite key
func (r *CriterioRepository) GetByID(ctx context.Context, carreraID string, atributoID, id int) (*models.Criterio, error) {
	query := `
		SELECT id_carrera, id_atributo, id_criterio, descripcion, des_n1, des_n2, des_n3, des_n4
		FROM criterios
		WHERE id_carrera = $1 AND id_atributo = $2 AND id_criterio = $3
	`

	var criterio models.Criterio
	err := r.database.Pool.QueryRow(ctx, query, carreraID, atributoID, id).Scan(
		&criterio.CarreraID,
		&criterio.AtributoID,
		&criterio.ID,
		&criterio.Descripcion,
		&criterio.DesN1,
		&criterio.DesN2,
		&criterio.DesN3,
		&criterio.DesN4,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCriterioNotFound
		}
		return nil, fmt.Errorf("error retrieving criterio: %w", err)
	}

	return &criterio, nil
}

// GetAll retrieves criteria filtered by career and optionally attribute
func (r *CriterioRepository) GetAll(ctx context.Context, carreraID string, atributoID int) ([]*models.Criterio, error) {
	query := `
		SELECT id_carrera, id_atributo, id_criterio, descripcion, des_n1, des_n2, des_n3, des_n4
		FROM criterios
	`
	var args []any
	switch {
	case carreraID != "" && atributoID > 0:
		query += ` WHERE id_carrera = $1 AND id_atributo = $2`
		args = append(args, carreraID, atributoID)
	case carreraID != "":
		query += ` WHERE id_carrera = $1`
		args = append(args, carreraID)
	}
	query += ` ORDER BY id_carrera, id_atributo, id_criterio`

	rows, err := r.database.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var criterios []*models.Criterio
	for rows.Next() {
		var criterio models.Criterio
		if err := rows.Scan(
			&criterio.CarreraID,
			&criterio.AtributoID,
			&criterio.ID,
			&criterio.Descripcion,
			&criterio.DesN1,
			&criterio.DesN2,
			&criterio.DesN3,
			&criterio.DesN4,
		); err != nil {
			return nil, err
		}
		criterios = append(criterios, &criterio)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return criterios, nil
}

// Update applies a partial update; nil fields keep the stored value
func (r *CriterioRepository) Update(ctx context.Context, carreraID string, atributoID, id int, descripcion, n1, n2, n3, n4 *string) error {
	query := `
		UPDATE criterios
		SET descripcion = COALESCE($4, descripcion),
		    des_n1      = COALESCE($5, des_n1),
		    des_n2      = COALESCE($6, des_n2),
		    des_n3      = COALESCE($7, des_n3),
		    des_n4      = COALESCE($8, des_n4)
		WHERE id_carrera = $1 AND id_atributo = $2 AND id_criterio = $3
	`

	cmdTag, err := r.database.Pool.Exec(ctx, query, carreraID, atributoID, id, descripcion, n1, n2, n3, n4)
	if err != nil {
		return fmt.Errorf("error updating criterio: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCriterioNotFound
	}

	return nil
}

// cascadeSpec builds the dependency count and delete plan for one criterion.
// Only answers hang off a criterion.
func (r *CriterioRepository) cascadeSpec(carreraID string, atributoID, id int) CascadeSpec {
	return CascadeSpec{
		Entity: "criterio",
		Args:   []any{carreraID, atributoID, id},
		CountSQL: `
			SELECT
				(SELECT COUNT(*) FROM respuestas
					WHERE id_carrera = $1 AND id_atributo = $2 AND id_criterio = $3)
		`,
		CountClasses: []string{"respuestas"},
		Steps: []CascadeStep{
			{Class: "respuestas", SQL: `
				DELETE FROM respuestas
				WHERE id_carrera = $1 AND id_atributo = $2 AND id_criterio = $3`},
		},
		TargetSQL: `DELETE FROM criterios WHERE id_carrera = $1 AND id_atributo = $2 AND id_criterio = $3`,
		NotFound:  apperrors.ErrCriterioNotFound,
	}
}

// CountDependencies returns the dependent row counts for one criterion
func (r *CriterioRepository) CountDependencies(ctx context.Context, carreraID string, atributoID, id int) (DependencyCounts, error) {
	return r.cascader.CountDependencies(ctx, r.cascadeSpec(carreraID, atributoID, id))
}

// Delete removes a criterion, cascading over its answers when force is set
func (r *CriterioRepository) Delete(ctx context.Context, carreraID string, atributoID, id int, force bool) (DeleteReport, error) {
	report, _, err := r.cascader.Delete(ctx, r.cascadeSpec(carreraID, atributoID, id), force)
	return report, err
}
