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

// AtributoRepository handles database operations for graduate attributes
type AtributoRepository struct {
	database *db.PostgresDB
	cascader *Cascader
}

// NewAtributoRepository creates a new attribute repository
func NewAtributoRepository(database *db.PostgresDB) *AtributoRepository {
	return &AtributoRepository{
		database: database,
		cascader: NewCascader(database),
	}
}

// Create inserts a new attribute
func (r *AtributoRepository) Create(ctx context.Context, atributo *models.Atributo) error {
	query := `
		INSERT INTO atributos (id_carrera, id_atributo, nom_atributo, nomcorto)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.database.Pool.Exec(ctx, query,
		atributo.CarreraID, atributo.ID, atributo.Nombre, atributo.NomCorto)
	if err != nil {
		if dberrors.IsDuplicate(err) {
			return apperrors.ErrAtributoAlreadyExists
		}
		if dberrors.IsMissingReference(err) {
			return apperrors.ErrCarreraMissing
		}
		return fmt.Errorf("error creating atributo: %w", err)
	}

	return nil
}

// GetByID retrieves one attribute by its composite key
func (r *AtributoRepository) GetByID(ctx context.Context, carreraID string, id int) (*models.Atributo, error) {
	query := `
		SELECT id_carrera, id_atributo, nom_atributo, nomcorto
		FROM atributos
		WHERE id_carrera = $1 AND id_atributo = $2
	`

	var atributo models.Atributo
	err := r.database.Pool.QueryRow(ctx, query, carreraID, id).Scan(
		&atributo.CarreraID,
		&atributo.ID,
		&atributo.Nombre,
		&atributo.NomCorto,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAtributoNotFound
		}
		return nil, fmt.Errorf("error retrieving atributo: %w", err)
	}

	return &atributo, nil
}

// GetAll retrieves attributes, optionally filtered by career
func (r *AtributoRepository) GetAll(ctx context.Context, carreraID string) ([]*models.Atributo, error) {
	query := `
		SELECT id_carrera, id_atributo, nom_atributo, nomcorto
		FROM atributos
	`
	args := []any{}
	if carreraID != "" {
		query += ` WHERE id_carrera = $1`
		args = append(args, carreraID)
	}
	query += ` ORDER BY id_carrera, id_atributo`

	rows, err := r.database.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var atributos []*models.Atributo
	for rows.Next() {
		var atributo models.Atributo
		if err := rows.Scan(
			&atributo.CarreraID,
			&atributo.ID,
			&atributo.Nombre,
			&atributo.NomCorto,
		); err != nil {
			return nil, err
		}
		atributos = append(atributos, &atributo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return atributos, nil
}

// Update changes the attribute names
func (r *AtributoRepository) Update(ctx context.Context, atributo *models.Atributo) error {
	query := `
		UPDATE atributos
		SET nom_atributo = $3, nomcorto = $4
		WHERE id_carrera = $1 AND id_atributo = $2
	`

	cmdTag, err := r.database.Pool.Exec(ctx, query,
		atributo.CarreraID, atributo.ID, atributo.Nombre, atributo.NomCorto)
	if err != nil {
		return fmt.Errorf("error updating atributo: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAtributoNotFound
	}

	return nil
}

// cascadeSpec builds the dependency count and delete plan for one attribute
func (r *AtributoRepository) cascadeSpec(carreraID string, id int) CascadeSpec {
	return CascadeSpec{
		Entity: "atributo",
		Args:   []any{carreraID, id},
		CountSQL: `
			SELECT
				(SELECT COUNT(*) FROM criterios WHERE id_carrera = $1 AND id_atributo = $2),
				(SELECT COUNT(*) FROM materia_atributo WHERE id_carrera = $1 AND id_atributo = $2),
				(SELECT COUNT(*) FROM respuestas WHERE id_carrera = $1 AND id_atributo = $2)
		`,
		CountClasses: []string{"criterios", "mapeos", "respuestas"},
		Steps: []CascadeStep{
			{Class: "respuestas", SQL: `DELETE FROM respuestas WHERE id_carrera = $1 AND id_atributo = $2`},
			{Class: "criterios", SQL: `DELETE FROM criterios WHERE id_carrera = $1 AND id_atributo = $2`},
			{Class: "mapeos", SQL: `DELETE FROM materia_atributo WHERE id_carrera = $1 AND id_atributo = $2`},
		},
		TargetSQL: `DELETE FROM atributos WHERE id_carrera = $1 AND id_atributo = $2`,
		NotFound:  apperrors.ErrAtributoNotFound,
	}
}

// CountDependencies returns the dependent row counts for one attribute
func (r *AtributoRepository) CountDependencies(ctx context.Context, carreraID string, id int) (DependencyCounts, error) {
	return r.cascader.CountDependencies(ctx, r.cascadeSpec(carreraID, id))
}

// Delete removes an attribute, cascading over its dependents when force is set
func (r *AtributoRepository) Delete(ctx context.Context, carreraID string, id int, force bool) (DeleteReport, error) {
	report, _, err := r.cascader.Delete(ctx, r.cascadeSpec(carreraID, id), force)
	return report, err
}
