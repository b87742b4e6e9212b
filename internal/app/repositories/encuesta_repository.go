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
)

// EncuestaRepository handles database operations for the student survey
// flow: period registrations, the survey tree and answer submission
type EncuestaRepository struct {
	database *db.PostgresDB
}

// NewEncuestaRepository creates a new survey repository
func NewEncuestaRepository(database *db.PostgresDB) *EncuestaRepository {
	return &EncuestaRepository{database: database}
}

// GetMateriasDelPeriodo retrieves the subjects a student registered for the
// period, flagged by whether answers were already submitted
func (r *EncuestaRepository) GetMateriasDelPeriodo(ctx context.Context, estudianteID, periodo string) ([]*dto.MateriaAlumno, error) {
	query := `
		SELECT m.id_materia, m.nom_materia, m.id_carrera,
			EXISTS (SELECT 1 FROM respuestas r
				WHERE r.id_estudiante = am.id_estudiante
				  AND r.id_materia = am.id_materia
				  AND r.periodo = am.periodo) AS evaluada
		FROM alumno_materia am
		JOIN materias m ON m.id_materia = am.id_materia
		WHERE am.id_estudiante = $1 AND am.periodo = $2
		ORDER BY m.id_materia
	`

	rows, err := r.database.Pool.Query(ctx, query, estudianteID, periodo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materias []*dto.MateriaAlumno
	for rows.Next() {
		var materia dto.MateriaAlumno
		if err := rows.Scan(&materia.ID, &materia.Nombre, &materia.CarreraID, &materia.Evaluada); err != nil {
			return nil, err
		}
		materias = append(materias, &materia)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return materias, nil
}

// TieneEvaluacion reports whether a subject has any attribute mappings,
// i.e. a configured survey
func (r *EncuestaRepository) TieneEvaluacion(ctx context.Context, materiaID string) (bool, error) {
	var exists bool
	err := r.database.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM materia_atributo WHERE id_materia = $1)`,
		materiaID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking evaluacion: %w", err)
	}

	return exists, nil
}

// Registrar records that a student will evaluate a subject this period.
// Re-registering the same subject is a no-op.
func (r *EncuestaRepository) Registrar(ctx context.Context, estudianteID, materiaID, periodo string) error {
	_, err := r.database.Pool.Exec(ctx, `
		INSERT INTO alumno_materia (id_estudiante, id_materia, periodo)
		VALUES ($1, $2, $3)
		ON CONFLICT (id_estudiante, id_materia, periodo) DO NOTHING`,
		estudianteID, materiaID, periodo)
	if err != nil {
		return fmt.Errorf("error registering materia: %w", err)
	}

	return nil
}

// GetEncuesta assembles the survey form for one subject: the mapped
// attributes with their criteria, plus whether this student already
// answered it this period
func (r *EncuestaRepository) GetEncuesta(ctx context.Context, estudianteID, materiaID, periodo string) (*dto.EncuestaResponse, error) {
	var encuesta dto.EncuestaResponse
	err := r.database.Pool.QueryRow(ctx, `
		SELECT id_materia, nom_materia, id_carrera
		FROM materias
		WHERE id_materia = $1`, materiaID).Scan(
		&encuesta.MateriaID, &encuesta.Nombre, &encuesta.CarreraID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMateriaNotFound
		}
		return nil, fmt.Errorf("error retrieving materia: %w", err)
	}
	encuesta.Periodo = periodo

	err = r.database.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM respuestas
			WHERE id_estudiante = $1 AND id_materia = $2 AND periodo = $3)`,
		estudianteID, materiaID, periodo).Scan(&encuesta.YaRespondida)
	if err != nil {
		return nil, fmt.Errorf("error checking respuestas: %w", err)
	}

	query := `
		SELECT a.id_atributo, a.nom_atributo, a.nomcorto, ma.nivel,
			c.id_criterio, c.descripcion, c.des_n1, c.des_n2, c.des_n3, c.des_n4
		FROM materia_atributo ma
		JOIN atributos a ON a.id_carrera = ma.id_carrera AND a.id_atributo = ma.id_atributo
		JOIN criterios c ON c.id_carrera = a.id_carrera AND c.id_atributo = a.id_atributo
		WHERE ma.id_materia = $1
		ORDER BY a.id_atributo, c.id_criterio
	`

	rows, err := r.database.Pool.Query(ctx, query, materiaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	encuesta.Atributos = []dto.AtributoEncuesta{}
	for rows.Next() {
		var (
			atributoID int
			nombre     string
			nomCorto   *string
			nivel      string
			criterio   dto.CriterioEncuesta
		)
		if err := rows.Scan(
			&atributoID, &nombre, &nomCorto, &nivel,
			&criterio.ID, &criterio.Descripcion,
			&criterio.DesN1, &criterio.DesN2, &criterio.DesN3, &criterio.DesN4,
		); err != nil {
			return nil, err
		}

		n := len(encuesta.Atributos)
		if n == 0 || encuesta.Atributos[n-1].ID != atributoID {
			encuesta.Atributos = append(encuesta.Atributos, dto.AtributoEncuesta{
				ID:        atributoID,
				Nombre:    nombre,
				NomCorto:  nomCorto,
				Nivel:     nivel,
				Criterios: []dto.CriterioEncuesta{},
			})
			n++
		}
		encuesta.Atributos[n-1].Criterios = append(encuesta.Atributos[n-1].Criterios, criterio)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(encuesta.Atributos) == 0 {
		return nil, apperrors.ErrMateriaNoEvaluacion
	}

	return &encuesta, nil
}

// GetCombosValidos returns the valid (attribute, criterion) pairs for a
// subject's survey, derived from its attribute mappings
func (r *EncuestaRepository) GetCombosValidos(ctx context.Context, materiaID string) (map[[2]int]bool, error) {
	query := `
		SELECT c.id_atributo, c.id_criterio
		FROM materia_atributo ma
		JOIN criterios c ON c.id_carrera = ma.id_carrera AND c.id_atributo = ma.id_atributo
		WHERE ma.id_materia = $1
	`

	rows, err := r.database.Pool.Query(ctx, query, materiaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	combos := make(map[[2]int]bool)
	for rows.Next() {
		var atributoID, criterioID int
		if err := rows.Scan(&atributoID, &criterioID); err != nil {
			return nil, err
		}
		combos[[2]int{atributoID, criterioID}] = true
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return combos, nil
}

// GuardarRespuestas stores the answer set in one transaction, making sure
// the period registration exists. Re-submitting a key overwrites the value.
func (r *EncuestaRepository) GuardarRespuestas(ctx context.Context, periodo string, respuestas []*models.Respuesta) error {
	if len(respuestas) == 0 {
		return nil
	}
	estudianteID := respuestas[0].EstudianteID
	materiaID := respuestas[0].MateriaID

	return r.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO alumno_materia (id_estudiante, id_materia, periodo)
			VALUES ($1, $2, $3)
			ON CONFLICT (id_estudiante, id_materia, periodo) DO NOTHING`,
			estudianteID, materiaID, periodo)
		if err != nil {
			return fmt.Errorf("error ensuring registration: %w", err)
		}

		for _, respuesta := range respuestas {
			_, err := tx.Exec(ctx, `
				INSERT INTO respuestas (id_carrera, id_materia, periodo, id_estudiante, id_atributo, id_criterio, likert)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (id_carrera, id_materia, periodo, id_estudiante, id_atributo, id_criterio)
				DO UPDATE SET likert = EXCLUDED.likert`,
				respuesta.CarreraID, respuesta.MateriaID, respuesta.Periodo,
				respuesta.EstudianteID, respuesta.AtributoID, respuesta.CriterioID,
				respuesta.Likert)
			if err != nil {
				return fmt.Errorf("error saving respuesta: %w", err)
			}
		}

		return nil
	})
}
