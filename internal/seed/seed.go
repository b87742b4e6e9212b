package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lramirez/acredita/internal/app/models"
)

// defaultAdminEmail is the bootstrap account created on an empty database
const defaultAdminEmail = "admin@acredita.local"

// CreateDefaultData seeds the role catalog and a bootstrap admin account.
// Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var finalErr error

	for _, clave := range []models.RolClave{models.RolAdmin, models.RolCoordinador, models.RolAlumno} {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO roles (clave) VALUES ($1)
			ON CONFLICT (clave) DO NOTHING`, string(clave))
		if err != nil {
			lgr.Error().Err(err).Str("rol", string(clave)).Msg("Error seeding role")
			finalErr = errors.Join(finalErr, err)
		}
	}

	var adminExists bool
	err := dbPool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM usuarios u
			JOIN roles r ON r.id_rol = u.rol_id
			WHERE r.clave = $1)`, string(models.RolAdmin)).Scan(&adminExists)
	if err != nil {
		return errors.Join(finalErr, fmt.Errorf("error checking for admin account: %w", err))
	}
	if adminExists {
		return finalErr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("cambiame"), bcrypt.DefaultCost)
	if err != nil {
		return errors.Join(finalErr, err)
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO usuarios (email, password_hash, nombre, rol_id)
		VALUES ($1, $2, $3, (SELECT id_rol FROM roles WHERE clave = $4))
		ON CONFLICT (email) DO NOTHING`,
		defaultAdminEmail, string(hash), "Administrador", string(models.RolAdmin))
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return errors.Join(finalErr, err)
	}

	lgr.Warn().Str("email", defaultAdminEmail).Msg("Default admin account created, change its password")
	return finalErr
}
