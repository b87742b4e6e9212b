package repositories

import (
	"github.com/lramirez/acredita/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	CarreraRepository         *CarreraRepository
	MateriaRepository         *MateriaRepository
	AtributoRepository        *AtributoRepository
	CriterioRepository        *CriterioRepository
	MateriaAtributoRepository *MateriaAtributoRepository
	EstudianteRepository      *EstudianteRepository
	UsuarioRepository         *UsuarioRepository
	EncuestaRepository        *EncuestaRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		CarreraRepository:         NewCarreraRepository(database),
		MateriaRepository:         NewMateriaRepository(database),
		AtributoRepository:        NewAtributoRepository(database),
		CriterioRepository:        NewCriterioRepository(database),
		MateriaAtributoRepository: NewMateriaAtributoRepository(database),
		EstudianteRepository:      NewEstudianteRepository(database),
		UsuarioRepository:         NewUsuarioRepository(database),
		EncuestaRepository:        NewEncuestaRepository(database),
	}
}
