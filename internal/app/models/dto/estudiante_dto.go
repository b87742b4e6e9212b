package dto

// CreateEstudianteRequest registers a student. CarreraID is informative
// only; students are keyed by control number alone.
type CreateEstudianteRequest struct {
	ID     string  `json:"id_estudiante" binding:"required"`
	Nombre string  `json:"nombre" binding:"required"`
	Email  *string `json:"email"`
}

// UpdateEstudianteRequest renames a student.
type UpdateEstudianteRequest struct {
	Nombre string `json:"nombre" binding:"required"`
}

// ImportEstudianteRow is one row of a bulk student import.
type ImportEstudianteRow struct {
	ID     string  `json:"id_estudiante"`
	Nombre string  `json:"nombre"`
	Email  *string `json:"email"`
}

// ImportEstudiantesRequest bulk creates or updates students.
type ImportEstudiantesRequest struct {
	Estudiantes []ImportEstudianteRow `json:"estudiantes" binding:"required"`
}

// ImportError records why one import row was rejected.
type ImportError struct {
	ID    string `json:"id_estudiante"`
	Error string `json:"error"`
}

// CreatedCredential reports the temporary password generated for a newly
// created account. It is only ever returned once, at creation time.
type CreatedCredential struct {
	ID           string `json:"id_estudiante"`
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
}

// ImportEstudiantesResponse summarizes a bulk import.
type ImportEstudiantesResponse struct {
	OK          bool                `json:"ok"`
	Creados     int                 `json:"creados"`
	Actualizados int                `json:"actualizados"`
	Errores     []ImportError       `json:"errores"`
	Credenciales []CreatedCredential `json:"credenciales"`
}

// EstudianteResumen is a list row with answer activity.
type EstudianteResumen struct {
	ID         string  `json:"id_estudiante"`
	Nombre     string  `json:"nombre"`
	Email      *string `json:"email"`
	Respuestas int64   `json:"respuestas"`
	Activo     bool    `json:"activo"`
}

// EvaluacionCarrera summarizes a student's answers within one career.
type EvaluacionCarrera struct {
	CarreraID  string `json:"id_carrera"`
	Materias   int64  `json:"materias"`
	Respuestas int64  `json:"respuestas"`
}

// EstudianteDetalle is the single-student view with per-career activity.
type EstudianteDetalle struct {
	ID           string              `json:"id_estudiante"`
	Nombre       string              `json:"nombre"`
	Email        *string             `json:"email"`
	Evaluaciones []EvaluacionCarrera `json:"evaluaciones"`
}

// EstudiantesStats is the aggregate card for the student roster.
type EstudiantesStats struct {
	Total      int64 `json:"total"`
	Activos    int64 `json:"activos"`
	ConCuenta  int64 `json:"con_cuenta"`
	Respuestas int64 `json:"respuestas"`
}

// CreateEstudianteResponse returns the created student plus the one-time
// credential for its login account.
type CreateEstudianteResponse struct {
	OK           bool   `json:"ok"`
	ID           string `json:"id_estudiante"`
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
}
