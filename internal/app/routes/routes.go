package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lramirez/acredita/internal/app/controllers"
	"github.com/lramirez/acredita/internal/app/models"
	"github.com/lramirez/acredita/internal/middleware"
	"github.com/lramirez/acredita/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	carreraController *controllers.CarreraController,
	materiaController *controllers.MateriaController,
	atributoController *controllers.AtributoController,
	criterioController *controllers.CriterioController,
	nivelController *controllers.NivelController,
	estudianteController *controllers.EstudianteController,
	usuarioController *controllers.UsuarioController,
	alumnoController *controllers.AlumnoController,
	jwtService *auth.JWTService,
) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// --- Public auth routes ---
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(middleware.AuthMiddleware(jwtService))

	authenticated.GET("/auth/me", authController.Me)

	// Catalog reads are open to any authenticated role
	authenticated.GET("/carreras", carreraController.GetAll)
	authenticated.GET("/carreras/:id", carreraController.GetByID)
	authenticated.GET("/materias", materiaController.GetAll)
	authenticated.GET("/materias/:id", materiaController.GetByID)
	authenticated.GET("/atributos", atributoController.GetAll)
	authenticated.GET("/atributos/:carrera/:id", atributoController.GetByID)
	authenticated.GET("/criterios", criterioController.GetAll)
	authenticated.GET("/criterios/:carrera/:atributo/:criterio", criterioController.GetByID)
	authenticated.GET("/niveles-materia", nivelController.GetAll)

	// Catalog writes are for staff
	staff := authenticated.Group("")
	staff.Use(middleware.RoleRequired(string(models.RolAdmin), string(models.RolCoordinador)))
	{
		staff.POST("/carreras", carreraController.Create)
		staff.PUT("/carreras/:id", carreraController.Update)
		staff.DELETE("/carreras/:id", carreraController.Delete)

		staff.POST("/materias", materiaController.Create)
		staff.PUT("/materias/:id", materiaController.Update)
		staff.DELETE("/materias/:id", materiaController.Delete)

		staff.POST("/atributos", atributoController.Create)
		staff.PUT("/atributos/:carrera/:id", atributoController.Update)
		staff.DELETE("/atributos/:carrera/:id", atributoController.Delete)

		staff.POST("/criterios", criterioController.Create)
		staff.PUT("/criterios/:carrera/:atributo/:criterio", criterioController.Update)
		staff.DELETE("/criterios/:carrera/:atributo/:criterio", criterioController.Delete)

		staff.POST("/niveles-materia", nivelController.Create)
		staff.PUT("/niveles-materia/:carrera/:materia/:atributo", nivelController.Update)
		staff.DELETE("/niveles-materia/:carrera/:materia/:atributo", nivelController.Delete)
	}

	// Administration is admin-only
	admin := authenticated.Group("/admin")
	admin.Use(middleware.RoleRequired(string(models.RolAdmin)))
	{
		admin.GET("/estudiantes", estudianteController.GetAll)
		admin.GET("/estudiantes/stats", estudianteController.GetStats)
		admin.GET("/estudiantes/:id", estudianteController.GetByID)
		admin.POST("/estudiantes", estudianteController.Create)
		admin.POST("/estudiantes/import", estudianteController.Import)
		admin.PUT("/estudiantes/:id", estudianteController.Update)
		admin.DELETE("/estudiantes/:id", estudianteController.Delete)

		admin.GET("/usuarios", usuarioController.GetAll)
		admin.POST("/usuarios", usuarioController.Create)
		admin.DELETE("/usuarios/:id", usuarioController.Delete)

		// Careers can also be managed from the admin prefix
		admin.GET("/carreras", carreraController.GetResumen)
		admin.POST("/carreras", carreraController.Create)
		admin.PUT("/carreras/:id", carreraController.Update)
		admin.DELETE("/carreras/:id", carreraController.Delete)
	}

	// Student survey flow
	alumno := authenticated.Group("/alumno")
	alumno.Use(middleware.RoleRequired(string(models.RolAlumno)))
	{
		alumno.GET("/materias", alumnoController.GetMaterias)
		alumno.POST("/materias/registrar", alumnoController.Registrar)
		alumno.GET("/encuesta/:materiaId", alumnoController.GetEncuesta)
		alumno.POST("/encuesta/:materiaId", alumnoController.EnviarEncuesta)
	}
}
