package main

import (
	"log"
	"os"

	"github.com/LuisMD0/ProyectoAsist/internal/database"
	"github.com/LuisMD0/ProyectoAsist/internal/handlers"
	"github.com/LuisMD0/ProyectoAsist/internal/registro"
	"github.com/LuisMD0/ProyectoAsist/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Cargar variables de entorno (.env opcional)
	if err := godotenv.Load(); err != nil {
		log.Println("No se encontró archivo .env, usando valores por defecto")
	}

	dbPath := envOrDefault("DB_PATH", "./FIME_v2.db")
	listenAddr := envOrDefault("LISTEN_ADDR", ":8080")
	reportDir := envOrDefault("REPORT_DIR", "./reportes")

	if err := os.MkdirAll(reportDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Inicializar Base de Datos
	db, err := database.InitDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Inicializar Repositorios
	asistenciaRepo := repository.NewAsistenciaRepository(db)
	paramsRepo := repository.NewParamsRepository(db)

	// El roster se carga una sola vez por sesión del servidor: cambios en las
	// tablas de referencia se ven recién al reiniciar
	roster, err := paramsRepo.CargarRoster()
	if err != nil {
		log.Fatal(err)
	}
	servicio := registro.NewServicio(asistenciaRepo, roster)

	// Inicializar Handlers
	registroHandler := handlers.NewRegistroHandler(servicio)
	reportesHandler := handlers.NewReportesHandler(servicio, reportDir)
	adminHandler := handlers.NewAdminHandler(servicio, paramsRepo)
	chatHandler := handlers.NewChatHandler(servicio)

	// Configurar Gin
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	// Registro de asistencia
	r.GET("/", registroHandler.ShowForm)
	r.POST("/registrar", registroHandler.Registrar)

	// Asistente conversacional
	r.GET("/chat", chatHandler.ShowChat)
	r.GET("/ws", chatHandler.HandleWebSocket)

	// Reportes
	r.GET("/reportes", reportesHandler.ShowReportes)
	r.POST("/reportes/profesor", reportesHandler.GenerarPorProfesor)
	r.POST("/reportes/materia", reportesHandler.GenerarPorMateria)
	r.POST("/reportes/carrera", reportesHandler.GenerarGlobal)

	// Administración de datos de referencia
	adminGroup := r.Group("/admin")
	{
		adminGroup.GET("", adminHandler.ShowConfig)
		adminGroup.POST("/profesores", adminHandler.StoreProfesor)
		adminGroup.POST("/materias", adminHandler.StoreMateria)
		adminGroup.POST("/carreras", adminHandler.StoreCarrera)
		adminGroup.POST("/asignaciones", adminHandler.StoreAsignacion)
		adminGroup.GET("/asignaciones/delete/:id", adminHandler.DeleteAsignacion)

		adminGroup.POST("/borrar-registros", adminHandler.BorrarRegistros)

		// Generic Config CRUD
		adminGroup.GET("/config/edit/:type/:id", adminHandler.ShowEditParam)
		adminGroup.POST("/config/update/:type/:id", adminHandler.UpdateParam)
		adminGroup.GET("/config/delete/:type/:id", adminHandler.DeleteParam)
	}

	// Iniciar servidor
	if err := r.Run(listenAddr); err != nil {
		log.Fatal(err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
