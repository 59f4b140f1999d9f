package router

import (
	"time"

	"github.com/Albertgui/teg-backend/internal/config"
	"github.com/Albertgui/teg-backend/internal/handler"
	"github.com/Albertgui/teg-backend/internal/middleware"
	"github.com/Albertgui/teg-backend/internal/repository"
	"github.com/Albertgui/teg-backend/internal/service"
	"github.com/Albertgui/teg-backend/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	proyectoRepo := repository.NewProyectoRepository(db)
	partidaRepo := repository.NewPartidaRepository(db)
	responsableRepo := repository.NewResponsableRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	proyectoSvc := service.NewProyectoService(proyectoRepo, partidaRepo, dispatcher, cfg.PDFStoragePath)
	partidaSvc := service.NewPartidaService(partidaRepo, proyectoRepo, responsableRepo, dispatcher)
	responsableSvc := service.NewResponsableService(responsableRepo, proyectoRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	proyectosH := handler.NewProyectosHandler(proyectoSvc)
	partidasH := handler.NewPartidasHandler(partidaSvc)
	responsablesH := handler.NewResponsablesHandler(responsableSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")

	// Auth (public)
	api.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	api.POST("/register", authH.Register)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	priv := api.Group("", jwtMW)
	{
		priv.PATCH("/edit-user/:id", authH.EditUser)

		proyectos := priv.Group("/proyectos")
		{
			proyectos.GET("", proyectosH.Listar)
			proyectos.GET("/:id", proyectosH.ObtenerPorID)
			proyectos.GET("/:id/reporte", proyectosH.DescargarReporte)
			proyectos.POST("", proyectosH.Crear)
			proyectos.PATCH("/:id", proyectosH.Editar)
			proyectos.DELETE("/:id", proyectosH.Eliminar)
		}

		partidas := priv.Group("/partidas")
		{
			partidas.GET("", partidasH.Listar)
			partidas.GET("/view", partidasH.ListarVista)
			partidas.GET("/:id", partidasH.ObtenerPorID)
			partidas.POST("", partidasH.Crear)
			partidas.PATCH("/:id", partidasH.Editar)
			partidas.PATCH("/complete/:id", partidasH.Completar)
			partidas.DELETE("/:id", partidasH.Eliminar)
		}

		responsable := priv.Group("/responsable")
		{
			responsable.GET("", responsablesH.Listar)
			responsable.GET("/:id", responsablesH.ObtenerPorID)
			responsable.GET("/proyecto/:id", responsablesH.ListarPorProyecto)
			responsable.POST("", responsablesH.Crear)
			responsable.POST("/asignar-proyecto", responsablesH.AsignarProyecto)
			responsable.PATCH("/:id", responsablesH.Editar)
			responsable.DELETE("/:id", responsablesH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
