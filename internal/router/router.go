package router

import (
	"context"

	"gestor/internal/config"
	"gestor/internal/handler"
	"gestor/internal/middleware"
	"gestor/internal/repository"
	"gestor/internal/service"
	"gestor/internal/storage"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store.
// Each repository loads its collection once here — load failures fall back
// to seed data and never abort startup.
func New(cfg *config.Config, st storage.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())

	// ── Repositories ─────────────────────────────────────────────────────────
	ctx := context.Background()
	contactoRepo := repository.NewContactoRepository(st)
	contactoRepo.Load(ctx)
	productoRepo := repository.NewProductoRepository(st)
	productoRepo.Load(ctx)
	compraRepo := repository.NewCompraRepository(st)
	compraRepo.Load(ctx)

	// ── Services ─────────────────────────────────────────────────────────────
	contactoSvc := service.NewContactoService(contactoRepo)
	productoSvc := service.NewProductoService(productoRepo)
	compraSvc := service.NewCompraService(compraRepo, contactoRepo, productoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	contactosH := handler.NewContactosHandler(contactoSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	comprasH := handler.NewComprasHandler(compraSvc, cfg.ReciboStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(st))

	v1 := r.Group("/v1")
	{
		contactos := v1.Group("/contactos")
		{
			contactos.POST("", contactosH.Crear)
			contactos.GET("", contactosH.Listar)
			contactos.GET("/:id", contactosH.ObtenerPorID)
			contactos.PUT("/:id", contactosH.Actualizar)
			contactos.DELETE("/:id", contactosH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/disponibles", productosH.Disponibles)
			productos.GET("/:id", productosH.ObtenerPorID)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		compras := v1.Group("/compras")
		{
			compras.POST("", comprasH.Crear)
			compras.GET("", comprasH.Listar)
			compras.GET("/:id", comprasH.ObtenerPorID)
			compras.GET("/:id/detalle", comprasH.ObtenerDetalle)
			compras.GET("/:id/recibo", comprasH.DescargarRecibo)
			compras.PUT("/:id", comprasH.Actualizar)
			compras.PATCH("/:id/estado", comprasH.ActualizarEstado)
			compras.DELETE("/:id", comprasH.Eliminar)
		}
	}

	return r
}
