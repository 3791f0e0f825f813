package router

import (
	"github.com/gin-gonic/gin"

	"github.com/phongkhamtamthan/clinic-api/internal/handler"
	"github.com/phongkhamtamthan/clinic-api/internal/handler/prometheus"
	"github.com/phongkhamtamthan/clinic-api/internal/middleware"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine   *gin.Engine
	h        *handler.Handler
	catalogH Handler
	bookingH Handler
	metrics  *prometheus.Handler
}

type RouterConfig struct {
	CORSConfig middleware.CORSConfig
}

func NewRouter(
	h *handler.Handler,
	catalogH Handler,
	bookingH Handler,
	config RouterConfig,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:   engine,
		h:        h,
		catalogH: catalogH,
		bookingH: bookingH,
		metrics:  prometheus.New(),
	}

	// Core middlewares
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metrics.Middleware(),
	)

	engine.Use(middleware.CORS(config.CORSConfig))

	return r
}

func (r *Router) Setup() {
	r.engine.GET("/", r.h.HealthCheck)
	r.engine.GET("/metrics", r.metrics.Handler())

	api := r.engine.Group("/api")

	// Version header
	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", handler.Version)
		c.Next()
	})

	r.catalogH.RegisterRoutes(api)
	r.bookingH.RegisterRoutes(api)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
