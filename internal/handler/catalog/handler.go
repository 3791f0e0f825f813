package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phongkhamtamthan/clinic-api/internal/catalog"
	"github.com/phongkhamtamthan/clinic-api/internal/handler"
)

// Handler serves the read-only reference data: doctor profile, service
// list, testimonials and clinic contact info.
type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/profile", h.GetProfile)
	r.GET("/services", h.ListServices)
	r.GET("/services/:id", h.GetService)
	r.GET("/testimonials", h.ListTestimonials)
	r.GET("/clinic", h.GetClinicInfo)
}

func (h *Handler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Profile())
}

func (h *Handler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Services())
}

func (h *Handler) GetService(c *gin.Context) {
	svc, err := h.catalog.Service(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("service not found"))
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (h *Handler) ListTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Testimonials())
}

func (h *Handler) GetClinicInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ClinicInfo())
}
