package handler

import (
	"net/http"

	"carimport/internal/middleware"
	"carimport/internal/service"
	"carimport/pkg/response"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cacheService service.CacheService
	jwtSecret    []byte
}

func NewAdminHandler(cacheService service.CacheService, jwtSecret []byte) *AdminHandler {
	return &AdminHandler{cacheService: cacheService, jwtSecret: jwtSecret}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.RequireRole(h.jwtSecret, "admin"))
	{
		admin.POST("/cache/invalidate", h.InvalidateCache)
	}
}

// InvalidateCache drops cached exchange rates and shipping prices so the
// next request reads the live sources.
// @Summary      Invalidate caches
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/admin/cache/invalidate [post]
func (h *AdminHandler) InvalidateCache(c *gin.Context) {
	if err := h.cacheService.InvalidateAll(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to invalidate cache"))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"invalidated": true}))
}
