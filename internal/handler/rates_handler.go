package handler

import (
	"net/http"

	"carimport/internal/service"
	"carimport/pkg/response"

	"github.com/gin-gonic/gin"
)

type RatesHandler struct {
	ratesService service.RatesService
}

func NewRatesHandler(ratesService service.RatesService) *RatesHandler {
	return &RatesHandler{ratesService: ratesService}
}

func (h *RatesHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/exchange-rates", h.GetRates)
}

// GetRates returns the current AMD rates; fallback figures are flagged.
// @Summary      Get exchange rates
// @Description  Current AMD per USD and AMD per EUR rates and the derived EUR to USD cross rate
// @Tags         rates
// @Produce      json
// @Success      200  {object}  response.Response{data=model.ExchangeRates}
// @Router       /api/exchange-rates [get]
func (h *RatesHandler) GetRates(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.ratesService.Current(c.Request.Context())))
}
