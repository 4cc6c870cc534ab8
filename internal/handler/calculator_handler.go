package handler

import (
	"fmt"
	"net/http"

	"carimport/internal/middleware"
	"carimport/internal/model"
	"carimport/internal/service"
	"carimport/pkg/response"

	"github.com/gin-gonic/gin"
)

type CalculatorHandler struct {
	calculator service.CalculatorService
	jwtSecret  []byte
}

func NewCalculatorHandler(calculator service.CalculatorService, jwtSecret []byte) *CalculatorHandler {
	return &CalculatorHandler{calculator: calculator, jwtSecret: jwtSecret}
}

func (h *CalculatorHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/calculator", middleware.OptionalAuth(h.jwtSecret), h.Calculate)
}

// Calculate prices a vehicle. Anonymous callers get a redacted breakdown.
// @Summary      Calculate import cost
// @Description  Prices a vehicle bought at a US auction and delivered to Armenia. Without a valid token the restricted figures are returned as "unavailable".
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      model.VehicleQuote  true  "Vehicle quote"
// @Success      200      {object}  response.Response{data=model.CostBreakdown}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /api/calculator [post]
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var quote model.VehicleQuote
	if err := c.ShouldBindJSON(&quote); err != nil {
		respondError(c, fmt.Errorf("%w: invalid request payload: %v", model.ErrInvalidQuoteInput, err))
		return
	}

	breakdown, err := h.calculator.Calculate(c.Request.Context(), quote, middleware.AccessPolicyFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, breakdown))
}
