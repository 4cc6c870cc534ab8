package handler

import (
	"net/http"

	"carimport/internal/model"
	"carimport/pkg/response"

	"github.com/gin-gonic/gin"
)

// statusFor maps a domain error code onto its HTTP status.
var statusFor = map[string]int{
	model.CodeInvalidQuoteInput:     http.StatusBadRequest,
	model.CodeShippingUnresolved:    http.StatusUnprocessableEntity,
	model.CodeTaxServiceUnavailable: http.StatusBadGateway,
	model.CodeInternal:              http.StatusInternalServerError,
}

func respondError(c *gin.Context, err error) {
	code := model.ErrorCode(err)
	status := statusFor[code]

	message := err.Error()
	if code == model.CodeInternal {
		message = "internal server error"
	}
	_ = c.Error(err)
	c.JSON(status, response.ErrorWithCode(status, code, message))
}
