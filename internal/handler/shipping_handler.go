package handler

import (
	"context"
	"net/http"
	"strings"

	"carimport/internal/middleware"
	"carimport/internal/model"
	"carimport/internal/repository"
	"carimport/internal/shipping"
	"carimport/pkg/pagination"
	"carimport/pkg/response"

	"github.com/gin-gonic/gin"
)

type ShippingLookup interface {
	Resolve(ctx context.Context, city, auctionHouse, category string) (model.ShippingPrice, error)
	ListCities(ctx context.Context, filter repository.ShippingCityFilter, page, limit int) ([]shipping.CityOption, int64, error)
}

type ShippingHandler struct {
	shipping  ShippingLookup
	jwtSecret []byte
}

func NewShippingHandler(lookup ShippingLookup, jwtSecret []byte) *ShippingHandler {
	return &ShippingHandler{shipping: lookup, jwtSecret: jwtSecret}
}

func (h *ShippingHandler) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/api/shipping")
	{
		group.GET("/cities", h.ListCities)
		group.GET("/price", middleware.RequireAuth(h.jwtSecret), h.GetPrice)
	}
}

// GetPrice resolves the shipping price for ?city=&auction=&category=.
// @Summary      Get shipping price
// @Description  Resolves the inland and ocean shipping price from a pickup city
// @Tags         shipping
// @Produce      json
// @Security     BearerAuth
// @Param        city      query     string  true   "Pickup city"
// @Param        auction   query     string  false  "Auction house"  default(copart)
// @Param        category  query     string  false  "Vehicle category"  default(sedan)
// @Success      200       {object}  response.Response{data=model.ShippingPrice}
// @Failure      400       {object}  response.Response
// @Failure      401       {object}  response.Response
// @Failure      422       {object}  response.Response
// @Router       /api/shipping/price [get]
func (h *ShippingHandler) GetPrice(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	auction := strings.ToLower(c.DefaultQuery("auction", model.AuctionCopart))
	category := strings.ToLower(c.DefaultQuery("category", model.CategorySedan))
	if city == "" {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "city is required"))
		return
	}

	price, err := h.shipping.Resolve(c.Request.Context(), city, auction, category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, price))
}

// ListCities pages through the pickup cities for the catalog's city picker.
// @Summary      List pickup cities
// @Tags         shipping
// @Produce      json
// @Param        auction   query     string  false  "Auction house"
// @Param        category  query     string  false  "Vehicle category"
// @Param        search    query     string  false  "City or state prefix"
// @Param        page      query     int     false  "Page"   default(1)
// @Param        limit     query     int     false  "Limit"  default(10)
// @Success      200       {object}  response.Response{data=pagination.Page{items=[]shipping.CityOption}}
// @Router       /api/shipping/cities [get]
func (h *ShippingHandler) ListCities(c *gin.Context) {
	p := pagination.Parse(c)
	filter := repository.ShippingCityFilter{
		Auction:  strings.ToLower(c.Query("auction")),
		Category: strings.ToLower(c.Query("category")),
		Search:   strings.TrimSpace(c.Query("search")),
	}

	cities, total, err := h.shipping.ListCities(c.Request.Context(), filter, p.Page, p.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, pagination.NewPage(cities, p, total)))
}
