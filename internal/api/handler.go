package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/middleware"
	"github.com/guttosm/stockpulse/internal/service"
)

// Handler provides HTTP handlers for the market data endpoints.
//
// Responsibilities:
//   - Call the market service with the request context
//   - Return the service results verbatim as JSON
//   - Map load failures to a structured ErrorResponse
//
// None of the endpoints take parameters; every one is a pure read.
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.MarketService): service used to load records and derive views.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// GetStocks godoc
// @Summary      List stock records
// @Description  Returns every record of the current snapshot in source order
// @Tags         market
// @Produce      json
// @Success      200  {array}   models.StockRecord
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/stocks [get]
func (h *Handler) GetStocks(c *gin.Context) {
	records, err := h.svc.Stocks(c.Request.Context())
	if err != nil {
		abortLoad(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetHeatmap godoc
// @Summary      Sector heatmap
// @Description  One node per sector: size is total market cap, value is mean daily change
// @Tags         market
// @Produce      json
// @Success      200  {object}  models.HeatmapNode
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/heatmap [get]
func (h *Handler) GetHeatmap(c *gin.Context) {
	node, err := h.svc.Heatmap(c.Request.Context())
	if err != nil {
		abortLoad(c, err)
		return
	}
	c.JSON(http.StatusOK, node)
}

// GetDetailedHeatmap godoc
// @Summary      Detailed sector heatmap
// @Description  Sector summaries with one stock leaf per record as children
// @Tags         market
// @Produce      json
// @Success      200  {object}  models.HeatmapNode
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/heatmap/detailed [get]
func (h *Handler) GetDetailedHeatmap(c *gin.Context) {
	node, err := h.svc.DetailedHeatmap(c.Request.Context())
	if err != nil {
		abortLoad(c, err)
		return
	}
	c.JSON(http.StatusOK, node)
}

// GetMarketSummary godoc
// @Summary      Market summary
// @Description  Average daily change, totals and top 5 gainers/losers
// @Tags         market
// @Produce      json
// @Success      200  {object}  models.MarketSummary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/market-summary [get]
func (h *Handler) GetMarketSummary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		abortLoad(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetOverview godoc
// @Summary      Market overview
// @Description  Coarse heatmap, detailed heatmap and summary computed from a single snapshot load
// @Tags         market
// @Produce      json
// @Success      200  {object}  models.MarketOverview
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/overview [get]
func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		abortLoad(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// abortLoad answers 504 when the request deadline expired, 500 otherwise.
func abortLoad(c *gin.Context, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		middleware.AbortWithError(c, http.StatusGatewayTimeout, "request timed out", err)
		return
	}
	middleware.AbortWithError(c, http.StatusInternalServerError, "failed to load stock data", err)
}
