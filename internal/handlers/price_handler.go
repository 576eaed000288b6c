package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/services"
)

// PriceHandler handles market data requests
type PriceHandler struct {
	priceService services.PriceServicer
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(priceService services.PriceServicer) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// RefreshPortfolio refreshes a portfolio's prices from the provider
// @Summary     Refresh prices
// @Description Update the portfolio's holding prices from the market data provider
// @Tags        prices
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Success     200 {object} map[string]interface{} "Refresh result"
// @Failure     404 {object} ErrorResponse "Not found"
// @Failure     502 {object} ErrorResponse "Provider unavailable"
// @Router      /portfolios/{id}/prices/refresh [post]
func (h *PriceHandler) RefreshPortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	portfolioID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	changed, err := h.priceService.RefreshPortfolio(c.Request.Context(), userID, portfolioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

// SearchAssets looks up tickers at the provider
// @Summary     Search assets
// @Description Search the market data provider for tickers matching a query
// @Tags        prices
// @Produce     json
// @Security    BearerAuth
// @Param       q query string true "Search query"
// @Success     200 {object} map[string]interface{} "Matches"
// @Failure     400 {object} ErrorResponse "Missing query"
// @Failure     502 {object} ErrorResponse "Provider unavailable"
// @Router      /assets/search [get]
func (h *PriceHandler) SearchAssets(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "query parameter q is required"))
		return
	}

	results, err := h.priceService.Search(c.Request.Context(), query)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// PipelineRefresh refreshes all portfolios; used by the data pipeline
// @Summary     Refresh all prices
// @Description Refresh every portfolio's prices; authenticated with the pipeline API key
// @Tags        pipeline
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} map[string]interface{} "Refresh result"
// @Failure     401 {object} ErrorResponse "Missing or invalid API key"
// @Router      /pipeline/prices/refresh [post]
func (h *PriceHandler) PipelineRefresh(c *gin.Context) {
	changed, err := h.priceService.RefreshAll(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolios_changed": changed})
}
