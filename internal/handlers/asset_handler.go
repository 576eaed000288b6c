package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/services"
)

// AssetHandler handles holding-related requests
type AssetHandler struct {
	assetService services.AssetServicer
	auditService services.AuditServicer
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService services.AssetServicer, auditService services.AuditServicer) *AssetHandler {
	return &AssetHandler{assetService: assetService, auditService: auditService}
}

// AddAssetRequest represents the holding creation payload.
// Price is in cents; quantity in whole units.
type AddAssetRequest struct {
	Ticker   string `json:"ticker" binding:"required,max=20"`
	Name     string `json:"name" binding:"required,max=100"`
	Type     string `json:"type" binding:"required,asset_type"`
	Price    int64  `json:"price" binding:"min=0"`
	Quantity int64  `json:"quantity" binding:"min=0"`
}

// UpdateAssetRequest represents the holding update payload.
// Nil price/quantity leave the stored values unchanged.
type UpdateAssetRequest struct {
	Name     string `json:"name" binding:"omitempty,max=100"`
	Price    *int64 `json:"price" binding:"omitempty,min=0"`
	Quantity *int64 `json:"quantity" binding:"omitempty,min=0"`
}

// SetRatingRequest represents the rating payload
type SetRatingRequest struct {
	Rating *int `json:"rating" binding:"required,min=0,max=10"`
}

// AddAsset adds a holding to a portfolio
// @Summary     Add holding
// @Description Add a holding to a portfolio; tickers are unique per portfolio
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       request body AddAssetRequest true "Holding data"
// @Success     201 {object} map[string]interface{} "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Portfolio not found"
// @Failure     409 {object} ErrorResponse "Duplicate ticker"
// @Router      /portfolios/{id}/assets [post]
func (h *AssetHandler) AddAsset(c *gin.Context) {
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

	var req AddAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.AddAsset(userID, portfolioID, req.Ticker, req.Name, models.AssetType(req.Type), req.Price, req.Quantity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "asset", asset.ID, c.ClientIP(), map[string]interface{}{"ticker": asset.Ticker})

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// UpdateAsset updates a holding
// @Summary     Update holding
// @Description Update a holding's name, price or quantity
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       assetId path int true "Asset ID"
// @Param       request body UpdateAssetRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Holding updated"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/assets/{assetId} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
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

	assetID, err := parsePathID(c, "assetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.assetService.UpdateAsset(userID, portfolioID, assetID, req.Name, req.Price, req.Quantity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "asset", asset.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// DeleteAsset removes a holding
// @Summary     Delete holding
// @Description Remove a holding and its rating from a portfolio
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       assetId path int true "Asset ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/assets/{assetId} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
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

	assetID, err := parsePathID(c, "assetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.assetService.DeleteAsset(userID, portfolioID, assetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "asset", assetID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// SetRating sets a holding's contribution rating
// @Summary     Rate holding
// @Description Set the 0-10 rating that weights contribution suggestions
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       assetId path int true "Asset ID"
// @Param       request body SetRatingRequest true "Rating"
// @Success     200 {object} map[string]interface{} "Rating set"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/assets/{assetId}/rating [put]
func (h *AssetHandler) SetRating(c *gin.Context) {
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

	assetID, err := parsePathID(c, "assetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rating, err := h.assetService.SetRating(userID, portfolioID, assetID, *req.Rating)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "set_rating", "asset", assetID, c.ClientIP(), map[string]interface{}{"rating": rating.Rating})

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}
