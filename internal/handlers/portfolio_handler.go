package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// PortfolioHandler handles portfolio-related requests
type PortfolioHandler struct {
	portfolioService services.PortfolioServicer
	auditService     services.AuditServicer
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService services.PortfolioServicer, auditService services.AuditServicer) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService, auditService: auditService}
}

// CreatePortfolioRequest represents the portfolio creation payload
type CreatePortfolioRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdatePortfolioRequest represents the portfolio update payload
type UpdatePortfolioRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// AllocationTargetRequest is one allocation target in a replace request
type AllocationTargetRequest struct {
	ClassName     string  `json:"class_name" binding:"required,max=50"`
	TargetPercent float64 `json:"target_percent" binding:"min=0,max=100"`
	Color         string  `json:"color" binding:"omitempty,hex_color"`
}

// SetAllocationRequest replaces a portfolio's full allocation target set
type SetAllocationRequest struct {
	Targets []AllocationTargetRequest `json:"targets" binding:"required,dive"`
}

// CreatePortfolio handles portfolio creation
// @Summary     Create portfolio
// @Description Create a new empty portfolio
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePortfolioRequest true "Portfolio data"
// @Success     201 {object} map[string]interface{} "Portfolio created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolios [post]
func (h *PortfolioHandler) CreatePortfolio(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "create", "portfolio", portfolio.ID, c.ClientIP(), map[string]interface{}{"name": portfolio.Name})

	c.JSON(http.StatusCreated, gin.H{"portfolio": portfolio})
}

// GetPortfolios lists the user's portfolios
// @Summary     List portfolios
// @Description Get a paginated list of the user's portfolios
// @Tags        portfolios
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string]interface{} "Portfolios"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolios [get]
func (h *PortfolioHandler) GetPortfolios(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.portfolioService.GetUserPortfolios(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolios": result})
}

// GetPortfolio returns one portfolio with targets, assets and ratings
// @Summary     Get portfolio
// @Description Get a portfolio with its allocation targets, holdings and ratings
// @Tags        portfolios
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Success     200 {object} map[string]interface{} "Portfolio"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id} [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
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

	portfolio, err := h.portfolioService.GetPortfolioByID(userID, portfolioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}

// UpdatePortfolio renames a portfolio
// @Summary     Update portfolio
// @Description Rename a portfolio
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       request body UpdatePortfolioRequest true "New name"
// @Success     200 {object} map[string]interface{} "Portfolio updated"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id} [put]
func (h *PortfolioHandler) UpdatePortfolio(c *gin.Context) {
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

	var req UpdatePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(userID, portfolioID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "update", "portfolio", portfolio.ID, c.ClientIP(), map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusOK, gin.H{"portfolio": portfolio})
}

// DeletePortfolio removes a portfolio
// @Summary     Delete portfolio
// @Description Delete a portfolio and its holdings; history records are kept
// @Tags        portfolios
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Success     204 "Deleted"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id} [delete]
func (h *PortfolioHandler) DeletePortfolio(c *gin.Context) {
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

	if err := h.portfolioService.DeletePortfolio(userID, portfolioID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "delete", "portfolio", portfolioID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// SetAllocation replaces the portfolio's allocation targets
// @Summary     Set allocation targets
// @Description Replace the portfolio's allocation targets; they must sum to exactly 100
// @Tags        portfolios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       request body SetAllocationRequest true "Allocation targets"
// @Success     200 {object} map[string]interface{} "Targets replaced"
// @Failure     400 {object} ErrorResponse "Sum not 100 or duplicate class"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/allocation [put]
func (h *PortfolioHandler) SetAllocation(c *gin.Context) {
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

	var req SetAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	inputs := make([]services.AllocationInput, 0, len(req.Targets))
	for _, t := range req.Targets {
		inputs = append(inputs, services.AllocationInput{
			ClassName:     t.ClassName,
			TargetPercent: t.TargetPercent,
			Color:         t.Color,
		})
	}

	targets, err := h.portfolioService.SetAllocation(userID, portfolioID, inputs)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "set_allocation", "portfolio", portfolioID, c.ClientIP(), map[string]interface{}{"targets": len(targets)})

	c.JSON(http.StatusOK, gin.H{"allocation_data": targets})
}
