package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// ContributionHandler handles contribution requests
type ContributionHandler struct {
	contributionService services.ContributionServicer
	auditService        services.AuditServicer
}

// NewContributionHandler creates a new ContributionHandler
func NewContributionHandler(contributionService services.ContributionServicer, auditService services.AuditServicer) *ContributionHandler {
	return &ContributionHandler{contributionService: contributionService, auditService: auditService}
}

// ContributionRequest carries the cash amount, in cents.
type ContributionRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// PreviewContribution suggests how to split a contribution
// @Summary     Preview contribution
// @Description Suggest how to distribute a cash amount across the portfolio
// @Tags        contributions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       request body ContributionRequest true "Amount in cents"
// @Success     200 {object} map[string]interface{} "Suggestions"
// @Failure     400 {object} ErrorResponse "Invalid amount or unpriced holding"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/contributions/preview [post]
func (h *ContributionHandler) PreviewContribution(c *gin.Context) {
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

	var req ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	suggestions, err := h.contributionService.Preview(userID, portfolioID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// ConfirmContribution applies and records a contribution
// @Summary     Confirm contribution
// @Description Apply the suggested split to the holdings and record it
// @Tags        contributions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       request body ContributionRequest true "Amount in cents"
// @Success     201 {object} map[string]interface{} "Recorded contribution"
// @Failure     400 {object} ErrorResponse "Invalid amount or unpriced holding"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/contributions [post]
func (h *ContributionHandler) ConfirmContribution(c *gin.Context) {
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

	var req ContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.contributionService.Confirm(userID, portfolioID, req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "contribute", "portfolio", portfolioID, c.ClientIP(), map[string]interface{}{"amount": req.Amount})

	c.JSON(http.StatusCreated, gin.H{"record": record})
}

// GetContributions lists confirmed contributions, newest first
// @Summary     Contribution history
// @Description Paginated list of confirmed contributions
// @Tags        contributions
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string]interface{} "Contributions"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/contributions [get]
func (h *ContributionHandler) GetContributions(c *gin.Context) {
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

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contributions, err := h.contributionService.List(userID, portfolioID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contributions": contributions})
}
