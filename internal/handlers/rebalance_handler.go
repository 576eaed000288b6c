package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carteira/internal/engine"
	apperrors "carteira/internal/errors"
	"carteira/internal/pagination"
	"carteira/internal/services"
)

// RebalanceHandler handles rebalancing requests
type RebalanceHandler struct {
	rebalanceService services.RebalanceServicer
	auditService     services.AuditServicer
}

// NewRebalanceHandler creates a new RebalanceHandler
func NewRebalanceHandler(rebalanceService services.RebalanceServicer, auditService services.AuditServicer) *RebalanceHandler {
	return &RebalanceHandler{rebalanceService: rebalanceService, auditService: auditService}
}

// RebalanceQuery holds the display options for a rebalancing plan.
// Absent fields fall back to the defaults: threshold 5, only changes,
// sorted by largest gap.
type RebalanceQuery struct {
	Threshold   *float64 `form:"threshold" binding:"omitempty,min=0,max=100"`
	OnlyChanges *bool    `form:"only_changes"`
	SortBy      string   `form:"sort_by" binding:"omitempty,rebalance_sort"`
}

func (q *RebalanceQuery) options() engine.FilterOptions {
	opts := engine.DefaultFilterOptions()
	if q.Threshold != nil {
		opts.Threshold = *q.Threshold
	}
	if q.OnlyChanges != nil {
		opts.OnlyChanges = *q.OnlyChanges
	}
	if q.SortBy != "" {
		opts.SortBy = engine.SortBy(q.SortBy)
	}
	return opts
}

// GetPlan returns the class-level rebalancing plan
// @Summary     Rebalancing plan
// @Description Compare current class percentages against targets
// @Tags        rebalance
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       threshold query number false "Minimum absolute gap to show (default 5)"
// @Param       only_changes query bool false "Hide classes already on target (default true)"
// @Param       sort_by query string false "difference, alphabetical, current or target"
// @Success     200 {object} map[string]interface{} "Plan"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/rebalance [get]
func (h *RebalanceHandler) GetPlan(c *gin.Context) {
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

	var query RebalanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	actions, err := h.rebalanceService.Plan(userID, portfolioID, query.options())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// GetAssetPlan returns the asset-level rebalancing view
// @Summary     Asset-level plan
// @Description Rebalancing view with each class target split evenly across its holdings
// @Tags        rebalance
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Success     200 {object} map[string]interface{} "Asset actions"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/rebalance/assets [get]
func (h *RebalanceHandler) GetAssetPlan(c *gin.Context) {
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

	actions, err := h.rebalanceService.AssetPlan(userID, portfolioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

// Execute records the current plan in the rebalance history
// @Summary     Execute rebalancing
// @Description Record the current rebalancing plan in the append-only history
// @Tags        rebalance
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Success     201 {object} map[string]interface{} "Recorded execution"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/rebalance [post]
func (h *RebalanceHandler) Execute(c *gin.Context) {
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

	record, err := h.rebalanceService.Execute(userID, portfolioID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "rebalance", "portfolio", portfolioID, c.ClientIP(), map[string]interface{}{"changes": record.ChangeCount})

	c.JSON(http.StatusCreated, gin.H{"record": record})
}

// GetHistory returns executed rebalancings, newest first
// @Summary     Rebalance history
// @Description Paginated list of executed rebalancings
// @Tags        rebalance
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Portfolio ID"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} map[string]interface{} "History"
// @Failure     404 {object} ErrorResponse "Not found"
// @Router      /portfolios/{id}/rebalance/history [get]
func (h *RebalanceHandler) GetHistory(c *gin.Context) {
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

	history, err := h.rebalanceService.History(userID, portfolioID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
