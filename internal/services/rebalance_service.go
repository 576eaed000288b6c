package services

import (
	"time"

	"gorm.io/gorm"

	"carteira/internal/engine"
	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// rebalanceService computes rebalancing plans and keeps the
// append-only history of executed rebalancings.
type rebalanceService struct {
	db *gorm.DB
}

// NewRebalanceService creates a new RebalanceServicer.
func NewRebalanceService(db *gorm.DB) RebalanceServicer {
	return &rebalanceService{db: db}
}

// Plan returns the class-level rebalancing actions for a portfolio,
// filtered and sorted per the given display options.
func (s *rebalanceService) Plan(userID, portfolioID uint, opts engine.FilterOptions) ([]engine.Action, error) {
	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	actions := engine.Plan(engineTargets(portfolio), engineHoldings(portfolio))
	return engine.FilterActions(actions, opts), nil
}

// AssetPlan returns the asset-level rebalancing view, with each class
// target split evenly across the assets held in that class.
func (s *rebalanceService) AssetPlan(userID, portfolioID uint) ([]engine.AssetAction, error) {
	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	return engine.AssetPlan(engineTargets(portfolio), engineHoldings(portfolio)), nil
}

// Execute computes the current unfiltered plan and appends it to the
// rebalance history. Only actions with a nonzero diff are persisted;
// an execution where every class is already on target is still
// recorded, with a change count of zero.
func (s *rebalanceService) Execute(userID, portfolioID uint) (*models.RebalanceRecord, error) {
	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	actions := engine.Plan(engineTargets(portfolio), engineHoldings(portfolio))

	record := &models.RebalanceRecord{
		PortfolioID:   portfolio.ID,
		PortfolioName: portfolio.Name,
		Date:          time.Now(),
		Status:        models.RebalanceStatusCompleted,
	}
	for _, a := range actions {
		if a.DiffPercent == 0 {
			continue
		}
		record.ChangeCount++
		record.TotalAmount += a.Amount
		record.Actions = append(record.Actions, models.RebalanceActionRecord{
			AssetClass:     string(a.Class),
			CurrentPercent: a.CurrentPercent,
			TargetPercent:  a.TargetPercent,
			DiffPercent:    a.DiffPercent,
			Action:         string(a.Action),
			Amount:         a.Amount,
		})
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return record, nil
}

// History returns the portfolio's executed rebalancings, newest first.
func (s *rebalanceService) History(userID, portfolioID uint, page pagination.PageRequest) (*pagination.PageResponse[models.RebalanceRecord], error) {
	if _, err := loadPortfolio(s.db, userID, portfolioID); err != nil {
		return nil, err
	}

	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.RebalanceRecord{}).Where("portfolio_id = ?", portfolioID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.RebalanceRecord
	if err := base.Preload("Actions").Order("date DESC").Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}
