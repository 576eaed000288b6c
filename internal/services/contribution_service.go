package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"carteira/internal/engine"
	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// contributionService computes contribution suggestions and records
// confirmed contributions.
type contributionService struct {
	db *gorm.DB
}

// NewContributionService creates a new ContributionServicer.
func NewContributionService(db *gorm.DB) ContributionServicer {
	return &contributionService{db: db}
}

// Preview returns the suggested split of a cash amount across the
// portfolio's holdings without persisting anything.
func (s *contributionService) Preview(userID, portfolioID uint, amount int64) ([]engine.Suggestion, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contribution amount must be positive")
	}

	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return nil, err
	}
	if err := checkFundablePrices(portfolio); err != nil {
		return nil, err
	}

	return engine.SuggestContribution(engineTargets(portfolio), engineHoldings(portfolio), engineRatings(portfolio), amount), nil
}

// Confirm recomputes the suggestion split for the current portfolio
// state and applies it in a single transaction: matched holdings get
// their quantities bumped, placeholder lines are recorded but touch
// no holding, and the whole contribution is appended to history. A
// failure anywhere leaves holdings, value and history untouched.
func (s *contributionService) Confirm(userID, portfolioID uint, amount int64) (*models.ContributionRecord, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contribution amount must be positive")
	}

	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return nil, err
	}
	if err := checkFundablePrices(portfolio); err != nil {
		return nil, err
	}

	suggestions := engine.SuggestContribution(engineTargets(portfolio), engineHoldings(portfolio), engineRatings(portfolio), amount)

	record := &models.ContributionRecord{
		PortfolioID: portfolio.ID,
		Date:        time.Now(),
		Amount:      amount,
	}
	for _, sug := range suggestions {
		record.Allocations = append(record.Allocations, models.ContributionAllocation{
			AssetName: sug.Name,
			ClassName: string(sug.Class),
			Amount:    sug.Amount,
			Quantity:  sug.Quantity,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, sug := range suggestions {
			if sug.AssetID == 0 || sug.Quantity == 0 {
				continue
			}
			result := tx.Model(&models.Asset{}).
				Where("id = ? AND portfolio_id = ?", sug.AssetID, portfolio.ID).
				Update("quantity", gorm.Expr("quantity + ?", sug.Quantity))
			if result.Error != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
			}
			if result.RowsAffected == 0 {
				return apperrors.Wrap(apperrors.ErrInternalServer, fmt.Errorf("asset %d vanished during contribution", sug.AssetID))
			}
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return recomputePortfolioValue(tx, portfolio.ID)
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// List returns the portfolio's confirmed contributions, newest first.
func (s *contributionService) List(userID, portfolioID uint, page pagination.PageRequest) (*pagination.PageResponse[models.ContributionRecord], error) {
	if _, err := loadPortfolio(s.db, userID, portfolioID); err != nil {
		return nil, err
	}

	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.ContributionRecord{}).Where("portfolio_id = ?", portfolioID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.ContributionRecord
	if err := base.Preload("Allocations").Order("date DESC").Scopes(pagination.Paginate(page)).Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// checkFundablePrices rejects a contribution when any held asset has
// a non-positive price. Suggested quantities divide by price, so a
// stale zero price would silently black-hole the money.
func checkFundablePrices(p *models.Portfolio) error {
	for _, a := range p.Assets {
		if a.Price <= 0 {
			return apperrors.WithMessage(apperrors.ErrInvalidPrice, fmt.Sprintf("asset %s has no positive price", a.Ticker))
		}
	}
	return nil
}
