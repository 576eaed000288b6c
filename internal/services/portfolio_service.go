package services

import (
	"errors"

	"gorm.io/gorm"

	"carteira/internal/engine"
	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/pagination"
)

// portfolioService handles portfolio-related business logic.
type portfolioService struct {
	db *gorm.DB
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB) PortfolioServicer {
	return &portfolioService{db: db}
}

// CreatePortfolio creates a new empty portfolio for a user.
func (s *portfolioService) CreatePortfolio(userID uint, name string) (*models.Portfolio, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "portfolio name is required")
	}

	portfolio := &models.Portfolio{
		UserID: userID,
		Name:   name,
	}

	if err := s.db.Create(portfolio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return portfolio, nil
}

// GetUserPortfolios retrieves a paginated list of a user's portfolios.
func (s *portfolioService) GetUserPortfolios(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Portfolio], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Portfolio{}).Where("user_id = ?", userID)
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var portfolios []models.Portfolio
	if err := base.Order("created_at ASC").Scopes(pagination.Paginate(page)).Find(&portfolios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(portfolios, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPortfolioByID retrieves a single portfolio with its targets,
// assets and ratings, scoped to the owning user.
func (s *portfolioService) GetPortfolioByID(userID, portfolioID uint) (*models.Portfolio, error) {
	return loadPortfolio(s.db, userID, portfolioID)
}

// UpdatePortfolio renames a portfolio.
func (s *portfolioService) UpdatePortfolio(userID, portfolioID uint, name string) (*models.Portfolio, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "portfolio name is required")
	}

	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(portfolio).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	portfolio.Name = name

	return portfolio, nil
}

// DeletePortfolio deletes a portfolio and everything it owns,
// including its contribution and rebalance history.
func (s *portfolioService) DeletePortfolio(userID, portfolioID uint) error {
	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", portfolio.ID).Delete(&models.AllocationTarget{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("portfolio_id = ?", portfolio.ID).Delete(&models.AssetRating{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("portfolio_id = ?", portfolio.ID).Delete(&models.Asset{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// History rows are hard-deleted; their tables have no soft
		// delete column. Children go first.
		contribIDs := tx.Model(&models.ContributionRecord{}).Select("id").Where("portfolio_id = ?", portfolio.ID)
		if err := tx.Where("record_id IN (?)", contribIDs).Delete(&models.ContributionAllocation{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("portfolio_id = ?", portfolio.ID).Delete(&models.ContributionRecord{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		rebalanceIDs := tx.Model(&models.RebalanceRecord{}).Select("id").Where("portfolio_id = ?", portfolio.ID)
		if err := tx.Where("record_id IN (?)", rebalanceIDs).Delete(&models.RebalanceActionRecord{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Where("portfolio_id = ?", portfolio.ID).Delete(&models.RebalanceRecord{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Delete(portfolio).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// SetAllocation replaces the portfolio's allocation targets. The new
// set must have unique class names and sum to exactly 100 percent;
// anything else is rejected and the previous targets stay in place.
func (s *portfolioService) SetAllocation(userID, portfolioID uint, targets []AllocationInput) ([]models.AllocationTarget, error) {
	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(targets))
	newTargets := make([]engine.Target, 0, len(targets))
	for _, t := range targets {
		if t.ClassName == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "class name is required")
		}
		if seen[t.ClassName] {
			return nil, apperrors.ErrDuplicateClass
		}
		seen[t.ClassName] = true
		newTargets = append(newTargets, engine.Target{Class: engine.Class(t.ClassName), Percent: t.TargetPercent})
	}

	if !engine.TargetsComplete(newTargets) {
		return nil, apperrors.ErrAllocationSumInvalid
	}

	rows := make([]models.AllocationTarget, 0, len(targets))
	for _, t := range targets {
		rows = append(rows, models.AllocationTarget{
			PortfolioID:   portfolio.ID,
			ClassName:     t.ClassName,
			TargetPercent: t.TargetPercent,
			Color:         t.Color,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("portfolio_id = ?", portfolio.ID).Delete(&models.AllocationTarget{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// RecomputeValue recalculates the derived portfolio value from its
// current holdings. Callers mutating holdings or prices inside a
// transaction pass that transaction in.
func (s *portfolioService) RecomputeValue(tx *gorm.DB, portfolioID uint) error {
	if tx == nil {
		tx = s.db
	}
	return recomputePortfolioValue(tx, portfolioID)
}

// loadPortfolio fetches a portfolio with all relations, scoped to the
// owning user.
func loadPortfolio(db *gorm.DB, userID, portfolioID uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := db.Preload("Targets").Preload("Assets").Preload("Ratings").
		Where("id = ? AND user_id = ?", portfolioID, userID).
		First(&portfolio).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPortfolioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &portfolio, nil
}

// recomputePortfolioValue sums price times quantity over the
// portfolio's holdings and stores the result.
func recomputePortfolioValue(tx *gorm.DB, portfolioID uint) error {
	var value int64
	if err := tx.Model(&models.Asset{}).
		Where("portfolio_id = ?", portfolioID).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&value).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := tx.Model(&models.Portfolio{}).Where("id = ?", portfolioID).Update("value", value).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// engineHoldings maps a portfolio's assets onto engine holdings.
func engineHoldings(p *models.Portfolio) []engine.Holding {
	holdings := make([]engine.Holding, 0, len(p.Assets))
	for _, a := range p.Assets {
		holdings = append(holdings, engine.Holding{
			ID:       a.ID,
			Ticker:   a.Ticker,
			Name:     a.Name,
			Class:    engine.ClassForType(string(a.Type)),
			Price:    a.Price,
			Quantity: a.Quantity,
		})
	}
	return holdings
}

// engineTargets maps a portfolio's allocation targets onto engine targets.
func engineTargets(p *models.Portfolio) []engine.Target {
	targets := make([]engine.Target, 0, len(p.Targets))
	for _, t := range p.Targets {
		targets = append(targets, engine.Target{Class: engine.Class(t.ClassName), Percent: t.TargetPercent})
	}
	return targets
}

// engineRatings maps a portfolio's asset ratings onto the engine's
// rating lookup. Assets without a row fall back to the default inside
// the engine.
func engineRatings(p *models.Portfolio) map[uint]int {
	ratings := make(map[uint]int, len(p.Ratings))
	for _, r := range p.Ratings {
		ratings[r.AssetID] = r.Rating
	}
	return ratings
}
