package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
)

// assetService handles holding-related business logic.
type assetService struct {
	db *gorm.DB
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB) AssetServicer {
	return &assetService{db: db}
}

// AddAsset adds a holding to a portfolio. Tickers are unique per
// portfolio; the same ticker may exist in different portfolios.
func (s *assetService) AddAsset(userID, portfolioID uint, ticker, name string, assetType models.AssetType, price, quantity int64) (*models.Asset, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "ticker is required")
	}
	if price < 0 || quantity < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price and quantity must not be negative")
	}

	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Asset{}).
		Where("portfolio_id = ? AND ticker = ?", portfolio.ID, ticker).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateTicker
	}

	asset := &models.Asset{
		PortfolioID: portfolio.ID,
		Ticker:      ticker,
		Name:        name,
		Type:        assetType,
		Price:       price,
		Quantity:    quantity,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(asset).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return recomputePortfolioValue(tx, portfolio.ID)
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// UpdateAsset updates a holding's name, price or quantity. Nil price
// or quantity means "leave unchanged".
func (s *assetService) UpdateAsset(userID, portfolioID, assetID uint, name string, price, quantity *int64) (*models.Asset, error) {
	asset, err := s.getOwnedAsset(userID, portfolioID, assetID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
		asset.Name = name
	}
	if price != nil {
		if *price < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must not be negative")
		}
		updates["price"] = *price
		asset.Price = *price
	}
	if quantity != nil {
		if *quantity < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must not be negative")
		}
		updates["quantity"] = *quantity
		asset.Quantity = *quantity
	}
	if len(updates) == 0 {
		return asset, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(asset).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return recomputePortfolioValue(tx, asset.PortfolioID)
	})
	if err != nil {
		return nil, err
	}

	return asset, nil
}

// DeleteAsset removes a holding and its rating from a portfolio.
func (s *assetService) DeleteAsset(userID, portfolioID, assetID uint) error {
	asset, err := s.getOwnedAsset(userID, portfolioID, assetID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("asset_id = ?", asset.ID).Delete(&models.AssetRating{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// Hard delete: a soft-deleted row would keep occupying the
		// portfolio+ticker unique index and block re-adding the ticker.
		if err := tx.Unscoped().Delete(asset).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return recomputePortfolioValue(tx, asset.PortfolioID)
	})
}

// SetRating upserts the contribution rating for a holding.
func (s *assetService) SetRating(userID, portfolioID, assetID uint, rating int) (*models.AssetRating, error) {
	if rating < 0 || rating > 10 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "rating must be between 0 and 10")
	}

	asset, err := s.getOwnedAsset(userID, portfolioID, assetID)
	if err != nil {
		return nil, err
	}

	var row models.AssetRating
	err = s.db.Where("asset_id = ?", asset.ID).First(&row).Error
	switch {
	case err == nil:
		if err := s.db.Model(&row).Update("rating", rating).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		row.Rating = rating
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.AssetRating{PortfolioID: asset.PortfolioID, AssetID: asset.ID, Rating: rating}
		if err := s.db.Create(&row).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &row, nil
}

// getOwnedAsset fetches an asset checking both portfolio membership
// and portfolio ownership.
func (s *assetService) getOwnedAsset(userID, portfolioID, assetID uint) (*models.Asset, error) {
	if _, err := loadPortfolio(s.db, userID, portfolioID); err != nil {
		return nil, err
	}

	var asset models.Asset
	if err := s.db.Where("id = ? AND portfolio_id = ?", assetID, portfolioID).First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &asset, nil
}
