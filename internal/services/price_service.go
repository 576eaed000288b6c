package services

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	apperrors "carteira/internal/errors"
	"carteira/internal/logger"
	"carteira/internal/models"
	"carteira/internal/provider"
)

// priceService refreshes holding prices from the market data provider.
// Quotes are cached for a short TTL so a manual refresh right after
// the background sync does not hit the provider again.
type priceService struct {
	db       *gorm.DB
	provider provider.MarketData
	quotes   *cache.Cache
}

// NewPriceService creates a new PriceServicer.
func NewPriceService(db *gorm.DB, p provider.MarketData, quoteTTL time.Duration) PriceServicer {
	return &priceService{
		db:       db,
		provider: p,
		quotes:   cache.New(quoteTTL, 2*quoteTTL),
	}
}

// RefreshPortfolio updates the prices of a portfolio's holdings from
// the provider. Tickers the provider does not quote keep their stored
// price. Returns whether any price actually changed.
func (s *priceService) RefreshPortfolio(ctx context.Context, userID, portfolioID uint) (bool, error) {
	portfolio, err := loadPortfolio(s.db, userID, portfolioID)
	if err != nil {
		return false, err
	}
	return s.refresh(ctx, portfolio)
}

// RefreshAll refreshes every portfolio's holdings. Used by the
// background syncer and the pipeline endpoint. Returns the number of
// portfolios whose value changed; a provider failure for one
// portfolio does not stop the others.
func (s *priceService) RefreshAll(ctx context.Context) (int, error) {
	var portfolios []models.Portfolio
	if err := s.db.Preload("Assets").Find(&portfolios).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	changed := 0
	for i := range portfolios {
		ok, err := s.refresh(ctx, &portfolios[i])
		if err != nil {
			logger.Get().Errorw("price refresh failed for portfolio",
				"portfolio_id", portfolios[i].ID,
				"error", err,
			)
			continue
		}
		if ok {
			changed++
		}
	}
	return changed, nil
}

// Search proxies an asset lookup to the provider.
func (s *priceService) Search(ctx context.Context, query string) ([]provider.AssetInfo, error) {
	if query == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "search query is required")
	}
	results, err := s.provider.Search(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
	}
	return results, nil
}

func (s *priceService) refresh(ctx context.Context, portfolio *models.Portfolio) (bool, error) {
	if len(portfolio.Assets) == 0 {
		return false, nil
	}

	quoted := make(map[string]int64)
	var missing []string
	for _, a := range portfolio.Assets {
		if v, found := s.quotes.Get(a.Ticker); found {
			quoted[a.Ticker] = v.(int64)
		} else {
			missing = append(missing, a.Ticker)
		}
	}

	if len(missing) > 0 {
		fetched, err := s.provider.GetQuotes(ctx, missing)
		if err != nil {
			return false, apperrors.Wrap(apperrors.ErrPriceUnavailable, err)
		}
		for ticker, price := range fetched {
			s.quotes.Set(ticker, price, cache.DefaultExpiration)
			quoted[ticker] = price
		}
	}

	changed := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, a := range portfolio.Assets {
			price, ok := quoted[a.Ticker]
			if !ok || price == a.Price {
				continue
			}
			if err := tx.Model(&models.Asset{}).Where("id = ?", a.ID).Update("price", price).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			changed = true
		}
		if !changed {
			return nil
		}
		return recomputePortfolioValue(tx, portfolio.ID)
	})
	if err != nil {
		return false, err
	}

	return changed, nil
}
