package services

import (
	"context"

	"gorm.io/gorm"

	"carteira/internal/engine"
	"carteira/internal/models"
	"carteira/internal/pagination"
	"carteira/internal/provider"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// AllocationInput is one desired allocation target as submitted by
// the client. The full set replaces the portfolio's targets and must
// sum to exactly 100 percent.
type AllocationInput struct {
	ClassName     string  `json:"class_name"`
	TargetPercent float64 `json:"target_percent"`
	Color         string  `json:"color"`
}

// PortfolioServicer defines the contract for portfolio-related business logic.
type PortfolioServicer interface {
	CreatePortfolio(userID uint, name string) (*models.Portfolio, error)
	GetUserPortfolios(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Portfolio], error)
	GetPortfolioByID(userID, portfolioID uint) (*models.Portfolio, error)
	UpdatePortfolio(userID, portfolioID uint, name string) (*models.Portfolio, error)
	DeletePortfolio(userID, portfolioID uint) error
	SetAllocation(userID, portfolioID uint, targets []AllocationInput) ([]models.AllocationTarget, error)
	RecomputeValue(tx *gorm.DB, portfolioID uint) error
}

// AssetServicer defines the contract for holding-related business logic.
type AssetServicer interface {
	AddAsset(userID, portfolioID uint, ticker, name string, assetType models.AssetType, price, quantity int64) (*models.Asset, error)
	UpdateAsset(userID, portfolioID, assetID uint, name string, price, quantity *int64) (*models.Asset, error)
	DeleteAsset(userID, portfolioID, assetID uint) error
	SetRating(userID, portfolioID, assetID uint, rating int) (*models.AssetRating, error)
}

// RebalanceServicer defines the contract for the rebalancing engine
// and its history.
type RebalanceServicer interface {
	Plan(userID, portfolioID uint, opts engine.FilterOptions) ([]engine.Action, error)
	AssetPlan(userID, portfolioID uint) ([]engine.AssetAction, error)
	Execute(userID, portfolioID uint) (*models.RebalanceRecord, error)
	History(userID, portfolioID uint, page pagination.PageRequest) (*pagination.PageResponse[models.RebalanceRecord], error)
}

// ContributionServicer defines the contract for contribution
// suggestions and confirmed contributions.
type ContributionServicer interface {
	Preview(userID, portfolioID uint, amount int64) ([]engine.Suggestion, error)
	Confirm(userID, portfolioID uint, amount int64) (*models.ContributionRecord, error)
	List(userID, portfolioID uint, page pagination.PageRequest) (*pagination.PageResponse[models.ContributionRecord], error)
}

// PriceServicer defines the contract for market data refresh and lookup.
type PriceServicer interface {
	RefreshPortfolio(ctx context.Context, userID, portfolioID uint) (bool, error)
	RefreshAll(ctx context.Context) (int, error)
	Search(ctx context.Context, query string) ([]provider.AssetInfo, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
