package models

// AssetType represents the type of a portfolio holding. Types map
// many-to-one onto allocation classes; anything else groups under
// "Outros".
type AssetType string

const (
	AssetTypeStock         AssetType = "stock"
	AssetTypeREIT          AssetType = "reit"
	AssetTypeFixedIncome   AssetType = "fixed_income"
	AssetTypeInternational AssetType = "international"
)

// Asset represents a holding owned by exactly one portfolio.
// Price is in cents; quantity is whole units.
type Asset struct {
	Base
	PortfolioID uint      `gorm:"not null;index;uniqueIndex:uq_assets_portfolio_ticker" json:"portfolio_id"`
	Ticker      string    `gorm:"not null;uniqueIndex:uq_assets_portfolio_ticker" json:"ticker"`
	Name        string    `gorm:"not null" json:"name"`
	Type        AssetType `gorm:"not null" json:"type"`
	Price       int64     `gorm:"type:bigint;not null;default:0" json:"price"`
	Quantity    int64     `gorm:"type:bigint;not null;default:0" json:"quantity"`
}

// AssetRating is a 0 to 10 user preference weight for an asset, used
// only when distributing new contributions inside a class. Holdings
// without a row read as rating 5.
type AssetRating struct {
	Base
	PortfolioID uint `gorm:"not null;index" json:"portfolio_id"`
	AssetID     uint `gorm:"not null;uniqueIndex" json:"asset_id"`
	Rating      int  `gorm:"not null;default:5" json:"rating"`
}
