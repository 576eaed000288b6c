package models

// Portfolio groups a user's holdings, allocation targets and ratings.
// Value is derived (sum of price × quantity across assets, in cents)
// and recomputed whenever holdings or prices change. The return
// fields are display placeholders; no performance computation feeds
// them.
type Portfolio struct {
	Base
	UserID           uint    `gorm:"not null;index" json:"user_id"`
	Name             string  `gorm:"not null" json:"name"`
	Value            int64   `gorm:"type:bigint;not null;default:0" json:"value"`
	ReturnPercentage float64 `gorm:"not null;default:0" json:"return_percentage"`
	ReturnValue      int64   `gorm:"type:bigint;not null;default:0" json:"return_value"`

	// Relationships
	Targets []AllocationTarget `gorm:"foreignKey:PortfolioID" json:"allocation_data,omitempty"`
	Assets  []Asset            `gorm:"foreignKey:PortfolioID" json:"assets,omitempty"`
	Ratings []AssetRating      `gorm:"foreignKey:PortfolioID" json:"asset_ratings,omitempty"`
}

// AllocationTarget is the desired percentage of portfolio value for
// one allocation class. The set for a portfolio must sum to 100 at
// save time; transient non-100 states only ever exist client-side.
type AllocationTarget struct {
	Base
	PortfolioID   uint    `gorm:"not null;index" json:"portfolio_id"`
	ClassName     string  `gorm:"not null" json:"class_name"`
	TargetPercent float64 `gorm:"not null" json:"target_percent"`
	Color         string  `json:"color"`
}
