package models

import (
	"time"

	"carteira/internal/uuid"

	"gorm.io/gorm"
)

// ContributionRecord is the append-only record of a confirmed cash
// contribution. Immutable time-series data, so no Base embed and no
// soft deletes.
type ContributionRecord struct {
	ID          string                   `gorm:"type:uuid;primaryKey" json:"id"`
	PortfolioID uint                     `gorm:"not null;index" json:"portfolio_id"`
	Date        time.Time                `gorm:"not null" json:"date"`
	Amount      int64                    `gorm:"type:bigint;not null" json:"amount"`
	Allocations []ContributionAllocation `gorm:"foreignKey:RecordID" json:"allocations"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (c *ContributionRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New()
	}
	return nil
}

// ContributionAllocation is one executed line of a contribution:
// which asset (or placeholder class) received how much.
type ContributionAllocation struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	RecordID  string `gorm:"type:uuid;not null;index" json:"record_id"`
	AssetName string `gorm:"not null" json:"asset"`
	ClassName string `gorm:"not null" json:"class"`
	Amount    int64  `gorm:"type:bigint;not null" json:"value"`
	Quantity  int64  `gorm:"type:bigint;not null" json:"quantity"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (a *ContributionAllocation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New()
	}
	return nil
}
