package models

import (
	"time"

	"carteira/internal/uuid"

	"gorm.io/gorm"
)

// RebalanceStatusCompleted is the only status an executed rebalancing
// can carry today; the column exists so failed or partial executions
// can be represented later without a schema change.
const RebalanceStatusCompleted = "completed"

// RebalanceRecord is the append-only record of an executed
// rebalancing. Immutable time-series data, so no Base embed and no
// soft deletes.
type RebalanceRecord struct {
	ID            string                  `gorm:"type:uuid;primaryKey" json:"id"`
	PortfolioID   uint                    `gorm:"not null;index" json:"portfolio_id"`
	PortfolioName string                  `gorm:"not null" json:"portfolio_name"`
	Date          time.Time               `gorm:"not null" json:"date"`
	ChangeCount   int                     `gorm:"not null" json:"change_count"`
	TotalAmount   int64                   `gorm:"type:bigint;not null" json:"total_amount"`
	Status        string                  `gorm:"not null" json:"status"`
	Actions       []RebalanceActionRecord `gorm:"foreignKey:RecordID" json:"actions"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (r *RebalanceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New()
	}
	return nil
}

// RebalanceActionRecord is one persisted class-level action of an
// executed rebalancing.
type RebalanceActionRecord struct {
	ID             string  `gorm:"type:uuid;primaryKey" json:"id"`
	RecordID       string  `gorm:"type:uuid;not null;index" json:"record_id"`
	AssetClass     string  `gorm:"not null" json:"asset_class"`
	CurrentPercent float64 `gorm:"not null" json:"current_percent"`
	TargetPercent  float64 `gorm:"not null" json:"target_percent"`
	DiffPercent    float64 `gorm:"not null" json:"diff_percent"`
	Action         string  `gorm:"not null" json:"action"`
	Amount         int64   `gorm:"type:bigint;not null" json:"amount"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (a *RebalanceActionRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New()
	}
	return nil
}
