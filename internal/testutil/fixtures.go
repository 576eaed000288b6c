package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"carteira/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPortfolio creates an empty portfolio for a user.
func CreateTestPortfolio(t *testing.T, db *gorm.DB, userID uint) *models.Portfolio {
	t.Helper()

	portfolio := &models.Portfolio{
		UserID: userID,
		Name:   fmt.Sprintf("Test Portfolio %d", nextID()),
	}
	if err := db.Create(portfolio).Error; err != nil {
		t.Fatalf("failed to create test portfolio: %v", err)
	}
	return portfolio
}

// CreateTestAsset creates a holding with the given type, price (cents)
// and quantity.
func CreateTestAsset(t *testing.T, db *gorm.DB, portfolioID uint, assetType models.AssetType, price, quantity int64) *models.Asset {
	t.Helper()

	n := nextID()
	asset := &models.Asset{
		PortfolioID: portfolioID,
		Ticker:      fmt.Sprintf("TST%d", n),
		Name:        fmt.Sprintf("Test Asset %d", n),
		Type:        assetType,
		Price:       price,
		Quantity:    quantity,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestTarget creates an allocation target row directly,
// bypassing the sum-to-100 service check. Tests composing a full
// allocation call it once per class.
func CreateTestTarget(t *testing.T, db *gorm.DB, portfolioID uint, className string, percent float64) *models.AllocationTarget {
	t.Helper()

	target := &models.AllocationTarget{
		PortfolioID:   portfolioID,
		ClassName:     className,
		TargetPercent: percent,
	}
	if err := db.Create(target).Error; err != nil {
		t.Fatalf("failed to create test allocation target: %v", err)
	}
	return target
}

// CreateTestRating creates a rating row for an asset.
func CreateTestRating(t *testing.T, db *gorm.DB, portfolioID, assetID uint, rating int) *models.AssetRating {
	t.Helper()

	row := &models.AssetRating{
		PortfolioID: portfolioID,
		AssetID:     assetID,
		Rating:      rating,
	}
	if err := db.Create(row).Error; err != nil {
		t.Fatalf("failed to create test asset rating: %v", err)
	}
	return row
}
