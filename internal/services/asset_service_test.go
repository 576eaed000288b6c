package services

import (
	"testing"

	"carteira/internal/models"
	"carteira/internal/testutil"
)

func TestAddAsset(t *testing.T) {
	t.Run("success_updates_portfolio_value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		portfolios := NewPortfolioService(db)

		user := testutil.CreateTestUser(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, user.ID)

		asset, err := svc.AddAsset(user.ID, portfolio.ID, "petr4", "Petrobras PN", models.AssetTypeStock, 3800, 10)
		testutil.AssertNoError(t, err)

		if asset.Ticker != "PETR4" {
			t.Errorf("expected ticker normalized to PETR4, got %s", asset.Ticker)
		}

		got, _ := portfolios.GetPortfolioByID(user.ID, portfolio.ID)
		if got.Value != 38000 {
			t.Errorf("expected portfolio value 38000 after add, got %d", got.Value)
		}
	})

	t.Run("duplicate_ticker_in_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		user := testutil.CreateTestUser(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, user.ID)

		_, err := svc.AddAsset(user.ID, portfolio.ID, "PETR4", "Petrobras", models.AssetTypeStock, 3800, 10)
		testutil.AssertNoError(t, err)

		_, err = svc.AddAsset(user.ID, portfolio.ID, "PETR4", "Petrobras again", models.AssetTypeStock, 3800, 5)
		testutil.AssertAppError(t, err, "DUPLICATE_TICKER")
	})

	t.Run("same_ticker_other_portfolio_ok", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		user := testutil.CreateTestUser(t, db)
		first := testutil.CreateTestPortfolio(t, db, user.ID)
		second := testutil.CreateTestPortfolio(t, db, user.ID)

		_, err := svc.AddAsset(user.ID, first.ID, "PETR4", "Petrobras", models.AssetTypeStock, 3800, 10)
		testutil.AssertNoError(t, err)

		_, err = svc.AddAsset(user.ID, second.ID, "PETR4", "Petrobras", models.AssetTypeStock, 3800, 5)
		testutil.AssertNoError(t, err)
	})

	t.Run("unknown_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		user := testutil.CreateTestUser(t, db)
		_, err := svc.AddAsset(user.ID, 99999, "PETR4", "Petrobras", models.AssetTypeStock, 3800, 10)
		testutil.AssertAppError(t, err, "PORTFOLIO_NOT_FOUND")
	})
}

func TestUpdateAsset(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)
		portfolios := NewPortfolioService(db)

		user := testutil.CreateTestUser(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, user.ID)
		asset := testutil.CreateTestAsset(t, db, portfolio.ID, models.AssetTypeStock, 1000, 2)

		newPrice := int64(2000)
		updated, err := svc.UpdateAsset(user.ID, portfolio.ID, asset.ID, "", &newPrice, nil)
		testutil.AssertNoError(t, err)
		if updated.Price != 2000 {
			t.Errorf("expected price 2000, got %d", updated.Price)
		}
		if updated.Quantity != 2 {
			t.Errorf("quantity should be unchanged, got %d", updated.Quantity)
		}

		got, _ := portfolios.GetPortfolioByID(user.ID, portfolio.ID)
		if got.Value != 4000 {
			t.Errorf("expected recomputed value 4000, got %d", got.Value)
		}
	})

	t.Run("negative_price_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		user := testutil.CreateTestUser(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, user.ID)
		asset := testutil.CreateTestAsset(t, db, portfolio.ID, models.AssetTypeStock, 1000, 2)

		bad := int64(-1)
		_, err := svc.UpdateAsset(user.ID, portfolio.ID, asset.ID, "", &bad, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown_asset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		user := testutil.CreateTestUser(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, user.ID)

		_, err := svc.UpdateAsset(user.ID, portfolio.ID, 99999, "Nome", nil, nil)
		testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	})
}

func TestDeleteAsset(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetService(db)
	portfolios := NewPortfolioService(db)

	user := testutil.CreateTestUser(t, db)
	portfolio := testutil.CreateTestPortfolio(t, db, user.ID)
	asset := testutil.CreateTestAsset(t, db, portfolio.ID, models.AssetTypeStock, 1000, 2)
	testutil.CreateTestRating(t, db, portfolio.ID, asset.ID, 8)

	err := svc.DeleteAsset(user.ID, portfolio.ID, asset.ID)
	testutil.AssertNoError(t, err)

	var ratings int64
	db.Model(&models.AssetRating{}).Where("asset_id = ?", asset.ID).Count(&ratings)
	if ratings != 0 {
		t.Errorf("expected rating removed with asset, found %d", ratings)
	}

	got, _ := portfolios.GetPortfolioByID(user.ID, portfolio.ID)
	if got.Value != 0 {
		t.Errorf("expected value 0 after delete, got %d", got.Value)
	}

	// The ticker must be free for re-use after deletion.
	readded, err := svc.AddAsset(user.ID, portfolio.ID, asset.Ticker, asset.Name, asset.Type, 1000, 1)
	testutil.AssertNoError(t, err)
	if readded.Ticker != asset.Ticker {
		t.Errorf("expected re-added ticker %s, got %s", asset.Ticker, readded.Ticker)
	}
}

func TestSetRating(t *testing.T) {
	t.Run("create_then_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		user := testutil.CreateTestUser(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, user.ID)
		asset := testutil.CreateTestAsset(t, db, portfolio.ID, models.AssetTypeStock, 1000, 2)

		row, err := svc.SetRating(user.ID, portfolio.ID, asset.ID, 8)
		testutil.AssertNoError(t, err)
		if row.Rating != 8 {
			t.Errorf("expected rating 8, got %d", row.Rating)
		}

		row, err = svc.SetRating(user.ID, portfolio.ID, asset.ID, 3)
		testutil.AssertNoError(t, err)
		if row.Rating != 3 {
			t.Errorf("expected rating 3, got %d", row.Rating)
		}

		var count int64
		db.Model(&models.AssetRating{}).Where("asset_id = ?", asset.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected single rating row after upsert, got %d", count)
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetService(db)

		user := testutil.CreateTestUser(t, db)
		portfolio := testutil.CreateTestPortfolio(t, db, user.ID)
		asset := testutil.CreateTestAsset(t, db, portfolio.ID, models.AssetTypeStock, 1000, 2)

		_, err := svc.SetRating(user.ID, portfolio.ID, asset.ID, 11)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
