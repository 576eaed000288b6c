package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/services"
)

// --- mock asset service ---

type mockAssetService struct {
	addAssetFn    func(userID, portfolioID uint, ticker, name string, assetType models.AssetType, price, quantity int64) (*models.Asset, error)
	updateAssetFn func(userID, portfolioID, assetID uint, name string, price, quantity *int64) (*models.Asset, error)
	deleteAssetFn func(userID, portfolioID, assetID uint) error
	setRatingFn   func(userID, portfolioID, assetID uint, rating int) (*models.AssetRating, error)
}

func (m *mockAssetService) AddAsset(userID, portfolioID uint, ticker, name string, assetType models.AssetType, price, quantity int64) (*models.Asset, error) {
	if m.addAssetFn != nil {
		return m.addAssetFn(userID, portfolioID, ticker, name, assetType, price, quantity)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) UpdateAsset(userID, portfolioID, assetID uint, name string, price, quantity *int64) (*models.Asset, error) {
	if m.updateAssetFn != nil {
		return m.updateAssetFn(userID, portfolioID, assetID, name, price, quantity)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) DeleteAsset(userID, portfolioID, assetID uint) error {
	if m.deleteAssetFn != nil {
		return m.deleteAssetFn(userID, portfolioID, assetID)
	}
	return nil
}

func (m *mockAssetService) SetRating(userID, portfolioID, assetID uint, rating int) (*models.AssetRating, error) {
	if m.setRatingFn != nil {
		return m.setRatingFn(userID, portfolioID, assetID, rating)
	}
	return &models.AssetRating{}, nil
}

var _ services.AssetServicer = (*mockAssetService)(nil)

func setupAssetRouter(handler *AssetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/portfolios/:id/assets", handler.AddAsset)
	auth.PUT("/portfolios/:id/assets/:assetId", handler.UpdateAsset)
	auth.DELETE("/portfolios/:id/assets/:assetId", handler.DeleteAsset)
	auth.PUT("/portfolios/:id/assets/:assetId/rating", handler.SetRating)
	return r
}

func TestAssetHandler_AddAsset(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockAssetService{
			addAssetFn: func(_, portfolioID uint, ticker, name string, assetType models.AssetType, price, quantity int64) (*models.Asset, error) {
				return &models.Asset{
					Base:        models.Base{ID: 1},
					PortfolioID: portfolioID,
					Ticker:      ticker,
					Name:        name,
					Type:        assetType,
					Price:       price,
					Quantity:    quantity,
				}, nil
			},
		}
		handler := NewAssetHandler(svc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "POST", "/portfolios/1/assets",
			`{"ticker":"PETR4","name":"Petrobras PN","type":"stock","price":3800,"quantity":10}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		asset := result["asset"].(map[string]interface{})
		if asset["ticker"] != "PETR4" {
			t.Errorf("expected PETR4, got %v", asset["ticker"])
		}
	})

	t.Run("returns 400 on unknown asset type", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "POST", "/portfolios/1/assets",
			`{"ticker":"PETR4","name":"Petrobras","type":"crypto","price":3800,"quantity":10}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 409 on duplicate ticker", func(t *testing.T) {
		svc := &mockAssetService{
			addAssetFn: func(_, _ uint, _, _ string, _ models.AssetType, _, _ int64) (*models.Asset, error) {
				return nil, apperrors.ErrDuplicateTicker
			},
		}
		handler := NewAssetHandler(svc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "POST", "/portfolios/1/assets",
			`{"ticker":"PETR4","name":"Petrobras","type":"stock","price":3800,"quantity":10}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_TICKER")
	})
}

func TestAssetHandler_UpdateAsset(t *testing.T) {
	t.Run("passes nil for absent fields", func(t *testing.T) {
		var gotPrice, gotQuantity *int64
		svc := &mockAssetService{
			updateAssetFn: func(_, _, _ uint, _ string, price, quantity *int64) (*models.Asset, error) {
				gotPrice, gotQuantity = price, quantity
				return &models.Asset{}, nil
			},
		}
		handler := NewAssetHandler(svc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "PUT", "/portfolios/1/assets/2", `{"price":4200}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotPrice == nil || *gotPrice != 4200 {
			t.Errorf("expected price 4200, got %v", gotPrice)
		}
		if gotQuantity != nil {
			t.Errorf("expected nil quantity for absent field, got %v", *gotQuantity)
		}
	})

	t.Run("returns 404 on unknown asset", func(t *testing.T) {
		svc := &mockAssetService{
			updateAssetFn: func(_, _, _ uint, _ string, _, _ *int64) (*models.Asset, error) {
				return nil, apperrors.ErrAssetNotFound
			},
		}
		handler := NewAssetHandler(svc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "PUT", "/portfolios/1/assets/99", `{"price":4200}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestAssetHandler_DeleteAsset(t *testing.T) {
	handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
	r := setupAssetRouter(handler)

	rec := doRequest(r, "DELETE", "/portfolios/1/assets/2", "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAssetHandler_SetRating(t *testing.T) {
	t.Run("accepts rating zero", func(t *testing.T) {
		var gotRating int
		svc := &mockAssetService{
			setRatingFn: func(_, _, _ uint, rating int) (*models.AssetRating, error) {
				gotRating = rating
				return &models.AssetRating{Rating: rating}, nil
			},
		}
		handler := NewAssetHandler(svc, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "PUT", "/portfolios/1/assets/2/rating", `{"rating":0}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotRating != 0 {
			t.Errorf("expected rating 0 passed through, got %d", gotRating)
		}
	})

	t.Run("returns 400 on rating over 10", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "PUT", "/portfolios/1/assets/2/rating", `{"rating":11}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing rating", func(t *testing.T) {
		handler := NewAssetHandler(&mockAssetService{}, &mockAuditService{})
		r := setupAssetRouter(handler)

		rec := doRequest(r, "PUT", "/portfolios/1/assets/2/rating", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
