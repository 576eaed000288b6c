package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/provider"
	"carteira/internal/services"
)

// --- mock price service ---

type mockPriceService struct {
	refreshPortfolioFn func(ctx context.Context, userID, portfolioID uint) (bool, error)
	refreshAllFn       func(ctx context.Context) (int, error)
	searchFn           func(ctx context.Context, query string) ([]provider.AssetInfo, error)
}

func (m *mockPriceService) RefreshPortfolio(ctx context.Context, userID, portfolioID uint) (bool, error) {
	if m.refreshPortfolioFn != nil {
		return m.refreshPortfolioFn(ctx, userID, portfolioID)
	}
	return false, nil
}

func (m *mockPriceService) RefreshAll(ctx context.Context) (int, error) {
	if m.refreshAllFn != nil {
		return m.refreshAllFn(ctx)
	}
	return 0, nil
}

func (m *mockPriceService) Search(ctx context.Context, query string) ([]provider.AssetInfo, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query)
	}
	return nil, nil
}

var _ services.PriceServicer = (*mockPriceService)(nil)

func setupPriceRouter(handler *PriceHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/portfolios/:id/prices/refresh", handler.RefreshPortfolio)
	auth.GET("/assets/search", handler.SearchAssets)
	r.POST("/pipeline/prices/refresh", handler.PipelineRefresh)
	return r
}

func TestPriceHandler_RefreshPortfolio(t *testing.T) {
	t.Run("reports whether prices changed", func(t *testing.T) {
		svc := &mockPriceService{
			refreshPortfolioFn: func(_ context.Context, _, _ uint) (bool, error) {
				return true, nil
			},
		}
		handler := NewPriceHandler(svc)
		r := setupPriceRouter(handler)

		rec := doRequest(r, "POST", "/portfolios/1/prices/refresh", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["changed"] != true {
			t.Errorf("expected changed true, got %v", result["changed"])
		}
	})

	t.Run("returns 502 when the provider is down", func(t *testing.T) {
		svc := &mockPriceService{
			refreshPortfolioFn: func(_ context.Context, _, _ uint) (bool, error) {
				return false, apperrors.ErrPriceUnavailable
			},
		}
		handler := NewPriceHandler(svc)
		r := setupPriceRouter(handler)

		rec := doRequest(r, "POST", "/portfolios/1/prices/refresh", "")

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "PRICE_UNAVAILABLE")
	})
}

func TestPriceHandler_SearchAssets(t *testing.T) {
	t.Run("returns provider matches", func(t *testing.T) {
		var gotQuery string
		svc := &mockPriceService{
			searchFn: func(_ context.Context, query string) ([]provider.AssetInfo, error) {
				gotQuery = query
				return []provider.AssetInfo{{Ticker: "PETR4", Name: "Petrobras PN"}}, nil
			},
		}
		handler := NewPriceHandler(svc)
		r := setupPriceRouter(handler)

		rec := doRequest(r, "GET", "/assets/search?q=petr", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotQuery != "petr" {
			t.Errorf("expected query petr, got %q", gotQuery)
		}
		result := parseJSON(t, rec)
		results := result["results"].([]interface{})
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
	})

	t.Run("returns 400 without a query", func(t *testing.T) {
		handler := NewPriceHandler(&mockPriceService{})
		r := setupPriceRouter(handler)

		rec := doRequest(r, "GET", "/assets/search", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPriceHandler_PipelineRefresh(t *testing.T) {
	svc := &mockPriceService{
		refreshAllFn: func(_ context.Context) (int, error) {
			return 3, nil
		},
	}
	handler := NewPriceHandler(svc)
	r := setupPriceRouter(handler)

	rec := doRequest(r, "POST", "/pipeline/prices/refresh", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["portfolios_changed"] != float64(3) {
		t.Errorf("expected 3 portfolios changed, got %v", result["portfolios_changed"])
	}
}
