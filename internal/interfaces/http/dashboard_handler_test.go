package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Drogueria-api/internal/application/usecase"
	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Drogueria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (solo los listados que consume el dashboard)
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct{ list []*entity.Product }

func (r *stubProductRepo) Create(*entity.Product) error                { return nil }
func (r *stubProductRepo) GetByID(string) (*entity.Product, error)     { return nil, nil }
func (r *stubProductRepo) List() ([]*entity.Product, error)            { return r.list, nil }
func (r *stubProductRepo) Update(*entity.Product) error                { return nil }
func (r *stubProductRepo) UpdateStock(string, int) error               { return nil }
func (r *stubProductRepo) Delete(string) error                         { return nil }

type stubClientRepo struct{ list []*entity.Client }

func (r *stubClientRepo) Create(*entity.Client) error                  { return nil }
func (r *stubClientRepo) GetByID(string) (*entity.Client, error)       { return nil, nil }
func (r *stubClientRepo) GetByEmail(string) (*entity.Client, error)    { return nil, nil }
func (r *stubClientRepo) List() ([]*entity.Client, error)              { return r.list, nil }
func (r *stubClientRepo) Update(*entity.Client) error                  { return nil }
func (r *stubClientRepo) UpdatePurchases(string, decimal.Decimal, time.Time) error {
	return nil
}
func (r *stubClientRepo) Delete(string) error { return nil }

type stubSaleRepo struct{ list []*entity.Sale }

func (r *stubSaleRepo) Create(*entity.Sale) error            { return nil }
func (r *stubSaleRepo) GetByID(string) (*entity.Sale, error) { return nil, nil }
func (r *stubSaleRepo) List() ([]*entity.Sale, error)        { return r.list, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Tests DashboardHandler
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardHandler_ResumenConDatos(t *testing.T) {
	productRepo := &stubProductRepo{list: []*entity.Product{
		{ID: "p1", Name: "Acetaminofén", CurrentStock: 2, MinStockLevel: 5}, // bajo
		{ID: "p2", Name: "Ibuprofeno", CurrentStock: 20, MinStockLevel: 5},
	}}
	clientRepo := &stubClientRepo{list: []*entity.Client{{ID: "c1", Name: "María"}}}
	saleRepo := &stubSaleRepo{list: []*entity.Sale{
		{ID: "v1", ClientID: "c1", FinalAmount: decimal.NewFromInt(30), CreatedAt: time.Now()},
		{ID: "v2", ClientID: "c1", FinalAmount: decimal.NewFromInt(70), CreatedAt: time.Now().Add(-time.Hour)},
	}}

	uc := usecase.NewDashboardUseCase(productRepo, clientRepo, saleRepo)
	app := fiber.New()
	app.Get("/api/dashboard/summary", apphttp.NewDashboardHandler(uc).GetSummary)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		TotalProducts    int             `json:"total_products"`
		TotalClients     int             `json:"total_clients"`
		LowStockProducts int             `json:"low_stock_products"`
		TotalSales       decimal.Decimal `json:"total_sales"`
		TodaySales       decimal.Decimal `json:"today_sales"`
		RecentSales      []struct {
			ID string `json:"id"`
		} `json:"recent_sales"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 2, body.TotalProducts)
	assert.Equal(t, 1, body.TotalClients)
	assert.Equal(t, 1, body.LowStockProducts)
	assert.True(t, decimal.NewFromInt(100).Equal(body.TotalSales),
		"total histórico, obtuvo %s", body.TotalSales)
	require.Len(t, body.RecentSales, 2)
	assert.Equal(t, "v1", body.RecentSales[0].ID, "la venta más reciente primero")
}

func TestDashboardHandler_SinDatos_RespondeCeros(t *testing.T) {
	uc := usecase.NewDashboardUseCase(&stubProductRepo{}, &stubClientRepo{}, &stubSaleRepo{})
	app := fiber.New()
	app.Get("/api/dashboard/summary", apphttp.NewDashboardHandler(uc).GetSummary)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 0, body["total_products"])
	assert.Empty(t, body["recent_sales"])
	assert.Empty(t, body["top_products"])
}
