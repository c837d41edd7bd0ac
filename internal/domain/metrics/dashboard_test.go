package metrics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
	"github.com/jhoicas/Drogueria-api/internal/domain/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// Instante fijo para que los cortes de día/mes/año sean deterministas:
// 15 de marzo de 2026, mediodía.
var fixedNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testProduct(id string, stock, minStock int) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          "Producto " + id,
		CurrentStock:  stock,
		MinStockLevel: minStock,
	}
}

func testSale(id, final string, createdAt time.Time, items ...entity.SaleItem) *entity.Sale {
	return &entity.Sale{
		ID:          id,
		ClientID:    "cliente-1",
		FinalAmount: dec(final),
		CreatedAt:   createdAt,
		Items:       items,
	}
}

func testItem(productID, name string, qty int, unitPrice string) entity.SaleItem {
	up := dec(unitPrice)
	return entity.SaleItem{
		ProductID:   productID,
		ProductName: name,
		Quantity:    qty,
		UnitPrice:   up,
		TotalPrice:  up.Mul(decimal.NewFromInt(int64(qty))),
	}
}

// assertDecimal compara decimales por valor (no por representación interna).
func assertDecimal(t *testing.T, expected string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, dec(expected).Equal(got), "%s: esperaba %s, obtuvo %s", msg, expected, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_ColeccionesVacias_ProduceCeros(t *testing.T) {
	out := metrics.Dashboard(nil, nil, nil, fixedNow)

	assert.Equal(t, 0, out.TotalProducts)
	assert.Equal(t, 0, out.TotalClients)
	assert.Equal(t, 0, out.LowStockProducts)
	assertDecimal(t, "0", out.TotalSales, "TotalSales")
	assertDecimal(t, "0", out.TodaySales, "TodaySales")
	assertDecimal(t, "0", out.AvgDailySales, "AvgDailySales")
	assertDecimal(t, "0", out.AvgMonthlySales, "AvgMonthlySales")
	assertDecimal(t, "0", out.AvgYearlySales, "AvgYearlySales")
	assert.Empty(t, out.RecentSales)
	assert.Empty(t, out.TopProducts)
}

func TestDashboard_LowStock_EsMenorOIgualAlMinimo(t *testing.T) {
	products := []*entity.Product{
		testProduct("p1", 0, 5),  // bajo
		testProduct("p2", 5, 5),  // igual al mínimo: también bajo
		testProduct("p3", 6, 5),  // por encima: no
		testProduct("p4", -2, 0), // negativo: bajo
	}

	out := metrics.Dashboard(products, nil, nil, fixedNow)

	assert.Equal(t, 4, out.TotalProducts)
	assert.Equal(t, 3, out.LowStockProducts,
		"stock igual al mínimo cuenta como bajo; solo p3 queda fuera")
}

func TestDashboard_CortesDeHoyMesYAno(t *testing.T) {
	sales := []*entity.Sale{
		testSale("v1", "100.00", fixedNow),                                                       // hoy
		testSale("v2", "50.00", time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)),           // medianoche de hoy: incluida
		testSale("v3", "30.00", time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)),            // mes en curso, no hoy
		testSale("v4", "20.00", time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)),         // año en curso, otro mes
		testSale("v5", "999.00", time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)),     // año anterior
	}

	out := metrics.Dashboard(nil, nil, sales, fixedNow)

	assertDecimal(t, "1199.00", out.TotalSales, "histórico completo")
	assertDecimal(t, "150.00", out.TodaySales, "solo las de hoy")
	// Mes en curso: 100 + 50 + 30 = 180, dividido por el día del mes (15).
	assertDecimal(t, "12", out.AvgDailySales, "promedio diario del mes")
	// Año en curso: 180 + 20 = 200, marzo divide por 3 meses.
	assertDecimal(t, "200", out.AvgYearlySales, "acumulado del año, sin proyección")
	avgMonthly := dec("200").Div(dec("3"))
	assert.True(t, avgMonthly.Equal(out.AvgMonthlySales),
		"promedio mensual: 200/3, obtuvo %s", out.AvgMonthlySales)
}

func TestDashboard_EnEnero_PromedioMensualEsLaSumaAnual(t *testing.T) {
	enero := time.Date(2026, time.January, 20, 10, 0, 0, 0, time.UTC)
	sales := []*entity.Sale{
		testSale("v1", "40.00", time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)),
		testSale("v2", "60.00", time.Date(2026, time.January, 18, 0, 0, 0, 0, time.UTC)),
	}

	out := metrics.Dashboard(nil, nil, sales, enero)

	assertDecimal(t, "100.00", out.AvgMonthlySales,
		"en enero el promedio mensual es la suma del año sin dividir")
	assertDecimal(t, "100.00", out.AvgYearlySales, "acumulado del año")
}

func TestDashboard_TotalSales_NoDependeDelOrden(t *testing.T) {
	sales := []*entity.Sale{
		testSale("v1", "10.50", fixedNow.AddDate(0, -2, 0)),
		testSale("v2", "20.25", fixedNow.AddDate(-1, 0, 0)),
		testSale("v3", "5.00", fixedNow),
	}
	reversed := []*entity.Sale{sales[2], sales[1], sales[0]}

	a := metrics.Dashboard(nil, nil, sales, fixedNow)
	b := metrics.Dashboard(nil, nil, reversed, fixedNow)

	assert.True(t, a.TotalSales.Equal(b.TotalSales))
	assertDecimal(t, "35.75", a.TotalSales, "suma total")
}

func TestDashboard_RecentSales_MaximoCincoDescendente(t *testing.T) {
	var sales []*entity.Sale
	for i := 0; i < 8; i++ {
		sales = append(sales, testSale(
			fmt.Sprintf("v%d", i), "10.00", fixedNow.Add(-time.Duration(i)*time.Hour)))
	}

	out := metrics.Dashboard(nil, nil, sales, fixedNow)

	require.Len(t, out.RecentSales, 5)
	for i := 1; i < len(out.RecentSales); i++ {
		assert.False(t, out.RecentSales[i].CreatedAt.After(out.RecentSales[i-1].CreatedAt),
			"las ventas recientes deben venir de más nueva a más vieja")
	}
	assert.Equal(t, "v0", out.RecentSales[0].ID, "la más reciente primero")

	// La colección de entrada no se reordena.
	assert.Equal(t, "v0", sales[0].ID)
	assert.Equal(t, "v7", sales[7].ID)
}

func TestDashboard_TopProducts_PorCantidadConNombreUltimoVisto(t *testing.T) {
	sales := []*entity.Sale{
		testSale("v1", "0", fixedNow,
			testItem("pA", "Acetaminofén", 3, "10.00"),
			testItem("pB", "Ibuprofeno", 5, "8.00"),
		),
		testSale("v2", "0", fixedNow,
			testItem("pA", "Acetaminofén 500mg", 4, "10.00"), // nombre más reciente
			testItem("pC", "Loratadina", 1, "6.00"),
		),
	}

	out := metrics.Dashboard(nil, nil, sales, fixedNow)

	require.Len(t, out.TopProducts, 3)
	assert.Equal(t, "pA", out.TopProducts[0].ProductID, "pA suma 7 unidades")
	assert.Equal(t, 7, out.TopProducts[0].QuantitySold)
	assert.Equal(t, "Acetaminofén 500mg", out.TopProducts[0].ProductName,
		"el nombre es el último visto entre los ítems")
	assertDecimal(t, "70.00", out.TopProducts[0].Revenue, "ingreso de pA")
	assert.Equal(t, "pB", out.TopProducts[1].ProductID)
	assert.Equal(t, "pC", out.TopProducts[2].ProductID)
}

func TestDashboard_TopProducts_RecortaACinco(t *testing.T) {
	sale := testSale("v1", "0", fixedNow)
	for i := 0; i < 9; i++ {
		sale.Items = append(sale.Items, testItem(fmt.Sprintf("p%d", i), "X", i+1, "1.00"))
	}

	out := metrics.Dashboard(nil, nil, []*entity.Sale{sale}, fixedNow)

	require.Len(t, out.TopProducts, 5)
	assert.Equal(t, 9, out.TopProducts[0].QuantitySold, "mayor cantidad primero")
	assert.Equal(t, 5, out.TopProducts[4].QuantitySold)
}

func TestDashboard_EsIdempotente(t *testing.T) {
	products := []*entity.Product{testProduct("p1", 2, 5)}
	sales := []*entity.Sale{
		testSale("v1", "10.00", fixedNow, testItem("p1", "X", 2, "5.00")),
		testSale("v2", "25.00", fixedNow.AddDate(0, 0, -3), testItem("p1", "X", 1, "25.00")),
	}

	a := metrics.Dashboard(products, nil, sales, fixedNow)
	b := metrics.Dashboard(products, nil, sales, fixedNow)

	assert.Equal(t, a.TotalProducts, b.TotalProducts)
	assert.True(t, a.TotalSales.Equal(b.TotalSales))
	assert.True(t, a.AvgMonthlySales.Equal(b.AvgMonthlySales))
	require.Equal(t, len(a.TopProducts), len(b.TopProducts))
	for i := range a.TopProducts {
		assert.Equal(t, a.TopProducts[i].ProductID, b.TopProducts[i].ProductID,
			"el orden del top debe ser estable entre ejecuciones")
	}
}
