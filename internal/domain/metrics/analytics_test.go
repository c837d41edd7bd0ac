package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
	"github.com/jhoicas/Drogueria-api/internal/domain/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests ValidPeriod
// ──────────────────────────────────────────────────────────────────────────────

func TestValidPeriod_SoloPeriodosSoportados(t *testing.T) {
	for _, p := range []int{7, 30, 90, 365} {
		assert.True(t, metrics.ValidPeriod(p), "período %d debe ser válido", p)
	}
	for _, p := range []int{0, -7, 1, 14, 60, 180, 366} {
		assert.False(t, metrics.ValidPeriod(p), "período %d no es soportado", p)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Analytics
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalytics_SinVentas_ProduceCeros(t *testing.T) {
	out := metrics.Analytics(nil, nil, nil, 30, fixedNow)

	assert.Equal(t, 30, out.PeriodDays)
	assert.Equal(t, 0, out.TotalOrders)
	assertDecimal(t, "0", out.TotalRevenue, "TotalRevenue")
	assertDecimal(t, "0", out.AvgSaleValue, "AvgSaleValue sin ventas no divide por cero")
	assertDecimal(t, "0", out.AvgDailyRevenue, "AvgDailyRevenue")
	assert.Empty(t, out.TopProducts)
	assert.Empty(t, out.TopClients)
	assert.Empty(t, out.MonthlyTrend)
}

func TestAnalytics_FiltraVentasFueraDelPeriodo(t *testing.T) {
	sales := []*entity.Sale{
		testSale("dentro-1", "10.00", fixedNow.AddDate(0, 0, -5)),
		testSale("dentro-2", "20.00", fixedNow.AddDate(0, 0, -29)),
		testSale("borde", "40.00", fixedNow.AddDate(0, 0, -30)), // exactamente el inicio: incluida
		testSale("vieja", "999.00", fixedNow.AddDate(0, 0, -31)),
		testSale("futura", "888.00", fixedNow.Add(time.Hour)),
	}

	out := metrics.Analytics(nil, nil, sales, 30, fixedNow)

	assert.Equal(t, 3, out.TotalOrders, "viejas y futuras quedan fuera")
	assertDecimal(t, "70.00", out.TotalRevenue, "solo las del período")
}

func TestAnalytics_ExtrapolacionesLineales(t *testing.T) {
	// 300 de ingreso en 30 días → diario 10, semanal 70, mensual 300, anual 3650.
	sales := []*entity.Sale{
		testSale("v1", "100.00", fixedNow.AddDate(0, 0, -1)),
		testSale("v2", "200.00", fixedNow.AddDate(0, 0, -10)),
	}

	out := metrics.Analytics(nil, nil, sales, 30, fixedNow)

	assertDecimal(t, "10", out.AvgDailyRevenue, "diario")
	assertDecimal(t, "70", out.AvgWeeklyRevenue, "semanal = diario x7")
	assertDecimal(t, "300", out.AvgMonthlyRevenue, "mensual = diario x30")
	assertDecimal(t, "3650", out.AvgYearlyRevenue, "anual = diario x365")
	assertDecimal(t, "150", out.AvgSaleValue, "ticket promedio = total/órdenes")
}

func TestAnalytics_TopProducts_PorIngresoConUtilidad(t *testing.T) {
	products := []*entity.Product{
		{ID: "pA", Name: "Acetaminofén", UnitPrice: dec("6.00"), SellingPrice: dec("10.00")},
		{ID: "pB", Name: "Ibuprofeno", UnitPrice: dec("3.00"), SellingPrice: dec("5.00")},
	}
	sales := []*entity.Sale{
		testSale("v1", "0", fixedNow.AddDate(0, 0, -1),
			testItem("pA", "Acetaminofén", 2, "10.00"), // ingreso 20, utilidad (10-6)x2 = 8
			testItem("pB", "Ibuprofeno", 10, "5.00"),   // ingreso 50, utilidad (5-3)x10 = 20
		),
		testSale("v2", "0", fixedNow.AddDate(0, 0, -2),
			testItem("pX", "Eliminado", 4, "9.00"), // ingreso 36, producto fuera del catálogo
		),
	}

	out := metrics.Analytics(products, nil, sales, 30, fixedNow)

	require.Len(t, out.TopProducts, 3)
	assert.Equal(t, "pB", out.TopProducts[0].ProductID, "mayor ingreso primero")
	assertDecimal(t, "50.00", out.TopProducts[0].Revenue, "ingreso pB")
	assertDecimal(t, "20.00", out.TopProducts[0].Profit, "utilidad pB")
	assert.Equal(t, "pX", out.TopProducts[1].ProductID)
	assertDecimal(t, "0", out.TopProducts[1].Profit,
		"producto eliminado del catálogo aporta utilidad cero")
	assertDecimal(t, "8.00", out.TopProducts[2].Profit, "utilidad pA")
}

func TestAnalytics_TopClients_NombreVivoYTicketPromedio(t *testing.T) {
	clients := []*entity.Client{
		{ID: "c1", Name: "María Renombrada"},
	}
	s1 := testSale("v1", "30.00", fixedNow.AddDate(0, 0, -1))
	s1.ClientID, s1.ClientName = "c1", "María"
	s2 := testSale("v2", "50.00", fixedNow.AddDate(0, 0, -2))
	s2.ClientID, s2.ClientName = "c1", "María"
	s3 := testSale("v3", "10.00", fixedNow.AddDate(0, 0, -3))
	s3.ClientID, s3.ClientName = "c2", "Cliente Borrado"

	out := metrics.Analytics(nil, clients, []*entity.Sale{s1, s2, s3}, 30, fixedNow)

	require.Len(t, out.TopClients, 2)
	top := out.TopClients[0]
	assert.Equal(t, "c1", top.ClientID)
	assert.Equal(t, "María Renombrada", top.ClientName,
		"si el cliente existe, el nombre sale del registro actual")
	assert.Equal(t, 2, top.Orders)
	assertDecimal(t, "80.00", top.Revenue, "ingreso c1")
	assertDecimal(t, "40", top.AvgOrder, "ticket promedio c1")

	assert.Equal(t, "Cliente Borrado", out.TopClients[1].ClientName,
		"cliente inexistente conserva el nombre guardado en la venta")
}

func TestAnalytics_MonthlyTrend_AscendentePorMes(t *testing.T) {
	sales := []*entity.Sale{
		testSale("v1", "10.00", time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)),
		testSale("v2", "20.00", time.Date(2026, time.January, 20, 0, 0, 0, 0, time.UTC)),
		testSale("v3", "5.00", time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)),
		testSale("v4", "7.00", time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)),
	}

	out := metrics.Analytics(nil, nil, sales, 90, fixedNow)

	require.Len(t, out.MonthlyTrend, 3)
	assert.Equal(t, "2026-01", out.MonthlyTrend[0].Month)
	assert.Equal(t, "2026-02", out.MonthlyTrend[1].Month)
	assert.Equal(t, "2026-03", out.MonthlyTrend[2].Month)
	assertDecimal(t, "12.00", out.MonthlyTrend[1].Revenue, "febrero agrupa sus dos ventas")
	assert.Equal(t, 2, out.MonthlyTrend[1].Orders)
}

func TestAnalytics_EsIdempotente(t *testing.T) {
	sales := []*entity.Sale{
		testSale("v1", "10.00", fixedNow.AddDate(0, 0, -1), testItem("pA", "X", 1, "10.00")),
		testSale("v2", "10.00", fixedNow.AddDate(0, 0, -2), testItem("pB", "Y", 1, "10.00")),
	}

	a := metrics.Analytics(nil, nil, sales, 7, fixedNow)
	b := metrics.Analytics(nil, nil, sales, 7, fixedNow)

	assert.True(t, a.TotalRevenue.Equal(b.TotalRevenue))
	require.Equal(t, len(a.TopProducts), len(b.TopProducts))
	for i := range a.TopProducts {
		assert.Equal(t, a.TopProducts[i].ProductID, b.TopProducts[i].ProductID,
			"empates por ingreso deben resolverse igual en cada ejecución")
	}
}

// La ganancia usa el costo actual del catálogo, no el histórico: subir el costo
// después de vender cambia la utilidad reportada.
func TestAnalytics_UtilidadUsaCostoActual(t *testing.T) {
	product := &entity.Product{ID: "pA", Name: "X", UnitPrice: dec("4.00")}
	sales := []*entity.Sale{
		testSale("v1", "0", fixedNow.AddDate(0, 0, -1), testItem("pA", "X", 1, "10.00")),
	}

	antes := metrics.Analytics([]*entity.Product{product}, nil, sales, 30, fixedNow)
	assertDecimal(t, "6.00", antes.TopProducts[0].Profit, "10 - 4")

	product.UnitPrice = dec("9.00")
	despues := metrics.Analytics([]*entity.Product{product}, nil, sales, 30, fixedNow)
	assertDecimal(t, "1.00", despues.TopProducts[0].Profit, "10 - 9")
}
