package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Drogueria-api/internal/domain/entity"
)

const (
	analyticsTopProducts = 10
	analyticsTopClients  = 10
)

// Períodos de analítica soportados, en días hacia atrás desde "now".
var analyticsPeriods = [...]int{7, 30, 90, 365}

// ValidPeriod indica si el período pertenece a los soportados (7/30/90/365).
func ValidPeriod(days int) bool {
	for _, p := range analyticsPeriods {
		if days == p {
			return true
		}
	}
	return false
}

// ProductPerformance agregado por producto dentro del período.
// Profit suma (precio de venta del ítem - costo actual del producto) por unidad;
// si el producto ya no existe en el catálogo, su aporte de utilidad es 0.
type ProductPerformance struct {
	ProductID   string
	ProductName string
	Quantity    int
	Revenue     decimal.Decimal
	Profit      decimal.Decimal
}

// ClientPerformance agregado por cliente dentro del período.
type ClientPerformance struct {
	ClientID   string
	ClientName string
	Orders     int
	Revenue    decimal.Decimal
	AvgOrder   decimal.Decimal
}

// MonthlyTrend ingresos y número de ventas de un mes calendario ("YYYY-MM").
type MonthlyTrend struct {
	Month   string
	Revenue decimal.Decimal
	Orders  int
}

// AnalyticsReport agregados del período seleccionado.
// Los promedios semanal/mensual/anual son extrapolaciones lineales del diario
// (x7, x30, x365), no cálculos por calendario.
type AnalyticsReport struct {
	PeriodDays        int
	TotalRevenue      decimal.Decimal
	TotalOrders       int
	AvgSaleValue      decimal.Decimal
	AvgDailyRevenue   decimal.Decimal
	AvgWeeklyRevenue  decimal.Decimal
	AvgMonthlyRevenue decimal.Decimal
	AvgYearlyRevenue  decimal.Decimal
	TopProducts       []ProductPerformance
	TopClients        []ClientPerformance
	MonthlyTrend      []MonthlyTrend
}

// Analytics agrega las ventas del período [now - periodDays, now].
// Colecciones vacías producen ceros y listas vacías, nunca error.
func Analytics(products []*entity.Product, clients []*entity.Client, sales []*entity.Sale, periodDays int, now time.Time) AnalyticsReport {
	start := now.AddDate(0, 0, -periodDays)

	filtered := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		if !s.CreatedAt.Before(start) && !s.CreatedAt.After(now) {
			filtered = append(filtered, s)
		}
	}

	var totalRevenue decimal.Decimal
	for _, s := range filtered {
		totalRevenue = totalRevenue.Add(s.FinalAmount)
	}

	avgSale := decimal.Zero
	if len(filtered) > 0 {
		avgSale = totalRevenue.Div(decimal.NewFromInt(int64(len(filtered))))
	}

	daysInRange := int(math.Ceil(now.Sub(start).Hours() / 24))
	if daysInRange < 1 {
		daysInRange = 1
	}
	avgDaily := totalRevenue.Div(decimal.NewFromInt(int64(daysInRange)))

	return AnalyticsReport{
		PeriodDays:        periodDays,
		TotalRevenue:      totalRevenue,
		TotalOrders:       len(filtered),
		AvgSaleValue:      avgSale,
		AvgDailyRevenue:   avgDaily,
		AvgWeeklyRevenue:  avgDaily.Mul(decimal.NewFromInt(7)),
		AvgMonthlyRevenue: avgDaily.Mul(decimal.NewFromInt(30)),
		AvgYearlyRevenue:  avgDaily.Mul(decimal.NewFromInt(365)),
		TopProducts:       topProductPerformance(products, filtered, analyticsTopProducts),
		TopClients:        topClientPerformance(clients, filtered, analyticsTopClients),
		MonthlyTrend:      monthlyTrend(filtered),
	}
}

// topProductPerformance agrupa los ítems del período por producto y devuelve
// los n de mayor ingreso, con utilidad calculada contra el costo actual.
func topProductPerformance(products []*entity.Product, sales []*entity.Sale, n int) []ProductPerformance {
	productsByID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	acc := make(map[string]*ProductPerformance)
	for _, s := range sales {
		for _, it := range s.Items {
			pp, ok := acc[it.ProductID]
			if !ok {
				pp = &ProductPerformance{ProductID: it.ProductID}
				acc[it.ProductID] = pp
			}
			pp.ProductName = it.ProductName
			pp.Quantity += it.Quantity
			pp.Revenue = pp.Revenue.Add(it.TotalPrice)
			if p, ok := productsByID[it.ProductID]; ok {
				qty := decimal.NewFromInt(int64(it.Quantity))
				pp.Profit = pp.Profit.Add(it.UnitPrice.Sub(p.UnitPrice).Mul(qty))
			}
		}
	}

	list := make([]ProductPerformance, 0, len(acc))
	for _, pp := range acc {
		list = append(list, *pp)
	}
	sort.Slice(list, func(i, j int) bool {
		if cmp := list[i].Revenue.Cmp(list[j].Revenue); cmp != 0 {
			return cmp > 0
		}
		return list[i].ProductID < list[j].ProductID
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// topClientPerformance agrupa las ventas del período por cliente y devuelve
// los n de mayor ingreso. El nombre se toma del catálogo de clientes si el
// cliente aún existe; si no, del snapshot guardado en la venta.
func topClientPerformance(clients []*entity.Client, sales []*entity.Sale, n int) []ClientPerformance {
	clientsByID := make(map[string]*entity.Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ID] = c
	}

	acc := make(map[string]*ClientPerformance)
	for _, s := range sales {
		cp, ok := acc[s.ClientID]
		if !ok {
			cp = &ClientPerformance{ClientID: s.ClientID}
			acc[s.ClientID] = cp
		}
		cp.ClientName = s.ClientName
		if c, ok := clientsByID[s.ClientID]; ok {
			cp.ClientName = c.Name
		}
		cp.Orders++
		cp.Revenue = cp.Revenue.Add(s.FinalAmount)
		cp.AvgOrder = cp.Revenue.Div(decimal.NewFromInt(int64(cp.Orders)))
	}

	list := make([]ClientPerformance, 0, len(acc))
	for _, cp := range acc {
		list = append(list, *cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if cmp := list[i].Revenue.Cmp(list[j].Revenue); cmp != 0 {
			return cmp > 0
		}
		return list[i].ClientID < list[j].ClientID
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}

// monthlyTrend agrupa las ventas filtradas por mes calendario, en orden
// ascendente. El formato "2006-01" hace que el orden lexicográfico coincida
// con el cronológico.
func monthlyTrend(sales []*entity.Sale) []MonthlyTrend {
	acc := make(map[string]*MonthlyTrend)
	for _, s := range sales {
		month := s.CreatedAt.Format("2006-01")
		mt, ok := acc[month]
		if !ok {
			mt = &MonthlyTrend{Month: month}
			acc[month] = mt
		}
		mt.Revenue = mt.Revenue.Add(s.FinalAmount)
		mt.Orders++
	}

	list := make([]MonthlyTrend, 0, len(acc))
	for _, mt := range acc {
		list = append(list, *mt)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Month < list[j].Month })
	return list
}
