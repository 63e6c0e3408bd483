package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-service/internal/model"
	"inventory-service/internal/report"
	"inventory-service/pkg/database"
	"inventory-service/pkg/logger"
	"inventory-service/prometheus"
)

// WeeklySalesRow is one hour-of-day slice of the weekly sales heatmap.
type WeeklySalesRow struct {
	Time string  `json:"time"`
	Mon  float64 `json:"mon"`
	Tue  float64 `json:"tue"`
	Wed  float64 `json:"wed"`
	Thu  float64 `json:"thu"`
	Fri  float64 `json:"fri"`
	Sat  float64 `json:"sat"`
	Sun  float64 `json:"sun"`
}

// SupplierPerformanceRow reports delivery punctuality percentages for one supplier.
type SupplierPerformanceRow struct {
	Name   string `json:"name"`
	Early  int    `json:"early"`
	OnTime int    `json:"onTime"`
	Late   int    `json:"late"`
}

// ReturnsReport aggregates product returns by month and reason over a date range
func ReturnsReport(c echo.Context) error {
	log := logger.FromEcho(c)

	startDate, err := time.Parse("2006-01-02", c.QueryParam("startDate"))
	if err != nil {
		log.Warn("Invalid startDate parameter", zap.String("startDate", c.QueryParam("startDate")))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "startDate must be an ISO date (YYYY-MM-DD)",
		})
	}
	endDate, err := time.Parse("2006-01-02", c.QueryParam("endDate"))
	if err != nil {
		log.Warn("Invalid endDate parameter", zap.String("endDate", c.QueryParam("endDate")))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "endDate must be an ISO date (YYYY-MM-DD)",
		})
	}
	// Make the end date inclusive of the whole day
	endDate = endDate.Add(24*time.Hour - time.Nanosecond)

	log.Info("Building returns report",
		zap.Time("start_date", startDate),
		zap.Time("end_date", endDate))

	var returns []model.ProductReturn
	result := database.GetDB().
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Find(&returns)
	if result.Error != nil {
		log.Error("Failed to query product returns", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build returns report",
		})
	}

	// Aggregate in-process rather than with SQL date functions so the
	// grouping behaves identically across database dialects.
	byMonth := make(map[string]*report.Row)
	for _, r := range returns {
		key := r.CreatedAt.Format("2006-01")
		row, ok := byMonth[key]
		if !ok {
			row = &report.Row{Month: r.CreatedAt.Format("Jan 2006")}
			byMonth[key] = row
		}
		switch r.Reason {
		case model.ReturnReasonLost:
			row.Lost += r.Quantity
		case model.ReturnReasonReturn:
			row.Return += r.Quantity
		case model.ReturnReasonRefund:
			row.Refund += r.Quantity
		case model.ReturnReasonOther:
			row.Other += r.Quantity
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]report.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, *byMonth[k])
	}

	prometheus.RecordReportExport("product_returns")
	log.Info("Returns report built", zap.Int("months", len(rows)))
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// heatmap hour range matches the store's opening hours
var heatmapHours = []int{9, 10, 11, 12, 13, 14, 15, 16}

// WeeklySales aggregates the past week's sales orders into an
// hour-of-day by day-of-week heatmap
func WeeklySales(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Building weekly sales heatmap")

	since := time.Now().AddDate(0, 0, -7)

	var orders []model.SalesOrder
	result := database.GetDB().
		Where("order_date >= ?", since).
		Find(&orders)
	if result.Error != nil {
		log.Error("Failed to query sales orders", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build weekly sales report",
		})
	}

	rows := make([]WeeklySalesRow, len(heatmapHours))
	index := make(map[int]*WeeklySalesRow, len(heatmapHours))
	for i, h := range heatmapHours {
		rows[i].Time = time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")
		index[h] = &rows[i]
	}

	for _, o := range orders {
		row, ok := index[o.OrderDate.Hour()]
		if !ok {
			continue
		}
		switch o.OrderDate.Weekday() {
		case time.Monday:
			row.Mon += o.TotalAmount
		case time.Tuesday:
			row.Tue += o.TotalAmount
		case time.Wednesday:
			row.Wed += o.TotalAmount
		case time.Thursday:
			row.Thu += o.TotalAmount
		case time.Friday:
			row.Fri += o.TotalAmount
		case time.Saturday:
			row.Sat += o.TotalAmount
		case time.Sunday:
			row.Sun += o.TotalAmount
		}
	}

	prometheus.RecordReportExport("weekly_sales")
	log.Info("Weekly sales heatmap built", zap.Int("orders", len(orders)))
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// SupplierPerformance reports delivery punctuality percentages per supplier
func SupplierPerformance(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Building supplier performance report")

	var suppliers []model.Supplier
	result := database.GetDB().
		Where("is_active = ?", true).
		Order("name").
		Find(&suppliers)
	if result.Error != nil {
		log.Error("Failed to query suppliers", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to build supplier performance report",
		})
	}

	rows := make([]SupplierPerformanceRow, 0, len(suppliers))
	for _, s := range suppliers {
		total := s.EarlyDeliveries + s.OnTimeDeliveries + s.LateDeliveries
		row := SupplierPerformanceRow{Name: s.Name}
		if total > 0 {
			row.Early = s.EarlyDeliveries * 100 / total
			row.Late = s.LateDeliveries * 100 / total
			// Remainder goes to on-time so the three always sum to 100
			row.OnTime = 100 - row.Early - row.Late
		}
		rows = append(rows, row)
	}

	prometheus.RecordReportExport("supplier_performance")
	log.Info("Supplier performance report built", zap.Int("suppliers", len(rows)))
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
