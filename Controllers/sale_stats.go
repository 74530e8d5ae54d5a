package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SaleStatsController serves the dashboard aggregation endpoints.
type SaleStatsController struct {
	DB *gorm.DB
}

func NewSaleStatsController(db *gorm.DB) *SaleStatsController {
	return &SaleStatsController{DB: db}
}

// tenantSales scopes a sales query to the caller, narrowing non-admins to
// their own sales.
func (sc *SaleStatsController) tenantSales(user Models.User) *gorm.DB {
	query := sc.DB.Model(&Models.Sale{}).Where("company_id = ?", user.CompanyID)
	if !user.IsAdmin() {
		query = query.Where("seller_id = ?", user.ID)
	}
	return query
}

// GetSalesTotal returns the revenue total (sale price basis).
// GET /api/sales/total
func (sc *SaleStatsController) GetSalesTotal(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var total float64
	if err := sc.tenantSales(user).Select("COALESCE(SUM(sale_price), 0)").Scan(&total).Error; err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(fiber.Map{
		"total_sales": total,
		"basis":       "salePrice",
	})
}

type StatusStat struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Total  float64 `json:"total"`
}

// GetSalesStats returns count and cost sum per status. Every status appears
// even with zero sales.
// GET /api/sales/stats
func (sc *SaleStatsController) GetSalesStats(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var rows []StatusStat
	err := sc.tenantSales(user).
		Select("status, COUNT(*) as count, COALESCE(SUM(total_cost), 0) as total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return httperr.Internal(err)
	}

	byStatus := make(map[string]StatusStat, len(rows))
	for _, row := range rows {
		byStatus[row.Status] = row
	}

	stats := make([]StatusStat, 0, len(Models.SaleStatuses))
	for _, status := range Models.SaleStatuses {
		if row, ok := byStatus[status]; ok {
			stats = append(stats, row)
		} else {
			stats = append(stats, StatusStat{Status: status})
		}
	}

	return c.JSON(stats)
}

type DimensionStat struct {
	Value string  `json:"value"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

func (sc *SaleStatsController) groupByDimension(user Models.User, column string) ([]DimensionStat, error) {
	var rows []DimensionStat
	err := sc.tenantSales(user).
		Select(column + " as value, COUNT(*) as count, COALESCE(SUM(total_cost), 0) as total").
		Group(column).
		Scan(&rows).Error
	return rows, err
}

// GetSalesStatsByType returns three independent groupings: by sale type, by
// service type and by region.
// GET /api/sales/stats-by-type
func (sc *SaleStatsController) GetSalesStatsByType(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	byType, err := sc.groupByDimension(user, "sale_type")
	if err != nil {
		return httperr.Internal(err)
	}
	byService, err := sc.groupByDimension(user, "service_type")
	if err != nil {
		return httperr.Internal(err)
	}
	byRegion, err := sc.groupByDimension(user, "region")
	if err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(fiber.Map{
		"by_sale_type":    byType,
		"by_service_type": byService,
		"by_region":       byRegion,
	})
}

// GetUpcomingDepartures lists confirmed or completed sales departing within
// the next 30 days, closest first, capped at 10.
// GET /api/sales/upcoming-departures
func (sc *SaleStatsController) GetUpcomingDepartures(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	// Travel dates are stored as UTC midnight, so the window is built in UTC
	// to keep the boundaries exact regardless of server timezone.
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, 30)

	var sales []Models.Sale
	err := sc.tenantSales(user).
		Preload("Client").
		Preload("Seller").
		Where("travel_date BETWEEN ? AND ?", today, horizon).
		Where("status IN ?", []string{Models.SaleStatusConfirmed, Models.SaleStatusCompleted}).
		Order("travel_date ASC").
		Limit(10).
		Find(&sales).Error
	if err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(sales)
}

type DailyStat struct {
	Date  string  `json:"date"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// buildDailyOverview buckets sales by creation day over the trailing seven
// days ending at end, zero-filling empty days. Always exactly 7 entries in
// chronological order.
func buildDailyOverview(sales []Models.Sale, end time.Time) []DailyStat {
	overview := make([]DailyStat, 0, 7)
	byDay := make(map[string]*DailyStat, 7)

	for i := 6; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format("2006-01-02")
		overview = append(overview, DailyStat{Date: day})
		byDay[day] = &overview[len(overview)-1]
	}

	for _, sale := range sales {
		day := sale.CreationDate.Format("2006-01-02")
		if stat, ok := byDay[day]; ok {
			stat.Count++
			stat.Total += sale.TotalCost
		}
	}

	return overview
}

// GetSalesOverview returns the trailing-7-day chart series.
// GET /api/sales/sales-overview
func (sc *SaleStatsController) GetSalesOverview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -6)

	var sales []Models.Sale
	err := sc.tenantSales(user).
		Where("creation_date >= ? AND creation_date < ?", start, end.AddDate(0, 0, 1)).
		Find(&sales).Error
	if err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(buildDailyOverview(sales, end))
}
