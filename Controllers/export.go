package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportController generates the downloadable sales report.
type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// ExportSales writes every tenant sale to an xlsx sheet, one row per sale,
// with totals converted to USD through the company's active rates.
// GET /api/sales/export
func (ec *ExportController) ExportSales(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var sales []Models.Sale
	err := ec.DB.Where("company_id = ?", user.CompanyID).
		Preload("Client").
		Preload("Seller").
		Order("creation_date DESC").
		Find(&sales).Error
	if err != nil {
		return httperr.Internal(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sales"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{
		"ID", "Passenger", "Client", "Seller", "Travel Date", "Created",
		"Type", "Region", "Service", "Status", "Currency",
		"Total Cost", "Sale Price", "Sale Price (USD)",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return httperr.Internal(err)
	}

	for i, sale := range sales {
		row := []interface{}{
			sale.ID,
			sale.PassengerName,
			sale.Client.Name,
			sale.Seller.Username,
			sale.TravelDate.Format("2006-01-02"),
			sale.CreationDate.Format("2006-01-02"),
			sale.SaleType,
			sale.Region,
			sale.ServiceType,
			sale.Status,
			sale.Currency,
			sale.TotalCost,
			sale.SalePrice,
			Models.ConvertToUSD(ec.DB, user.CompanyID, sale.Currency, sale.SalePrice),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return httperr.Internal(err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return httperr.Internal(err)
	}

	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
