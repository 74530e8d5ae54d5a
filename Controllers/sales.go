package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SaleController handles the sale aggregate: header, items, status lifecycle.
type SaleController struct {
	DB *gorm.DB
}

func NewSaleController(db *gorm.DB) *SaleController {
	return &SaleController{DB: db}
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// preloadSale attaches every relation the admin UI renders on a sale.
func preloadSale(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Client").
		Preload("Seller").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_order ASC")
		}).
		Preload("Items.Classification").
		Preload("Items.Supplier").
		Preload("Items.Operator").
		Preload("Items.Passengers")
}

// findTenantSale loads a sale scoped to the caller's company. A sale from
// another company reads as not found, never as forbidden.
func (sc *SaleController) findTenantSale(user Models.User, id uint) (Models.Sale, error) {
	var sale Models.Sale
	err := sc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&sale).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return sale, httperr.NotFound("Sale not found")
		}
		return sale, httperr.Internal(err)
	}
	return sale, nil
}

// checkItemReferences verifies every optional FK on an item set against the
// caller's company.
func (sc *SaleController) checkItemReferences(companyID uint, items []Models.SaleItemRequest) error {
	for _, item := range items {
		if item.ClassificationID != nil {
			var classification Models.Classification
			if err := sc.DB.Where("id = ? AND company_id = ?", *item.ClassificationID, companyID).First(&classification).Error; err != nil {
				return httperr.NotFound("Classification not found")
			}
		}
		if item.SupplierID != nil {
			var supplier Models.Supplier
			if err := sc.DB.Where("id = ? AND company_id = ?", *item.SupplierID, companyID).First(&supplier).Error; err != nil {
				return httperr.NotFound("Supplier not found")
			}
		}
		if item.OperatorID != nil {
			var operator Models.Operator
			if err := sc.DB.Where("id = ? AND company_id = ?", *item.OperatorID, companyID).First(&operator).Error; err != nil {
				return httperr.NotFound("Operator not found")
			}
		}
	}
	return nil
}

// createItems inserts the item set for a sale inside the given transaction,
// resolving embedded passengers by document number.
func createItems(tx *gorm.DB, sale *Models.Sale, items []Models.SaleItemRequest) error {
	for i, req := range items {
		dateIn, err := parseDate(req.DateIn)
		if err != nil {
			return httperr.Validation("Invalid item date_in, use YYYY-MM-DD")
		}
		dateOut, err := parseOptionalDate(req.DateOut)
		if err != nil {
			return httperr.Validation("Invalid item date_out, use YYYY-MM-DD")
		}
		paymentDate, err := parseOptionalDate(req.PaymentDate)
		if err != nil {
			return httperr.Validation("Invalid item payment_date, use YYYY-MM-DD")
		}

		status := req.Status
		if status == "" {
			status = Models.ItemStatusPending
		}
		passengerCount := req.PassengerCount
		if passengerCount == 0 {
			passengerCount = 1
		}

		item := Models.SaleItem{
			SaleID:           sale.ID,
			DateIn:           dateIn,
			DateOut:          dateOut,
			PassengerCount:   passengerCount,
			Status:           status,
			Description:      req.Description,
			SalePrice:        req.SalePrice,
			CostPrice:        req.CostPrice,
			SaleCurrency:     defaultCurrency(req.SaleCurrency, sale.Currency),
			CostCurrency:     defaultCurrency(req.CostCurrency, sale.Currency),
			ReservationCode:  req.ReservationCode,
			PaymentDate:      paymentDate,
			ItemOrder:        i + 1,
			ClassificationID: req.ClassificationID,
			SupplierID:       req.SupplierID,
			OperatorID:       req.OperatorID,
		}

		for _, p := range req.Passengers {
			passenger, err := Models.FindOrCreatePassenger(tx, sale.CompanyID, p)
			if err != nil {
				return httperr.Internal(err)
			}
			item.Passengers = append(item.Passengers, passenger)
		}

		// Omit the passenger rows themselves so only join records are written.
		if err := tx.Omit("Passengers.*").Create(&item).Error; err != nil {
			return httperr.Internal(err)
		}
	}
	return nil
}

func defaultCurrency(value, fallback string) string {
	if value != "" {
		return value
	}
	if fallback != "" {
		return fallback
	}
	return "USD"
}

// CreateSale creates the header and all items as one atomic unit.
// POST /api/sales
func (sc *SaleController) CreateSale(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req Models.SaleRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	travelDate, err := parseDate(req.TravelDate)
	if err != nil {
		return httperr.Validation("Invalid travel_date, use YYYY-MM-DD")
	}

	var client Models.Client
	if err := sc.DB.Where("id = ? AND company_id = ?", req.ClientID, user.CompanyID).First(&client).Error; err != nil {
		return httperr.NotFound("Client not found")
	}
	if err := sc.checkItemReferences(user.CompanyID, req.Items); err != nil {
		return err
	}

	totalCost, salePrice := Models.ComputeTotals(req.Items)

	status := Models.SaleStatusDraft
	if req.Confirmed {
		status = Models.SaleStatusConfirmed
	}

	sale := Models.Sale{
		PassengerName:  req.PassengerName,
		ClientID:       req.ClientID,
		TravelDate:     travelDate,
		CreationDate:   time.Now(),
		SaleType:       defaultValue(req.SaleType, "individual"),
		Region:         defaultValue(req.Region, "national"),
		ServiceType:    defaultValue(req.ServiceType, "other"),
		Status:         status,
		Currency:       defaultValue(req.Currency, "USD"),
		PassengerCount: req.PassengerCount,
		TotalCost:      totalCost,
		SalePrice:      salePrice,
		SellerID:       user.ID,
		CompanyID:      user.CompanyID,
	}
	if sale.PassengerCount == 0 {
		sale.PassengerCount = 1
	}

	tx := sc.DB.Begin()
	if tx.Error != nil {
		return httperr.Internal(tx.Error)
	}

	if err := tx.Create(&sale).Error; err != nil {
		tx.Rollback()
		return httperr.Internal(err)
	}
	if err := createItems(tx, &sale, req.Items); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return httperr.Internal(err)
	}

	preloadSale(sc.DB).First(&sale, sale.ID)
	return c.Status(fiber.StatusCreated).JSON(sale)
}

func defaultValue(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// UpdateSale applies a partial header update and atomically replaces the full
// item set, recomputing totals from the replacement.
// PUT /api/sales/:id
func (sc *SaleController) UpdateSale(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid sale ID")
	}

	sale, findErr := sc.findTenantSale(user, uint(id))
	if findErr != nil {
		return findErr
	}
	if !user.IsAdmin() && sale.SellerID != user.ID {
		return httperr.Forbidden("You may only modify your own sales")
	}

	var req Models.SaleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	if req.PassengerName != nil {
		sale.PassengerName = *req.PassengerName
	}
	if req.ClientID != nil {
		var client Models.Client
		if err := sc.DB.Where("id = ? AND company_id = ?", *req.ClientID, user.CompanyID).First(&client).Error; err != nil {
			return httperr.NotFound("Client not found")
		}
		sale.ClientID = *req.ClientID
	}
	if req.TravelDate != nil {
		travelDate, err := parseDate(*req.TravelDate)
		if err != nil {
			return httperr.Validation("Invalid travel_date, use YYYY-MM-DD")
		}
		sale.TravelDate = travelDate
	}
	if req.SaleType != nil {
		sale.SaleType = *req.SaleType
	}
	if req.Region != nil {
		sale.Region = *req.Region
	}
	if req.ServiceType != nil {
		sale.ServiceType = *req.ServiceType
	}
	if req.Currency != nil {
		sale.Currency = *req.Currency
	}
	if req.PassengerCount != nil {
		sale.PassengerCount = *req.PassengerCount
	}

	if err := sc.checkItemReferences(user.CompanyID, req.Items); err != nil {
		return err
	}

	sale.TotalCost, sale.SalePrice = Models.ComputeTotals(req.Items)

	tx := sc.DB.Begin()
	if tx.Error != nil {
		return httperr.Internal(tx.Error)
	}

	if err := tx.Save(&sale).Error; err != nil {
		tx.Rollback()
		return httperr.Internal(err)
	}

	// Drop passenger links first, then the items themselves.
	if err := tx.Exec(
		"DELETE FROM sale_item_passengers WHERE sale_item_id IN (SELECT id FROM sale_items WHERE sale_id = ?)",
		sale.ID,
	).Error; err != nil {
		tx.Rollback()
		return httperr.Internal(err)
	}
	if err := tx.Where("sale_id = ?", sale.ID).Delete(&Models.SaleItem{}).Error; err != nil {
		tx.Rollback()
		return httperr.Internal(err)
	}

	if err := createItems(tx, &sale, req.Items); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return httperr.Internal(err)
	}

	preloadSale(sc.DB).First(&sale, sale.ID)
	return c.JSON(sale)
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=draft confirmed completed cancelled"`
}

// UpdateSaleStatus moves a sale along its lifecycle, rejecting moves the
// transition table does not allow.
// PATCH /api/sales/:id/status
func (sc *SaleController) UpdateSaleStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid sale ID")
	}

	sale, findErr := sc.findTenantSale(user, uint(id))
	if findErr != nil {
		return findErr
	}
	if !user.IsAdmin() && sale.SellerID != user.ID {
		return httperr.Forbidden("You may only modify your own sales")
	}

	var req StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	if err := sale.Transition(req.Status); err != nil {
		return httperr.InvalidTransition(err.Error())
	}
	if err := sc.DB.Model(&sale).Update("status", sale.Status).Error; err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(sale)
}

// GetSales lists the tenant's sales. Admins see the whole company, sales staff
// only their own.
// GET /api/sales
func (sc *SaleController) GetSales(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := preloadSale(sc.DB).Where("company_id = ?", user.CompanyID)
	if !user.IsAdmin() {
		query = query.Where("seller_id = ?", user.ID)
	}

	var sales []Models.Sale
	if err := query.Order("creation_date DESC").Find(&sales).Error; err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(sales)
}

// GetSale fetches one sale. Cross-tenant reads 404; a same-tenant non-owner
// without the admin role gets 403.
// GET /api/sales/:id
func (sc *SaleController) GetSale(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid sale ID")
	}

	sale, findErr := sc.findTenantSale(user, uint(id))
	if findErr != nil {
		return findErr
	}
	if !user.IsAdmin() && sale.SellerID != user.ID {
		return httperr.Forbidden("You may only view your own sales")
	}

	preloadSale(sc.DB).First(&sale, sale.ID)
	return c.JSON(sale)
}

// DeleteSale removes a sale with its items, passenger links and payments.
// DELETE /api/sales/:id
func (sc *SaleController) DeleteSale(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid sale ID")
	}

	sale, findErr := sc.findTenantSale(user, uint(id))
	if findErr != nil {
		return findErr
	}
	if !user.IsAdmin() && sale.SellerID != user.ID {
		return httperr.Forbidden("You may only delete your own sales")
	}

	tx := sc.DB.Begin()
	if tx.Error != nil {
		return httperr.Internal(tx.Error)
	}
	if err := tx.Exec(
		"DELETE FROM sale_item_passengers WHERE sale_item_id IN (SELECT id FROM sale_items WHERE sale_id = ?)",
		sale.ID,
	).Error; err != nil {
		tx.Rollback()
		return httperr.Internal(err)
	}
	if err := tx.Where("sale_id = ?", sale.ID).Delete(&Models.SaleItem{}).Error; err != nil {
		tx.Rollback()
		return httperr.Internal(err)
	}
	if err := tx.Where("sale_id = ?", sale.ID).Delete(&Models.Payment{}).Error; err != nil {
		tx.Rollback()
		return httperr.Internal(err)
	}
	if err := tx.Delete(&sale).Error; err != nil {
		tx.Rollback()
		return httperr.Internal(err)
	}
	if err := tx.Commit().Error; err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(fiber.Map{"message": "Sale deleted successfully"})
}
