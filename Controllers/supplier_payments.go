package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SupplierPaymentController handles disbursements to suppliers and the
// computed owed-balance views. Admin only.
type SupplierPaymentController struct {
	DB *gorm.DB
}

func NewSupplierPaymentController(db *gorm.DB) *SupplierPaymentController {
	return &SupplierPaymentController{DB: db}
}

func (sp *SupplierPaymentController) findTenantSupplier(user Models.User, id uint) (Models.Supplier, error) {
	var supplier Models.Supplier
	err := sp.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return supplier, httperr.NotFound("Supplier not found")
		}
		return supplier, httperr.Internal(err)
	}
	return supplier, nil
}

// GetSupplierPayments lists the tenant's supplier payments, newest first.
// GET /api/supplier-payments
func (sp *SupplierPaymentController) GetSupplierPayments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var payments []Models.SupplierPayment
	err := sp.DB.Where("company_id = ?", user.CompanyID).
		Order("payment_date DESC").
		Preload("Supplier").
		Find(&payments).Error
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(payments)
}

// CreateSupplierPayment records a disbursement to a tenant supplier.
// POST /api/supplier-payments
func (sp *SupplierPaymentController) CreateSupplierPayment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req Models.SupplierPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	if _, err := sp.findTenantSupplier(user, req.SupplierID); err != nil {
		return err
	}

	date, err := parseDate(req.PaymentDate)
	if err != nil {
		return httperr.Validation("Invalid payment_date, use YYYY-MM-DD")
	}

	payment := Models.SupplierPayment{
		SupplierID:    req.SupplierID,
		Amount:        req.Amount,
		Currency:      defaultValue(req.Currency, "USD"),
		PaymentDate:   date,
		Description:   req.Description,
		PaymentMethod: defaultValue(req.PaymentMethod, "transfer"),
		Reference:     req.Reference,
		CompanyID:     user.CompanyID,
	}
	if err := sp.DB.Create(&payment).Error; err != nil {
		return httperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// UpdateSupplierPayment replaces the editable fields of a payment.
// PUT /api/supplier-payments/:id
func (sp *SupplierPaymentController) UpdateSupplierPayment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid supplier payment ID")
	}

	var payment Models.SupplierPayment
	if err := sp.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&payment).Error; err != nil {
		return httperr.NotFound("Supplier payment not found")
	}

	var req Models.SupplierPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	if _, err := sp.findTenantSupplier(user, req.SupplierID); err != nil {
		return err
	}
	date, err := parseDate(req.PaymentDate)
	if err != nil {
		return httperr.Validation("Invalid payment_date, use YYYY-MM-DD")
	}

	payment.SupplierID = req.SupplierID
	payment.Amount = req.Amount
	payment.Currency = defaultValue(req.Currency, payment.Currency)
	payment.PaymentDate = date
	payment.Description = req.Description
	payment.PaymentMethod = defaultValue(req.PaymentMethod, payment.PaymentMethod)
	payment.Reference = req.Reference

	if err := sp.DB.Save(&payment).Error; err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(payment)
}

// DeleteSupplierPayment removes a payment.
// DELETE /api/supplier-payments/:id
func (sp *SupplierPaymentController) DeleteSupplierPayment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid supplier payment ID")
	}

	var payment Models.SupplierPayment
	if err := sp.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&payment).Error; err != nil {
		return httperr.NotFound("Supplier payment not found")
	}
	if err := sp.DB.Delete(&payment).Error; err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(fiber.Map{"message": "Supplier payment deleted successfully"})
}

// GetSupplierBalance computes the amount still owed to a supplier: cost of
// every tenant sale item referencing it minus all payments made to it.
// GET /api/suppliers/:id/balance
func (sp *SupplierPaymentController) GetSupplierBalance(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid supplier ID")
	}

	supplier, findErr := sp.findTenantSupplier(user, uint(id))
	if findErr != nil {
		return findErr
	}

	var totalCost float64
	err = sp.DB.Raw(`
		SELECT COALESCE(SUM(si.cost_price), 0)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		WHERE si.supplier_id = ?
		AND s.company_id = ?
		AND si.deleted_at IS NULL
		AND s.deleted_at IS NULL
	`, supplier.ID, user.CompanyID).Scan(&totalCost).Error
	if err != nil {
		return httperr.Internal(err)
	}

	var totalPaid float64
	err = sp.DB.Model(&Models.SupplierPayment{}).
		Where("supplier_id = ? AND company_id = ?", supplier.ID, user.CompanyID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalPaid).Error
	if err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(fiber.Map{
		"supplier_id": supplier.ID,
		"name":        supplier.Name,
		"total_cost":  totalCost,
		"total_paid":  totalPaid,
		"balance":     totalCost - totalPaid,
	})
}

type SupplierSaleRow struct {
	SaleID        uint    `json:"sale_id"`
	PassengerName string  `json:"passenger_name"`
	Status        string  `json:"status"`
	SupplierCost  float64 `json:"supplier_cost"`
	ItemCount     int64   `json:"item_count"`
}

// GetSupplierSales lists the tenant sales containing items of this supplier.
// Each row reports only the supplier's own cost contribution, so a
// multi-supplier sale is never overstated.
// GET /api/suppliers/:id/sales
func (sp *SupplierPaymentController) GetSupplierSales(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid supplier ID")
	}

	supplier, findErr := sp.findTenantSupplier(user, uint(id))
	if findErr != nil {
		return findErr
	}

	var rows []SupplierSaleRow
	err = sp.DB.Raw(`
		SELECT
			s.id as sale_id,
			s.passenger_name,
			s.status,
			COALESCE(SUM(si.cost_price), 0) as supplier_cost,
			COUNT(si.id) as item_count
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		WHERE si.supplier_id = ?
		AND s.company_id = ?
		AND si.deleted_at IS NULL
		AND s.deleted_at IS NULL
		GROUP BY s.id, s.passenger_name, s.status
		ORDER BY s.creation_date DESC
	`, supplier.ID, user.CompanyID).Scan(&rows).Error
	if err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(rows)
}
