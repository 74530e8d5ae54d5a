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

// PaymentController handles money receipts against sales.
type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// findTenantPayment loads a payment whose sale belongs to the caller's
// company. Cross-tenant payments read as not found.
func (pc *PaymentController) findTenantPayment(user Models.User, id uint) (Models.Payment, error) {
	var payment Models.Payment
	err := pc.DB.
		Joins("JOIN sales ON sales.id = payments.sale_id").
		Where("payments.id = ? AND sales.company_id = ?", id, user.CompanyID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payment, httperr.NotFound("Payment not found")
		}
		return payment, httperr.Internal(err)
	}
	return payment, nil
}

// GetPayments lists the tenant's payments, newest first.
// GET /api/payments
func (pc *PaymentController) GetPayments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var payments []Models.Payment
	err := pc.DB.
		Joins("JOIN sales ON sales.id = payments.sale_id").
		Where("sales.company_id = ?", user.CompanyID).
		Order("payments.date DESC").
		Preload("Sale").
		Find(&payments).Error
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(payments)
}

// GetPayment fetches one payment.
// GET /api/payments/:id
func (pc *PaymentController) GetPayment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid payment ID")
	}

	payment, findErr := pc.findTenantPayment(user, uint(id))
	if findErr != nil {
		return findErr
	}
	return c.JSON(payment)
}

// CreatePayment records a payment against a tenant sale. Status defaults to
// confirmed when omitted.
// POST /api/payments
func (pc *PaymentController) CreatePayment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req Models.PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	var sale Models.Sale
	if err := pc.DB.Where("id = ? AND company_id = ?", req.SaleID, user.CompanyID).First(&sale).Error; err != nil {
		return httperr.NotFound("Sale not found")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return httperr.Validation("Invalid date, use YYYY-MM-DD")
	}

	payment := Models.Payment{
		SaleID:    sale.ID,
		Date:      date,
		Amount:    req.Amount,
		Currency:  defaultCurrency(req.Currency, sale.Currency),
		Method:    defaultValue(req.Method, "cash"),
		Reference: req.Reference,
		Status:    defaultValue(req.Status, Models.PaymentStatusConfirmed),
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		return httperr.Internal(err)
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

// TogglePaymentStatus flips a payment between pending and confirmed.
// PATCH /api/payments/:id/status
func (pc *PaymentController) TogglePaymentStatus(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid payment ID")
	}

	payment, findErr := pc.findTenantPayment(user, uint(id))
	if findErr != nil {
		return findErr
	}

	next := Models.PaymentStatusConfirmed
	if payment.Status == Models.PaymentStatusConfirmed {
		next = Models.PaymentStatusPending
	}
	if err := pc.DB.Model(&payment).Update("status", next).Error; err != nil {
		return httperr.Internal(err)
	}
	payment.Status = next

	return c.JSON(payment)
}

// DeletePayment removes a payment.
// DELETE /api/payments/:id
func (pc *PaymentController) DeletePayment(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid payment ID")
	}

	payment, findErr := pc.findTenantPayment(user, uint(id))
	if findErr != nil {
		return findErr
	}
	if err := pc.DB.Delete(&payment).Error; err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(fiber.Map{"message": "Payment deleted successfully"})
}

// GetSalePayments returns a sale's payments with the reconciliation summary:
// confirmed total paid and outstanding balance.
// GET /api/sales/:id/payments
func (pc *PaymentController) GetSalePayments(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid sale ID")
	}

	var sale Models.Sale
	if err := pc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.NotFound("Sale not found")
		}
		return httperr.Internal(err)
	}

	var payments []Models.Payment
	if err := pc.DB.Where("sale_id = ?", sale.ID).Order("date ASC").Find(&payments).Error; err != nil {
		return httperr.Internal(err)
	}

	summary := Models.ReconcilePayments(sale.SalePrice, payments)
	return c.JSON(fiber.Map{
		"payments":        payments,
		"total_sale":      summary.TotalSale,
		"total_paid":      summary.TotalPaid,
		"pending_balance": summary.PendingBalance,
	})
}
