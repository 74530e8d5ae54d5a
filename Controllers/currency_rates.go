package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CurrencyRateController manages the per-company rate table used for
// display-time conversion.
type CurrencyRateController struct {
	DB *gorm.DB
}

func NewCurrencyRateController(db *gorm.DB) *CurrencyRateController {
	return &CurrencyRateController{DB: db}
}

func (cr *CurrencyRateController) GetRates(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var rates []Models.CurrencyRate
	if err := cr.DB.Where("company_id = ?", user.CompanyID).Order("code ASC").Find(&rates).Error; err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(rates)
}

func (cr *CurrencyRateController) CreateRate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req Models.CurrencyRateRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	rate := Models.CurrencyRate{
		Code:      strings.ToUpper(req.Code),
		RateToUSD: req.RateToUSD,
		IsActive:  true,
		CompanyID: user.CompanyID,
	}
	if req.IsActive != nil {
		rate.IsActive = *req.IsActive
	}
	if result := cr.DB.Create(&rate); result.Error != nil {
		if isDuplicateError(result.Error) {
			return httperr.Conflict("A rate for this currency already exists")
		}
		return httperr.Internal(result.Error)
	}
	return c.Status(fiber.StatusCreated).JSON(rate)
}

func (cr *CurrencyRateController) UpdateRate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid rate ID")
	}

	var rate Models.CurrencyRate
	if err := cr.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&rate).Error; err != nil {
		return httperr.NotFound("Currency rate not found")
	}

	var req Models.CurrencyRateRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}

	updates := make(map[string]interface{})
	if req.RateToUSD > 0 {
		updates["rate_to_usd"] = req.RateToUSD
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		cr.DB.Model(&rate).Updates(updates)
		cr.DB.First(&rate, rate.ID)
	}
	return c.JSON(rate)
}

func (cr *CurrencyRateController) DeleteRate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid rate ID")
	}

	var rate Models.CurrencyRate
	if err := cr.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&rate).Error; err != nil {
		return httperr.NotFound("Currency rate not found")
	}

	cr.DB.Delete(&rate)
	return c.JSON(fiber.Map{"message": "Currency rate deleted successfully"})
}
