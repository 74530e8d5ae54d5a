package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OperatorController struct {
	DB *gorm.DB
}

func NewOperatorController(db *gorm.DB) *OperatorController {
	return &OperatorController{DB: db}
}

func (oc *OperatorController) GetOperators(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := oc.DB.Where("company_id = ?", user.CompanyID)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var operators []Models.Operator
	if err := query.Order("name ASC").Find(&operators).Error; err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(operators)
}

func (oc *OperatorController) GetOperator(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid operator ID")
	}

	var operator Models.Operator
	if err := oc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&operator).Error; err != nil {
		return httperr.NotFound("Operator not found")
	}
	return c.JSON(operator)
}

func (oc *OperatorController) CreateOperator(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input Models.Operator
	if err := c.BodyParser(&input); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if input.Name == "" {
		return httperr.Validation("Validation failed", httperr.FieldError{Field: "name", Message: "is required"})
	}

	operator := Models.Operator{
		Name:      input.Name,
		Contact:   input.Contact,
		CompanyID: user.CompanyID,
	}
	if result := oc.DB.Create(&operator); result.Error != nil {
		return httperr.Internal(result.Error)
	}
	return c.Status(fiber.StatusCreated).JSON(operator)
}

func (oc *OperatorController) UpdateOperator(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid operator ID")
	}

	var operator Models.Operator
	if err := oc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&operator).Error; err != nil {
		return httperr.NotFound("Operator not found")
	}

	var input Models.Operator
	if err := c.BodyParser(&input); err != nil {
		return httperr.Validation("Invalid request body")
	}

	oc.DB.Model(&operator).Updates(Models.Operator{Name: input.Name, Contact: input.Contact})
	return c.JSON(operator)
}

func (oc *OperatorController) DeleteOperator(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid operator ID")
	}

	var operator Models.Operator
	if err := oc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&operator).Error; err != nil {
		return httperr.NotFound("Operator not found")
	}

	oc.DB.Delete(&operator)
	return c.JSON(fiber.Map{"message": "Operator deleted successfully"})
}
