package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClassificationController struct {
	DB *gorm.DB
}

func NewClassificationController(db *gorm.DB) *ClassificationController {
	return &ClassificationController{DB: db}
}

func (cc *ClassificationController) GetClassifications(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var classifications []Models.Classification
	if err := cc.DB.Where("company_id = ?", user.CompanyID).Order("name ASC").Find(&classifications).Error; err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(classifications)
}

func (cc *ClassificationController) GetClassification(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid classification ID")
	}

	var classification Models.Classification
	if err := cc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&classification).Error; err != nil {
		return httperr.NotFound("Classification not found")
	}
	return c.JSON(classification)
}

func (cc *ClassificationController) CreateClassification(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input Models.Classification
	if err := c.BodyParser(&input); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if input.Name == "" {
		return httperr.Validation("Validation failed", httperr.FieldError{Field: "name", Message: "is required"})
	}

	classification := Models.Classification{Name: input.Name, CompanyID: user.CompanyID}
	if result := cc.DB.Create(&classification); result.Error != nil {
		return httperr.Internal(result.Error)
	}
	return c.Status(fiber.StatusCreated).JSON(classification)
}

func (cc *ClassificationController) UpdateClassification(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid classification ID")
	}

	var classification Models.Classification
	if err := cc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&classification).Error; err != nil {
		return httperr.NotFound("Classification not found")
	}

	var input Models.Classification
	if err := c.BodyParser(&input); err != nil {
		return httperr.Validation("Invalid request body")
	}

	cc.DB.Model(&classification).Updates(Models.Classification{Name: input.Name})
	return c.JSON(classification)
}

func (cc *ClassificationController) DeleteClassification(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid classification ID")
	}

	var classification Models.Classification
	if err := cc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&classification).Error; err != nil {
		return httperr.NotFound("Classification not found")
	}

	cc.DB.Delete(&classification)
	return c.JSON(fiber.Map{"message": "Classification deleted successfully"})
}
