package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupplierController struct {
	DB *gorm.DB
}

func NewSupplierController(db *gorm.DB) *SupplierController {
	return &SupplierController{DB: db}
}

func (sc *SupplierController) GetSuppliers(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := sc.DB.Where("company_id = ?", user.CompanyID)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var suppliers []Models.Supplier
	if err := query.Order("name ASC").Find(&suppliers).Error; err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(suppliers)
}

func (sc *SupplierController) GetSupplier(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid supplier ID")
	}

	var supplier Models.Supplier
	if err := sc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&supplier).Error; err != nil {
		return httperr.NotFound("Supplier not found")
	}
	return c.JSON(supplier)
}

func (sc *SupplierController) CreateSupplier(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input Models.Supplier
	if err := c.BodyParser(&input); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if input.Name == "" {
		return httperr.Validation("Validation failed", httperr.FieldError{Field: "name", Message: "is required"})
	}

	supplier := Models.Supplier{
		Name:      input.Name,
		Contact:   input.Contact,
		Notes:     input.Notes,
		CompanyID: user.CompanyID,
	}
	if result := sc.DB.Create(&supplier); result.Error != nil {
		if isDuplicateError(result.Error) {
			return httperr.Conflict("A supplier with this name already exists")
		}
		return httperr.Internal(result.Error)
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

func (sc *SupplierController) UpdateSupplier(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid supplier ID")
	}

	var supplier Models.Supplier
	if err := sc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&supplier).Error; err != nil {
		return httperr.NotFound("Supplier not found")
	}

	var input Models.Supplier
	if err := c.BodyParser(&input); err != nil {
		return httperr.Validation("Invalid request body")
	}

	sc.DB.Model(&supplier).Updates(Models.Supplier{
		Name:    input.Name,
		Contact: input.Contact,
		Notes:   input.Notes,
	})
	return c.JSON(supplier)
}

func (sc *SupplierController) DeleteSupplier(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid supplier ID")
	}

	var supplier Models.Supplier
	if err := sc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&supplier).Error; err != nil {
		return httperr.NotFound("Supplier not found")
	}

	sc.DB.Delete(&supplier)
	return c.JSON(fiber.Map{"message": "Supplier deleted successfully"})
}
