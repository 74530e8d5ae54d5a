package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClientController handles client-related API endpoints
type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

// GetClients retrieves the tenant's clients, optionally filtered by name.
func (cc *ClientController) GetClients(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := cc.DB.Where("company_id = ?", user.CompanyID)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var clients []Models.Client
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(clients)
}

// GetClient retrieves a single client by ID
func (cc *ClientController) GetClient(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid client ID")
	}

	var client Models.Client
	if err := cc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&client).Error; err != nil {
		return httperr.NotFound("Client not found")
	}
	return c.JSON(client)
}

// CreateClient creates a new client in the caller's company
func (cc *ClientController) CreateClient(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input Models.Client
	if err := c.BodyParser(&input); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if input.Name == "" {
		return httperr.Validation("Validation failed", httperr.FieldError{Field: "name", Message: "is required"})
	}

	client := Models.Client{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		CompanyID: user.CompanyID,
	}
	if result := cc.DB.Create(&client); result.Error != nil {
		if isDuplicateError(result.Error) {
			return httperr.Conflict("A client with this name already exists")
		}
		return httperr.Internal(result.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient updates an existing client
func (cc *ClientController) UpdateClient(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid client ID")
	}

	var client Models.Client
	if err := cc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&client).Error; err != nil {
		return httperr.NotFound("Client not found")
	}

	var input Models.Client
	if err := c.BodyParser(&input); err != nil {
		return httperr.Validation("Invalid request body")
	}

	cc.DB.Model(&client).Updates(Models.Client{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	})
	return c.JSON(client)
}

// DeleteClient soft deletes a client
func (cc *ClientController) DeleteClient(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid client ID")
	}

	var client Models.Client
	if err := cc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&client).Error; err != nil {
		return httperr.NotFound("Client not found")
	}

	cc.DB.Delete(&client)
	return c.JSON(fiber.Map{"message": "Client deleted successfully"})
}
