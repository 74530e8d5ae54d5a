package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PassengerController struct {
	DB *gorm.DB
}

func NewPassengerController(db *gorm.DB) *PassengerController {
	return &PassengerController{DB: db}
}

func (pc *PassengerController) GetPassengers(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	query := pc.DB.Where("company_id = ?", user.CompanyID)
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR passenger_id LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var passengers []Models.Passenger
	if err := query.Order("name ASC").Find(&passengers).Error; err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(passengers)
}

func (pc *PassengerController) GetPassenger(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid passenger ID")
	}

	var passenger Models.Passenger
	if err := pc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&passenger).Error; err != nil {
		return httperr.NotFound("Passenger not found")
	}
	return c.JSON(passenger)
}

func (pc *PassengerController) CreatePassenger(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req Models.PassengerRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	passenger := Models.Passenger{
		PassengerID: req.PassengerID,
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Nationality: req.Nationality,
		CompanyID:   user.CompanyID,
	}
	if result := pc.DB.Create(&passenger); result.Error != nil {
		if isDuplicateError(result.Error) {
			return httperr.Conflict("A passenger with this document number already exists")
		}
		return httperr.Internal(result.Error)
	}
	return c.Status(fiber.StatusCreated).JSON(passenger)
}

func (pc *PassengerController) UpdatePassenger(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid passenger ID")
	}

	var passenger Models.Passenger
	if err := pc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&passenger).Error; err != nil {
		return httperr.NotFound("Passenger not found")
	}

	var req Models.PassengerRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}

	pc.DB.Model(&passenger).Updates(Models.Passenger{
		Name:        req.Name,
		DateOfBirth: req.DateOfBirth,
		Nationality: req.Nationality,
	})
	return c.JSON(passenger)
}

func (pc *PassengerController) DeletePassenger(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return httperr.Validation("Invalid passenger ID")
	}

	var passenger Models.Passenger
	if err := pc.DB.Where("id = ? AND company_id = ?", id, user.CompanyID).First(&passenger).Error; err != nil {
		return httperr.NotFound("Passenger not found")
	}

	pc.DB.Delete(&passenger)
	return c.JSON(fiber.Map{"message": "Passenger deleted successfully"})
}
