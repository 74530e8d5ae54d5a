package Controllers

import (
	"TravelPro/Models"
	"TravelPro/httperr"
	"TravelPro/middleware"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin sales finance"`
}

func tokenTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("TOKEN_TTL_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func issueToken(user Models.User) (string, error) {
	claims := middleware.Claims{
		Username:  user.Username,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL())),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(middleware.SecretKey())
}

// Login checks credentials and issues a JWT as both a cookie and a body token.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	var user Models.User
	if result := Models.DB.Where("username = ?", req.Username).First(&user); result.Error != nil {
		return httperr.Unauthorized("Invalid username or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return httperr.Unauthorized("Invalid username or password")
	}

	signed, err := issueToken(user)
	if err != nil {
		return httperr.Internal(err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    signed,
		Expires:  time.Now().Add(tokenTTL()),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"token": signed,
		"user": fiber.Map{
			"id":         user.ID,
			"username":   user.Username,
			"role":       user.Role,
			"company_id": user.CompanyID,
		},
	})
}

// Logout expires the JWT cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// ValidateToken reports whether the presented token is still usable.
func ValidateToken(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{
		"valid": true,
		"user": fiber.Map{
			"id":         user.ID,
			"username":   user.Username,
			"role":       user.Role,
			"company_id": user.CompanyID,
		},
	})
}

// User returns the authenticated user's profile.
func User(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(user)
}

// RegisterUser creates a user inside the caller's company. Admin only.
func RegisterUser(c *fiber.Ctx) error {
	caller := middleware.CurrentUser(c)

	var req RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body")
	}
	if apiErr := validateStruct(req); apiErr != nil {
		return apiErr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return httperr.Internal(err)
	}

	user := Models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		CompanyID:    caller.CompanyID,
	}
	if result := Models.DB.Create(&user); result.Error != nil {
		if isDuplicateError(result.Error) {
			return httperr.Conflict("A user with this username already exists")
		}
		return httperr.Internal(result.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// FetchUsers lists the caller's company users. Admin only.
func FetchUsers(c *fiber.Ctx) error {
	caller := middleware.CurrentUser(c)

	var users []Models.User
	if result := Models.DB.Where("company_id = ?", caller.CompanyID).Order("username ASC").Find(&users); result.Error != nil {
		return httperr.Internal(result.Error)
	}
	return c.JSON(users)
}
