package Models

import (
	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;index"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CompanyID uint   `json:"company_id" gorm:"not null;index"`
}
