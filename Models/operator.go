package Models

import (
	"gorm.io/gorm"
)

// Operator is the tour operator actually running a booked service.
type Operator struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;index"`
	Contact   string `json:"contact"`
	CompanyID uint   `json:"company_id" gorm:"not null;index"`
}
