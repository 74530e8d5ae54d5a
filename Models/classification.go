package Models

import (
	"gorm.io/gorm"
)

// Classification categorizes sale items for reporting (e.g. air, land, cruise).
type Classification struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;index"`
	CompanyID uint   `json:"company_id" gorm:"not null;index"`
}
