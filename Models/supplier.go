package Models

import (
	"gorm.io/gorm"
)

type Supplier struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;index:idx_suppliers_company_name,unique"`
	Contact   string `json:"contact"`
	Notes     string `json:"notes"`
	CompanyID uint   `json:"company_id" gorm:"not null;index:idx_suppliers_company_name,unique"`
}
