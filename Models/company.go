package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Company struct {
	gorm.Model
	Name string `json:"name" gorm:"not null;uniqueIndex"`
}

// CompanySettings holds per-company display preferences as a JSON blob
// (display currency, date format, report defaults).
type CompanySettings struct {
	gorm.Model
	CompanyID   uint           `json:"company_id" gorm:"not null;uniqueIndex"`
	Preferences datatypes.JSON `json:"preferences"`

	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}
