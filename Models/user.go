package Models

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleSales   = "sales"
	RoleFinance = "finance"
)

// Username is unique across companies, not just within one: login takes a
// bare username, so it has to resolve to exactly one account.
type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"not null"`
	Role         string `json:"role" gorm:"not null;default:sales"`
	CompanyID    uint   `json:"company_id" gorm:"not null;index"`

	Company Company `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
