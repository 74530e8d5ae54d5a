package Models

import (
	"time"

	"gorm.io/gorm"
)

// SupplierPayment records a disbursement to a supplier. The amount owed to a
// supplier is computed, never stored: cost of all sale items referencing the
// supplier minus the sum of its payments.
type SupplierPayment struct {
	gorm.Model
	SupplierID    uint      `json:"supplier_id" gorm:"not null;index"`
	Amount        float64   `json:"amount" gorm:"not null"`
	Currency      string    `json:"currency" gorm:"size:3;not null;default:USD"`
	PaymentDate   time.Time `json:"payment_date" gorm:"not null"`
	Description   string    `json:"description"`
	PaymentMethod string    `json:"payment_method" gorm:"not null;default:transfer"`
	Reference     string    `json:"reference"`
	CompanyID     uint      `json:"company_id" gorm:"not null;index"`

	Supplier Supplier `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
}

type SupplierPaymentRequest struct {
	SupplierID    uint    `json:"supplier_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency"`
	PaymentDate   string  `json:"payment_date" validate:"required"`
	Description   string  `json:"description"`
	PaymentMethod string  `json:"payment_method"`
	Reference     string  `json:"reference"`
}
