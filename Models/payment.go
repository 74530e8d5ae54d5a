package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
)

type Payment struct {
	gorm.Model
	SaleID    uint      `json:"sale_id" gorm:"not null;index"`
	Date      time.Time `json:"date" gorm:"not null"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Currency  string    `json:"currency" gorm:"size:3;not null;default:USD"`
	Method    string    `json:"method" gorm:"not null;default:cash"`
	Reference string    `json:"reference"`
	Status    string    `json:"status" gorm:"not null;default:confirmed"`

	Sale Sale `json:"sale,omitempty" gorm:"foreignKey:SaleID"`
}

type PaymentRequest struct {
	SaleID    uint    `json:"sale_id" validate:"required"`
	Date      string  `json:"date" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency"`
	Method    string  `json:"method" validate:"omitempty,oneof=cash creditCard transfer"`
	Reference string  `json:"reference"`
	Status    string  `json:"status" validate:"omitempty,oneof=pending confirmed"`
}

// PaymentSummary is the display-time reconciliation of a sale against its
// payments. Pending payments never count toward the paid total.
type PaymentSummary struct {
	TotalSale      float64 `json:"total_sale"`
	TotalPaid      float64 `json:"total_paid"`
	PendingBalance float64 `json:"pending_balance"`
}

// ReconcilePayments computes the confirmed-paid total and the outstanding
// balance for a sale.
func ReconcilePayments(totalSale float64, payments []Payment) PaymentSummary {
	var paid float64
	for _, p := range payments {
		if p.Status == PaymentStatusConfirmed {
			paid += p.Amount
		}
	}
	return PaymentSummary{
		TotalSale:      totalSale,
		TotalPaid:      paid,
		PendingBalance: totalSale - paid,
	}
}
