package Models

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Sale statuses. A sale only ever moves forward: draft -> confirmed ->
// completed, with cancellation allowed while not completed.
const (
	SaleStatusDraft     = "draft"
	SaleStatusConfirmed = "confirmed"
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Item statuses.
const (
	ItemStatusPending   = "pending"
	ItemStatusConfirmed = "confirmed"
	ItemStatusCancelled = "cancelled"
)

var SaleStatuses = []string{SaleStatusDraft, SaleStatusConfirmed, SaleStatusCompleted, SaleStatusCancelled}

var ErrInvalidTransition = errors.New("invalid sale status transition")

// saleTransitions maps each status to the set of statuses it may move to.
// Completed and cancelled are terminal.
var saleTransitions = map[string][]string{
	SaleStatusDraft:     {SaleStatusConfirmed, SaleStatusCancelled},
	SaleStatusConfirmed: {SaleStatusCompleted, SaleStatusCancelled},
	SaleStatusCompleted: {},
	SaleStatusCancelled: {},
}

// CanTransition reports whether a sale may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range saleTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition validates and applies a status change on the sale struct.
func (s *Sale) Transition(to string) error {
	if !CanTransition(s.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Status, to)
	}
	s.Status = to
	return nil
}

type Sale struct {
	gorm.Model
	PassengerName  string    `json:"passenger_name" gorm:"not null"`
	ClientID       uint      `json:"client_id" gorm:"not null;index"`
	TravelDate     time.Time `json:"travel_date" gorm:"not null;index"`
	CreationDate   time.Time `json:"creation_date" gorm:"not null"`
	SaleType       string    `json:"sale_type" gorm:"not null;default:individual"`
	Region         string    `json:"region" gorm:"not null;default:national"`
	ServiceType    string    `json:"service_type" gorm:"not null;default:other"`
	Status         string    `json:"status" gorm:"not null;default:draft;index"`
	Currency       string    `json:"currency" gorm:"size:3;not null;default:USD"`
	PassengerCount int       `json:"passenger_count" gorm:"not null;default:1"`
	TotalCost      float64   `json:"total_cost" gorm:"not null;default:0"`
	SalePrice      float64   `json:"sale_price" gorm:"not null;default:0"`
	SellerID       uint      `json:"seller_id" gorm:"not null;index"`
	CompanyID      uint      `json:"company_id" gorm:"not null;index"`

	Client   Client     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Seller   User       `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	Items    []SaleItem `json:"items,omitempty" gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
	Payments []Payment  `json:"payments,omitempty" gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

type SaleItem struct {
	gorm.Model
	SaleID           uint       `json:"sale_id" gorm:"not null;index"`
	DateIn           time.Time  `json:"date_in"`
	DateOut          *time.Time `json:"date_out,omitempty"`
	PassengerCount   int        `json:"passenger_count" gorm:"not null;default:1"`
	Status           string     `json:"status" gorm:"not null;default:pending"`
	Description      string     `json:"description" gorm:"type:text"`
	SalePrice        float64    `json:"sale_price" gorm:"not null;default:0"`
	CostPrice        float64    `json:"cost_price" gorm:"not null;default:0"`
	SaleCurrency     string     `json:"sale_currency" gorm:"size:3;not null;default:USD"`
	CostCurrency     string     `json:"cost_currency" gorm:"size:3;not null;default:USD"`
	ReservationCode  string     `json:"reservation_code"`
	PaymentDate      *time.Time `json:"payment_date,omitempty"`
	ItemOrder        int        `json:"item_order" gorm:"not null;default:0"`
	ClassificationID *uint      `json:"classification_id,omitempty" gorm:"index"`
	SupplierID       *uint      `json:"supplier_id,omitempty" gorm:"index"`
	OperatorID       *uint      `json:"operator_id,omitempty" gorm:"index"`

	Classification *Classification `json:"classification,omitempty" gorm:"foreignKey:ClassificationID"`
	Supplier       *Supplier       `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Operator       *Operator       `json:"operator,omitempty" gorm:"foreignKey:OperatorID"`
	Passengers     []Passenger     `json:"passengers,omitempty" gorm:"many2many:sale_item_passengers"`
}

type SaleItemRequest struct {
	DateIn           string             `json:"date_in" validate:"required"`
	DateOut          string             `json:"date_out"`
	PassengerCount   int                `json:"passenger_count"`
	Status           string             `json:"status"`
	Description      string             `json:"description"`
	SalePrice        float64            `json:"sale_price"`
	CostPrice        float64            `json:"cost_price"`
	SaleCurrency     string             `json:"sale_currency"`
	CostCurrency     string             `json:"cost_currency"`
	ReservationCode  string             `json:"reservation_code"`
	PaymentDate      string             `json:"payment_date"`
	ClassificationID *uint              `json:"classification_id"`
	SupplierID       *uint              `json:"supplier_id"`
	OperatorID       *uint              `json:"operator_id"`
	Passengers       []PassengerRequest `json:"passengers"`
}

type SaleRequest struct {
	PassengerName  string            `json:"passenger_name" validate:"required"`
	ClientID       uint              `json:"client_id" validate:"required"`
	TravelDate     string            `json:"travel_date" validate:"required"`
	SaleType       string            `json:"sale_type" validate:"omitempty,oneof=individual corporate sports group"`
	Region         string            `json:"region" validate:"omitempty,oneof=national international regional"`
	ServiceType    string            `json:"service_type" validate:"omitempty,oneof=flight hotel package transfer excursion insurance other"`
	Currency       string            `json:"currency"`
	PassengerCount int               `json:"passenger_count"`
	Confirmed      bool              `json:"confirmed"`
	Items          []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleUpdateRequest carries a partial header update plus a full replacement
// item list. Header fields left nil are not touched.
type SaleUpdateRequest struct {
	PassengerName  *string           `json:"passenger_name"`
	ClientID       *uint             `json:"client_id"`
	TravelDate     *string           `json:"travel_date"`
	SaleType       *string           `json:"sale_type" validate:"omitempty,oneof=individual corporate sports group"`
	Region         *string           `json:"region" validate:"omitempty,oneof=national international regional"`
	ServiceType    *string           `json:"service_type" validate:"omitempty,oneof=flight hotel package transfer excursion insurance other"`
	Currency       *string           `json:"currency"`
	PassengerCount *int              `json:"passenger_count"`
	Items          []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ComputeTotals returns the cost and sale price sums of an item set. Sale
// totals are always derived from items, never carried by the request.
func ComputeTotals(items []SaleItemRequest) (totalCost, salePrice float64) {
	for _, item := range items {
		totalCost += item.CostPrice
		salePrice += item.SalePrice
	}
	return totalCost, salePrice
}
