package Models

import (
	"gorm.io/gorm"
)

// CurrencyRate is a per-company conversion factor to USD, used only to convert
// stored amounts at display/report time. Stored sale and payment amounts stay
// in their own currency.
type CurrencyRate struct {
	gorm.Model
	Code      string  `json:"code" gorm:"size:3;not null;index:idx_currency_rates_company_code,unique"`
	RateToUSD float64 `json:"rate_to_usd" gorm:"not null"`
	IsActive  bool    `json:"is_active" gorm:"not null;default:true"`
	CompanyID uint    `json:"company_id" gorm:"not null;index:idx_currency_rates_company_code,unique"`
}

type CurrencyRateRequest struct {
	Code      string  `json:"code" validate:"required,len=3"`
	RateToUSD float64 `json:"rate_to_usd" validate:"required,gt=0"`
	IsActive  *bool   `json:"is_active"`
}

// ConvertToUSD converts an amount using the company's active rate for the
// given code. USD amounts and unknown codes pass through unchanged.
func ConvertToUSD(db *gorm.DB, companyID uint, code string, amount float64) float64 {
	if code == "" || code == "USD" {
		return amount
	}
	var rate CurrencyRate
	err := db.Where("company_id = ? AND code = ? AND is_active = ?", companyID, code, true).
		First(&rate).Error
	if err != nil || rate.RateToUSD == 0 {
		return amount
	}
	return amount * rate.RateToUSD
}
