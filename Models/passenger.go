package Models

import (
	"gorm.io/gorm"
)

// Passenger is identified by its document number (PassengerID), not by the
// database surrogate key. The same passenger referenced from different sales
// must resolve to one record per company.
type Passenger struct {
	gorm.Model
	PassengerID string `json:"passenger_id" gorm:"not null;index:idx_passengers_company_pid,unique"`
	Name        string `json:"name" gorm:"not null"`
	DateOfBirth string `json:"date_of_birth"`
	Nationality string `json:"nationality"`
	CompanyID   uint   `json:"company_id" gorm:"not null;index:idx_passengers_company_pid,unique"`
}

// FindOrCreatePassenger resolves a passenger by document number within a
// company, creating it only when truly absent. An existing passenger's fields
// are never overwritten from sale input.
func FindOrCreatePassenger(tx *gorm.DB, companyID uint, req PassengerRequest) (Passenger, error) {
	var passenger Passenger
	err := tx.Where("company_id = ? AND passenger_id = ?", companyID, req.PassengerID).
		Attrs(Passenger{
			PassengerID: req.PassengerID,
			Name:        req.Name,
			DateOfBirth: req.DateOfBirth,
			Nationality: req.Nationality,
			CompanyID:   companyID,
		}).
		FirstOrCreate(&passenger).Error
	return passenger, err
}

type PassengerRequest struct {
	PassengerID string `json:"passenger_id" validate:"required"`
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Nationality string `json:"nationality"`
}
