package branch

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type Fields struct {
	Name         string
	CNPJ         *string
	Street       string
	CEP          string
	City         string
	District     string
	LocalNumber  string
	Phone        *string
	Complements  string
	OpeningHours string
	ClosingHours string
	UserID       string
}

// New builds a branch row once its hours are well formed.
func New(f Fields, services []models.Service) (*models.Branch, error) {
	if err := CheckHours(&f.OpeningHours, &f.ClosingHours); err != nil {
		return nil, err
	}

	return &models.Branch{
		Name:         f.Name,
		CNPJ:         f.CNPJ,
		Street:       f.Street,
		CEP:          f.CEP,
		City:         f.City,
		District:     f.District,
		LocalNumber:  f.LocalNumber,
		Phone:        f.Phone,
		Complements:  f.Complements,
		OpeningHours: f.OpeningHours,
		ClosingHours: f.ClosingHours,
		UserID:       f.UserID,
		Services:     services,
	}, nil
}

// CheckHours validates the supplied hours and ignores nil ones.
func CheckHours(hours ...*string) error {
	for _, h := range hours {
		if h == nil {
			continue
		}
		if err := validators.CheckHour(*h); err != nil {
			return err
		}
	}
	return nil
}
