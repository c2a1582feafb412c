package offering

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type Fields struct {
	Name         string
	Value        int
	ExpectedTime string
	IsActive     *bool
	UserID       string
}

// New builds a service row. IsActive defaults to true.
func New(f Fields) (*models.Service, error) {
	if err := CheckExpectedTime(f.ExpectedTime); err != nil {
		return nil, err
	}

	active := true
	if f.IsActive != nil {
		active = *f.IsActive
	}

	return &models.Service{
		Name:         f.Name,
		Value:        f.Value,
		ExpectedTime: f.ExpectedTime,
		IsActive:     active,
		UserID:       f.UserID,
	}, nil
}

func CheckExpectedTime(v string) error {
	return validators.CheckHour(v)
}
