package models

// Service is a sellable offering. Value is stored in cents.
type Service struct {
	Base

	Name         string `gorm:"column:service_name;size:100;not null" json:"service_name"`
	Value        int    `gorm:"column:service_value;not null" json:"service_value"`
	ExpectedTime string `gorm:"size:5;not null" json:"expected_time"`
	IsActive     bool   `gorm:"not null" json:"is_active"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Branches []Branch `gorm:"many2many:branchs_services;" json:"branchs,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
