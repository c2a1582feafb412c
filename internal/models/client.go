package models

// Client is an end customer registered under a branch.
type Client struct {
	Base

	Name      string `gorm:"column:client_name;size:100;not null;index" json:"client_name"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	BirthDate string `gorm:"size:10;not null" json:"birth_date"`
	Phone     string `gorm:"column:client_phone;size:20" json:"client_phone"`
	IsActive  bool   `gorm:"not null" json:"is_active"`

	BranchID string  `gorm:"type:uuid;not null;index" json:"branch_id"`
	Branch   *Branch `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"branch,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}
