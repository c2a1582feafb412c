package models

type Branch struct {
	Base

	Name         string  `gorm:"column:branch_name;size:100;not null;index" json:"branch_name"`
	CNPJ         *string `gorm:"column:cnpj;size:14;uniqueIndex" json:"cnpj"`
	Street       string  `gorm:"size:150;not null" json:"street"`
	CEP          string  `gorm:"column:cep;size:8;not null" json:"cep"`
	City         string  `gorm:"size:100;not null;index" json:"city"`
	District     string  `gorm:"size:100;not null" json:"district"`
	LocalNumber  string  `gorm:"size:10;not null" json:"local_number"`
	Phone        *string `gorm:"column:branch_phone;size:20" json:"branch_phone"`
	Complements  string  `gorm:"size:100" json:"complements"`
	OpeningHours string  `gorm:"size:5;not null" json:"opening_hours"`
	ClosingHours string  `gorm:"size:5;not null" json:"closing_hours"`

	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`

	Clients  []Client  `gorm:"foreignKey:BranchID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"clients,omitempty"`
	Services []Service `gorm:"many2many:branchs_services;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services,omitempty"`
}

func (Branch) TableName() string {
	return "branchs"
}
