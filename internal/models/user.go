package models

type User struct {
	Base

	Name     string  `gorm:"column:user_name;size:100;not null" json:"user_name"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Email    string  `gorm:"column:user_email;size:100;uniqueIndex;not null" json:"user_email"`
	Phone    *string `gorm:"column:phone_number;size:20;uniqueIndex" json:"phone_number"`

	Branches []Branch `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"branchs,omitempty"`
}

func (User) TableName() string {
	return "user"
}
