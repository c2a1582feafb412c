package models

type UserPhoto struct {
	Base

	OriginalName string `gorm:"size:255;not null;index" json:"original_name"`
	Size         int64  `gorm:"not null" json:"size"`
	Path         string `gorm:"size:512;not null" json:"path"`
	URL          string `gorm:"column:url;type:text;not null" json:"url"`

	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_user_photo_owner,where:deleted_at IS NULL" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
}

func (UserPhoto) TableName() string {
	return "userPhoto"
}
