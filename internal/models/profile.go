package models

import "github.com/jinzhu/gorm"

// Profile represents a household member. Identity itself lives with the
// external auth provider; this record only carries the app-facing details.
type Profile struct {
	gorm.Model
	UserID      string      `gorm:"column:user_id;unique_index" json:"user_id"`
	FamilyID    string      `gorm:"index" json:"family_id"`
	DisplayName string      `json:"display_name"`
	Email       string      `json:"email"`
	Dietary     StringSlice `gorm:"type:text" json:"dietary_preferences"`
	IsAdmin     bool        `json:"is_admin"`
}

// TableName sets the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
