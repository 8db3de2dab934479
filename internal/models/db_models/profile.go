package db_models

import "github.com/google/uuid"

// Profile carries the editable account details. Identity fields
// (username, email, role) stay on User.
type Profile struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	FirstName    string
	LastName     string
	File         string
	Location     string
	Tel          string
	Description  string
	WorkingHours string

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
