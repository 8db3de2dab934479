package db_models

import "github.com/google/uuid"

const (
	RatingMin = 0
	RatingMax = 5
)

type Review struct {
	BaseModel
	BusinessUserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviewer_business"`
	ReviewerID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviewer_business"`
	Rating         int
	Description    string

	Business User `gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
	Reviewer User `gorm:"foreignKey:ReviewerID;constraint:OnDelete:CASCADE"`
}
