package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OrderStatus string

const (
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCanceled   OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	return s == OrderInProgress || s == OrderCompleted || s == OrderCanceled
}

func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderInProgress, OrderCompleted, OrderCanceled}
}

// Order freezes the purchased tier at creation time. The copied fields
// are never re-read from the offer, so later edits leave orders intact.
type Order struct {
	BaseModel
	CustomerUserID     uuid.UUID `gorm:"type:uuid;index"`
	BusinessUserID     uuid.UUID `gorm:"type:uuid;index"`
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              int64
	Features           pq.StringArray `gorm:"type:text[]"`
	OfferType          OfferTier
	Status             OrderStatus `gorm:"index"`

	Customer User `gorm:"foreignKey:CustomerUserID;constraint:OnDelete:CASCADE"`
	Business User `gorm:"foreignKey:BusinessUserID;constraint:OnDelete:CASCADE"`
}
