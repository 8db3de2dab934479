package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type OfferTier string

const (
	TierBasic    OfferTier = "basic"
	TierStandard OfferTier = "standard"
	TierPremium  OfferTier = "premium"
)

func (t OfferTier) Valid() bool {
	return t == TierBasic || t == TierStandard || t == TierPremium
}

// Tiers lists every tier an offer must carry, exactly once each.
func Tiers() []OfferTier {
	return []OfferTier{TierBasic, TierStandard, TierPremium}
}

type Offer struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Image       *string
	Description string

	// Cached aggregates over Details, recomputed on every detail write.
	MinPrice        int64
	MinDeliveryTime int

	User    User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Details []Detail `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE"`
}

type Detail struct {
	BaseModel
	OfferID            uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_offer_tier"`
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              int64
	Features           pq.StringArray `gorm:"type:text[]"`
	OfferType          OfferTier      `gorm:"uniqueIndex:idx_offer_tier"`
}
