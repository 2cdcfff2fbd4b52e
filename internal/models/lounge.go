package models

import "gorm.io/datatypes"

type Lounge struct {
	BaseModel
	Name                 string         `gorm:"not null;index" json:"name"`
	Location             string         `gorm:"not null" json:"location"`
	Airport              string         `gorm:"not null;index" json:"airport"`
	Country              string         `gorm:"not null;index" json:"country"`
	Description          string         `gorm:"type:text" json:"description"`
	Price                float64        `gorm:"not null" json:"price"`
	ClassicDiscountPrice float64        `gorm:"not null" json:"classicDiscountPrice"`
	PremiumDiscountPrice float64        `gorm:"not null" json:"premiumDiscountPrice"`
	ImageURL             string         `json:"imageUrl,omitempty"`
	Amenities            datatypes.JSON `json:"amenities,omitempty"`

	// Relations
	Bookings []Booking `gorm:"foreignKey:LoungeID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
}

// PriceFor возвращает цену за гостя с учетом тарифа подписки
func (l *Lounge) PriceFor(subType SubscriptionType) float64 {
	switch subType {
	case SubscriptionTypeClassic:
		return l.ClassicDiscountPrice
	case SubscriptionTypePremium:
		return l.PremiumDiscountPrice
	default:
		return l.Price
	}
}
