package models

import "time"

type Subscription struct {
	BaseModel
	UserID                  string           `gorm:"type:varchar(36);not null;index" json:"userId"`
	Type                    SubscriptionType `gorm:"type:varchar(10);not null" json:"type"`
	StartDate               time.Time        `gorm:"not null" json:"startDate"`
	EndDate                 time.Time        `gorm:"not null" json:"endDate"`
	Price                   float64          `gorm:"not null" json:"price"`
	IsActive                bool             `gorm:"default:true;index" json:"isActive"`
	PaymentID               string           `json:"paymentId,omitempty"`
	IsPaid                  bool             `gorm:"default:false" json:"isPaid"`
	HasUsedFreeLoungeAccess bool             `gorm:"default:false" json:"hasUsedFreeLoungeAccess"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Expired - true, если срок действия подписки вышел
func (s *Subscription) Expired(now time.Time) bool {
	return !s.EndDate.After(now)
}

// SubscriptionTransaction - append-only журнал платежей по подпискам.
// Используется для истории; текущее состояние выводится запросом
// по таблице subscriptions, а не из журнала.
type SubscriptionTransaction struct {
	BaseModel
	UserID           string            `gorm:"type:varchar(36);not null;index" json:"userId"`
	SubscriptionType SubscriptionType  `gorm:"type:varchar(10);not null" json:"subscriptionType"`
	Amount           float64           `gorm:"not null" json:"amount"`
	PaymentMethod    string            `gorm:"not null" json:"paymentMethod"`
	TransactionDate  time.Time         `gorm:"not null;index" json:"transactionDate"`
	StartDate        time.Time         `gorm:"not null" json:"startDate"`
	EndDate          time.Time         `gorm:"not null" json:"endDate"`
	Status           TransactionStatus `gorm:"type:varchar(10);default:'pending'" json:"status"`
	Notes            string            `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
