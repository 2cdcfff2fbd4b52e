package dto

// CreateLoungeRequest - создание зала (admin)
type CreateLoungeRequest struct {
	Name                 string   `json:"name" validate:"required"`
	Location             string   `json:"location" validate:"required"`
	Airport              string   `json:"airport" validate:"required"`
	Country              string   `json:"country" validate:"required"`
	Description          string   `json:"description,omitempty"`
	Price                float64  `json:"price" validate:"required,gte=0"`
	ClassicDiscountPrice float64  `json:"classicDiscountPrice" validate:"gte=0"`
	PremiumDiscountPrice float64  `json:"premiumDiscountPrice" validate:"gte=0"`
	ImageURL             string   `json:"imageUrl,omitempty"`
	Amenities            []string `json:"amenities,omitempty"`
}

// UpdateLoungeRequest - частичное обновление зала
type UpdateLoungeRequest struct {
	Name                 *string  `json:"name,omitempty"`
	Location             *string  `json:"location,omitempty"`
	Airport              *string  `json:"airport,omitempty"`
	Country              *string  `json:"country,omitempty"`
	Description          *string  `json:"description,omitempty"`
	Price                *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	ClassicDiscountPrice *float64 `json:"classicDiscountPrice,omitempty" validate:"omitempty,gte=0"`
	PremiumDiscountPrice *float64 `json:"premiumDiscountPrice,omitempty" validate:"omitempty,gte=0"`
	ImageURL             *string  `json:"imageUrl,omitempty"`
	Amenities            []string `json:"amenities,omitempty"`
}

// ListLoungesQuery - фильтры GET /lounges
type ListLoungesQuery struct {
	Query   string `form:"query"`
	Airport string `form:"airport"`
	Country string `form:"country"`
}

// LoungeAnalytics - сводка по каталогу для админ-дашборда
type LoungeAnalytics struct {
	TotalLounges     int64        `json:"totalLounges"`
	LoungesByCountry []GroupCount `json:"loungesByCountry"`
	LoungesByAirport []GroupCount `json:"loungesByAirport"`
}

// GroupCount - агрегат "значение -> количество"
type GroupCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// LoungeStats - статистика по конкретному залу
type LoungeStats struct {
	LoungeID          string `json:"loungeId"`
	LoungeName        string `json:"loungeName"`
	TotalBookings     int64  `json:"totalBookings"`
	CompletedBookings int64  `json:"completedBookings"`
	CancelledBookings int64  `json:"cancelledBookings"`
}
