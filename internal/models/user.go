package models

type User struct {
	BaseModel
	FirstName    string   `gorm:"not null" json:"firstName"`
	LastName     string   `gorm:"not null" json:"lastName"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	IsAdmin      bool     `gorm:"default:false" json:"isAdmin"`
	Role         UserRole `gorm:"type:varchar(10);default:'user'" json:"role"`

	// Relations
	Bookings      []Booking      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"bookings,omitempty"`
	Subscriptions []Subscription `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"subscriptions,omitempty"`
}

// HasAdminRights - единственный источник истины для проверки админа:
// подписанный токен строится из этих же полей
func (u *User) HasAdminRights() bool {
	return u.IsAdmin || u.Role == UserRoleAdmin
}
