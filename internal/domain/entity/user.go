package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/supamart/pos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a cashier or admin account
type User struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Phone     string          `gorm:"size:50;unique;not null" json:"phone"`
	Email     string          `gorm:"size:255;unique;not null" json:"email"`
	Password  string          `gorm:"size:255;not null" json:"-"`
	Photo     string          `gorm:"size:255" json:"photo,omitempty"`
	Role      enum.UserRole   `gorm:"size:20;default:cashier" json:"role"`
	Status    enum.UserStatus `gorm:"size:20;default:active" json:"status"`
	Active    bool            `gorm:"default:true" json:"-"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == enum.UserRoleAdmin
}
