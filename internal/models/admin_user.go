package models

import "time"

// AdminUser authorizes one identity for the back office. No row means no access.
type AdminUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex;size:36;not null" json:"user_id"`
	Role      string    `gorm:"size:20;not null;default:'admin'" json:"role"` // admin | moderator
	CreatedAt time.Time `json:"created_at"`

	Identity *Identity `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"identity,omitempty"`
}

func (AdminUser) TableName() string { return "admin_users" }
