package models

import "time"

// ReferralSite is a partner site visitors can pick during intake.
// Name is not unique; DisplayName is what visitors see and what submissions record.
type ReferralSite struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	DisplayName string    `gorm:"size:255;not null" json:"display_name"`
	URL         string    `gorm:"size:512;not null" json:"url"`
	LogoURL     *string   `gorm:"size:512" json:"logo_url"`
	ButtonColor string    `gorm:"size:20;not null;default:'green'" json:"button_color"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ReferralSite) TableName() string { return "betting_sites" }

// Label is the name recorded on a submission for this site.
func (s *ReferralSite) Label() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	return s.Name
}
