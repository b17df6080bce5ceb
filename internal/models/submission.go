package models

import "time"

// Submission is one captured lead from the public intake flow.
type Submission struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	MobileNumber    string    `gorm:"size:10;not null;index" json:"mobile_number"`
	SelectedWebsite string    `gorm:"size:255;not null" json:"selected_website"`
	Status          *string   `gorm:"size:20;default:'pending'" json:"status"` // pending | contacted
	SubmittedAt     time.Time `gorm:"not null;index" json:"submitted_at"`
}

func (Submission) TableName() string { return "user_submissions" }

// StatusValue returns the status or "" when unset.
func (s *Submission) StatusValue() string {
	if s.Status == nil {
		return ""
	}
	return *s.Status
}
