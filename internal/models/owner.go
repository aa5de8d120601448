package models

import "time"

// Owner is the contact record attached to a report's pet. One row is
// created per report; rows are removed when their last pet goes away.
type Owner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:255;not null" json:"fullName"`
	Phone    string `gorm:"size:30;not null" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`
	LineID   string `gorm:"size:100" json:"lineId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
