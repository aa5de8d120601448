package models

import "time"

type LostReport struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Nullable so reports created before accounts existed keep working.
	UserID *uint `gorm:"index" json:"userId"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	PetID uint `gorm:"not null;index" json:"petId"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"pet"`

	DateLost        time.Time `json:"dateLost"`
	Province        string    `gorm:"size:100" json:"province"`
	District        string    `gorm:"size:100" json:"district"`
	LastSeenAddress string    `gorm:"size:255" json:"lastSeenAddress"`
	LastSeenLat     *float64  `json:"lastSeenLat"`
	LastSeenLng     *float64  `json:"lastSeenLng"`

	RewardAmount float64 `gorm:"default:0" json:"rewardAmount"`
	Status       string  `gorm:"size:20;default:'lost';index" json:"status"`
	ReportType   string  `gorm:"size:20;default:'lost';index" json:"reportType"`
	Description  string  `gorm:"size:5000" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
