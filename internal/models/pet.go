package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint  `gorm:"not null;index" json:"ownerId"`
	Owner   Owner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"owner"`

	Name        string   `gorm:"size:100" json:"name"`
	Species     string   `gorm:"size:50;not null" json:"species"`
	Breed       string   `gorm:"size:100" json:"breed"`
	Color       string   `gorm:"size:100" json:"color"`
	Sex         string   `gorm:"size:10;default:'unknown'" json:"sex"`
	AgeYears    *float64 `json:"ageYears"`
	MicrochipID string   `gorm:"size:100" json:"microchipId"`
	SpecialMark string   `gorm:"size:255" json:"specialMark"`

	MainPhotoURL string     `gorm:"size:512" json:"mainPhotoUrl"`
	Photos       []PetPhoto `gorm:"foreignKey:PetID" json:"photos"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PetPhoto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID    uint   `gorm:"not null;index" json:"petId"`
	PhotoURL string `gorm:"size:512;not null" json:"photoUrl"`
	IsMain   bool   `gorm:"default:false" json:"isMain"`

	CreatedAt time.Time `json:"createdAt"`
}
