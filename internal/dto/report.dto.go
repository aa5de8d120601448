package dto

import (
	"time"

	"github.com/lostpaws/petfinder-api/internal/models"
)

// URLResolver maps a stored photo key to a public URL. Identity is fine
// when no object store is configured.
type URLResolver func(storedKey string) string

type OwnerDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LineID   string `json:"lineId"`
}

type PetDTO struct {
	ID           uint     `json:"id"`
	OwnerID      uint     `json:"ownerId"`
	Name         string   `json:"name"`
	Species      string   `json:"species"`
	Breed        string   `json:"breed"`
	Color        string   `json:"color"`
	Sex          string   `json:"sex"`
	AgeYears     *float64 `json:"ageYears"`
	MicrochipID  string   `json:"microchipId"`
	SpecialMark  string   `json:"specialMark"`
	MainPhotoURL string   `json:"mainPhotoUrl"`
}

type PetPhotoDTO struct {
	ID        uint      `json:"id"`
	PetID     uint      `json:"petId"`
	PhotoURL  string    `json:"photoUrl"`
	IsMain    bool      `json:"isMain"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportDTO flattens the nested associations into the wire shape the
// clients expect: pet, owner and photos side by side on the report.
type ReportDTO struct {
	ID              uint      `json:"id"`
	UserID          *uint     `json:"userId"`
	PetID           uint      `json:"petId"`
	DateLost        time.Time `json:"dateLost"`
	Province        string    `json:"province"`
	District        string    `json:"district"`
	LastSeenAddress string    `json:"lastSeenAddress"`
	LastSeenLat     *float64  `json:"lastSeenLat"`
	LastSeenLng     *float64  `json:"lastSeenLng"`
	RewardAmount    float64   `json:"rewardAmount"`
	Status          string    `json:"status"`
	ReportType      string    `json:"reportType"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Pet    PetDTO        `json:"pet"`
	Owner  OwnerDTO      `json:"owner"`
	Photos []PetPhotoDTO `json:"photos"`
}

func NewReportDTO(r models.LostReport, resolve URLResolver) ReportDTO {
	photos := make([]PetPhotoDTO, 0, len(r.Pet.Photos))
	for _, p := range r.Pet.Photos {
		photos = append(photos, PetPhotoDTO{
			ID:        p.ID,
			PetID:     p.PetID,
			PhotoURL:  resolve(p.PhotoURL),
			IsMain:    p.IsMain,
			CreatedAt: p.CreatedAt,
		})
	}

	return ReportDTO{
		ID:              r.ID,
		UserID:          r.UserID,
		PetID:           r.PetID,
		DateLost:        r.DateLost,
		Province:        r.Province,
		District:        r.District,
		LastSeenAddress: r.LastSeenAddress,
		LastSeenLat:     r.LastSeenLat,
		LastSeenLng:     r.LastSeenLng,
		RewardAmount:    r.RewardAmount,
		Status:          r.Status,
		ReportType:      r.ReportType,
		Description:     r.Description,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Pet: PetDTO{
			ID:           r.Pet.ID,
			OwnerID:      r.Pet.OwnerID,
			Name:         r.Pet.Name,
			Species:      r.Pet.Species,
			Breed:        r.Pet.Breed,
			Color:        r.Pet.Color,
			Sex:          r.Pet.Sex,
			AgeYears:     r.Pet.AgeYears,
			MicrochipID:  r.Pet.MicrochipID,
			SpecialMark:  r.Pet.SpecialMark,
			MainPhotoURL: resolve(r.Pet.MainPhotoURL),
		},
		Owner: OwnerDTO{
			ID:       r.Pet.Owner.ID,
			FullName: r.Pet.Owner.FullName,
			Phone:    r.Pet.Owner.Phone,
			Email:    r.Pet.Owner.Email,
			LineID:   r.Pet.Owner.LineID,
		},
		Photos: photos,
	}
}

func NewReportList(reports []models.LostReport, resolve URLResolver) []ReportDTO {
	out := make([]ReportDTO, 0, len(reports))
	for _, r := range reports {
		out = append(out, NewReportDTO(r, resolve))
	}
	return out
}
