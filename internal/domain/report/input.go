package report

import (
	"strings"
	"time"

	"github.com/lostpaws/petfinder-api/internal/httperr"
	"github.com/lostpaws/petfinder-api/internal/models"
)

// Caller is the resolved identity attached to an authenticated request.
type Caller struct {
	ID       uint
	Role     models.Role
	Email    string
	FullName string
}

func (c Caller) IsAdmin() bool {
	return c.Role.IsAdmin()
}

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	UserID *uint

	OwnerName   string
	OwnerPhone  string
	OwnerEmail  string
	OwnerLineID string

	PetName     string
	Species     string
	Breed       string
	Color       string
	Sex         string
	AgeYears    *float64
	MicrochipID string
	SpecialMark string

	ReportType string
	Status     string
	DateLost   time.Time

	Province        string
	District        string
	LastSeenAddress string
	LastSeenLat     *float64
	LastSeenLng     *float64

	RewardAmount *float64
	Description  string

	// Opaque storage reference of the already-uploaded photo, if any.
	PhotoURL string
}

// Normalize applies the creation defaults before validation: missing
// status and type fall back to lost, missing sex to unknown.
func (in *CreateInput) Normalize() {
	if in.Status == "" {
		in.Status = string(StatusLost)
	}
	if in.ReportType == "" {
		in.ReportType = string(TypeLost)
	}
	if in.Sex == "" {
		in.Sex = string(SexUnknown)
	}
}

func (in *CreateInput) Validate() error {
	if strings.TrimSpace(in.Species) == "" {
		return httperr.ErrValidation("species_required", "species is required")
	}
	if in.DateLost.IsZero() {
		return httperr.ErrValidation("date_lost_required", "dateLost is required")
	}

	typ, err := ParseType(in.ReportType)
	if err != nil {
		return err
	}
	if _, err := ParseStatus(in.Status); err != nil {
		return err
	}
	if _, err := ParseSex(in.Sex); err != nil {
		return err
	}

	if typ == TypeLost && strings.TrimSpace(in.PetName) == "" {
		return httperr.ErrValidation("pet_name_required", "petName is required for lost reports")
	}

	return validateRanges(in.AgeYears, in.RewardAmount, in.LastSeenLat, in.LastSeenLng)
}

// ======================================================
// PARTIAL UPDATE
// ======================================================

// DetailsPatch carries the mutable pet/report columns. Nil means leave
// the column untouched.
type DetailsPatch struct {
	PetName     *string
	Species     *string
	Breed       *string
	Color       *string
	Sex         *string
	AgeYears    *float64
	MicrochipID *string
	SpecialMark *string

	ReportType *string
	Status     *string
	DateLost   *time.Time

	Province        *string
	District        *string
	LastSeenAddress *string
	LastSeenLat     *float64
	LastSeenLng     *float64

	RewardAmount *float64
	Description  *string
}

func (p *DetailsPatch) Validate() error {
	if p.Species != nil && strings.TrimSpace(*p.Species) == "" {
		return httperr.ErrValidation("species_required", "species cannot be empty")
	}
	if p.ReportType != nil {
		if _, err := ParseType(*p.ReportType); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if _, err := ParseStatus(*p.Status); err != nil {
			return err
		}
	}
	if p.Sex != nil {
		if _, err := ParseSex(*p.Sex); err != nil {
			return err
		}
	}
	return validateRanges(p.AgeYears, p.RewardAmount, p.LastSeenLat, p.LastSeenLng)
}

func validateRanges(age, reward, lat, lng *float64) error {
	if age != nil && *age < 0 {
		return httperr.ErrValidation("invalid_age", "ageYears must not be negative")
	}
	if reward != nil && *reward < 0 {
		return httperr.ErrValidation("invalid_reward", "rewardAmount must not be negative")
	}
	if lat != nil && (*lat < -90 || *lat > 90) {
		return httperr.ErrValidation("invalid_latitude", "lastSeenLat must be between -90 and 90")
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return httperr.ErrValidation("invalid_longitude", "lastSeenLng must be between -180 and 180")
	}
	return nil
}

// ======================================================
// READ
// ======================================================

// Filters are combined with AND; Search is a case-insensitive OR
// substring match across pet name, breed, color, description and
// special mark.
type Filters struct {
	District   string
	Province   string
	Species    string
	Status     string
	ReportType string
	Search     string
	UserID     *uint
}

type Summary struct {
	Total   int64 `json:"total"`
	Lost    int64 `json:"lost"`
	Found   int64 `json:"found"`
	Sighted int64 `json:"sighted"`
	Closed  int64 `json:"closed"`
}
