package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/httperr"
	"github.com/lostpaws/petfinder-api/internal/models"
)

var errReportNotFound = httperr.ErrNotFound("report_not_found", "report not found")

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

// detailQuery joins pets and owners for filtering and preloads the full
// pet detail. Photos resolve through a single batched lookup keyed by
// pet id, never one query per report.
func (r *ReportGormRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.LostReport{}).
		Joins("JOIN pets ON pets.id = lost_reports.pet_id").
		Joins("JOIN owners ON owners.id = pets.owner_id").
		Preload("Pet.Owner").
		Preload("Pet.Photos")
}

func applyFilters(q *gorm.DB, f domain.Filters) *gorm.DB {
	if f.District != "" {
		q = q.Where("lost_reports.district = ?", f.District)
	}
	if f.Province != "" {
		q = q.Where("lost_reports.province = ?", f.Province)
	}
	if f.Species != "" {
		q = q.Where("pets.species = ?", f.Species)
	}
	if f.Status != "" {
		q = q.Where("lost_reports.status = ?", f.Status)
	}
	if f.ReportType != "" {
		q = q.Where("lost_reports.report_type = ?", f.ReportType)
	}
	if f.UserID != nil {
		q = q.Where("lost_reports.user_id = ?", *f.UserID)
	}
	if f.Search != "" {
		like := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(pets.name) LIKE ? OR LOWER(pets.breed) LIKE ? OR LOWER(pets.color) LIKE ? OR LOWER(lost_reports.description) LIKE ? OR LOWER(pets.special_mark) LIKE ?",
			like, like, like, like, like,
		)
	}
	return q
}

func (r *ReportGormRepository) List(
	ctx context.Context,
	filters domain.Filters,
) ([]models.LostReport, error) {

	var reports []models.LostReport
	err := applyFilters(r.detailQuery(ctx), filters).
		Order("lost_reports.created_at DESC, lost_reports.id DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.LostReport, error) {

	var report models.LostReport
	err := r.detailQuery(ctx).
		Where("lost_reports.id = ?", id).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportGormRepository) Summary(ctx context.Context) (*domain.Summary, error) {
	var s domain.Summary
	err := r.db.WithContext(ctx).
		Model(&models.LostReport{}).
		Select(`
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN report_type = 'lost' THEN 1 ELSE 0 END), 0) AS lost,
			COALESCE(SUM(CASE WHEN report_type = 'found' THEN 1 ELSE 0 END), 0) AS found,
			COALESCE(SUM(CASE WHEN report_type = 'sighted' THEN 1 ELSE 0 END), 0) AS sighted,
			COALESCE(SUM(CASE WHEN status = 'closed' THEN 1 ELSE 0 END), 0) AS closed`).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ReportGormRepository) IsOwnedByUser(
	ctx context.Context,
	reportID uint,
	userID uint,
) (bool, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LostReport{}).
		Where("id = ? AND user_id = ?", reportID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *ReportGormRepository) Create(
	ctx context.Context,
	in domain.CreateInput,
) (*models.LostReport, error) {

	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	reward := 0.0
	if in.RewardAmount != nil {
		reward = *in.RewardAmount
	}

	var reportID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner := models.Owner{
			FullName: in.OwnerName,
			Phone:    in.OwnerPhone,
			Email:    in.OwnerEmail,
			LineID:   in.OwnerLineID,
		}
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		pet := models.Pet{
			OwnerID:      owner.ID,
			Name:         in.PetName,
			Species:      in.Species,
			Breed:        in.Breed,
			Color:        in.Color,
			Sex:          in.Sex,
			AgeYears:     in.AgeYears,
			MicrochipID:  in.MicrochipID,
			SpecialMark:  in.SpecialMark,
			MainPhotoURL: in.PhotoURL,
		}
		if err := tx.Create(&pet).Error; err != nil {
			return err
		}

		// Only the photo uploaded at creation exists; it is the main one.
		if in.PhotoURL != "" {
			photo := models.PetPhoto{
				PetID:    pet.ID,
				PhotoURL: in.PhotoURL,
				IsMain:   true,
			}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}

		rep := models.LostReport{
			UserID:          in.UserID,
			PetID:           pet.ID,
			DateLost:        in.DateLost,
			Province:        in.Province,
			District:        in.District,
			LastSeenAddress: in.LastSeenAddress,
			LastSeenLat:     in.LastSeenLat,
			LastSeenLng:     in.LastSeenLng,
			RewardAmount:    reward,
			Status:          in.Status,
			ReportType:      in.ReportType,
			Description:     in.Description,
		}
		if err := tx.Create(&rep).Error; err != nil {
			return err
		}

		reportID = rep.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, reportID)
}

// --------------------------------------------------
// Updates
// --------------------------------------------------

func (r *ReportGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) (*models.LostReport, error) {

	res := r.db.WithContext(ctx).
		Model(&models.LostReport{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errReportNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *ReportGormRepository) UpdateDetails(
	ctx context.Context,
	id uint,
	patch domain.DetailsPatch,
) (*models.LostReport, error) {

	if err := patch.Validate(); err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rep models.LostReport
		if err := tx.Where("id = ?", id).First(&rep).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errReportNotFound
			}
			return err
		}

		petUpdates := map[string]any{}
		setStr(petUpdates, "name", patch.PetName)
		setStr(petUpdates, "species", patch.Species)
		setStr(petUpdates, "breed", patch.Breed)
		setStr(petUpdates, "color", patch.Color)
		setStr(petUpdates, "sex", patch.Sex)
		setStr(petUpdates, "microchip_id", patch.MicrochipID)
		setStr(petUpdates, "special_mark", patch.SpecialMark)
		if patch.AgeYears != nil {
			petUpdates["age_years"] = *patch.AgeYears
		}

		reportUpdates := map[string]any{}
		setStr(reportUpdates, "status", patch.Status)
		setStr(reportUpdates, "report_type", patch.ReportType)
		setStr(reportUpdates, "province", patch.Province)
		setStr(reportUpdates, "district", patch.District)
		setStr(reportUpdates, "last_seen_address", patch.LastSeenAddress)
		setStr(reportUpdates, "description", patch.Description)
		if patch.DateLost != nil {
			reportUpdates["date_lost"] = *patch.DateLost
		}
		if patch.LastSeenLat != nil {
			reportUpdates["last_seen_lat"] = *patch.LastSeenLat
		}
		if patch.LastSeenLng != nil {
			reportUpdates["last_seen_lng"] = *patch.LastSeenLng
		}
		if patch.RewardAmount != nil {
			reportUpdates["reward_amount"] = *patch.RewardAmount
		}

		if len(petUpdates) > 0 {
			if err := tx.Model(&models.Pet{}).
				Where("id = ?", rep.PetID).
				Updates(petUpdates).Error; err != nil {
				return err
			}
		}
		if len(reportUpdates) > 0 {
			if err := tx.Model(&models.LostReport{}).
				Where("id = ?", rep.ID).
				Updates(reportUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func setStr(updates map[string]any, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}

// --------------------------------------------------
// Remove
// --------------------------------------------------

// Remove deletes the report together with its pet and photos, then the
// owner when no other pet still references it. Everything runs in one
// transaction; the owner delete is a single conditional statement so
// the orphan check and the delete cannot be interleaved.
func (r *ReportGormRepository) Remove(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rep models.LostReport
		if err := tx.Where("id = ?", id).First(&rep).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errReportNotFound
			}
			return err
		}

		var pet models.Pet
		if err := tx.Where("id = ?", rep.PetID).First(&pet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errReportNotFound
			}
			return err
		}

		if err := tx.Where("pet_id = ?", pet.ID).
			Delete(&models.PetPhoto{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.LostReport{}, rep.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Pet{}, pet.ID).Error; err != nil {
			return err
		}

		return tx.Exec(
			"DELETE FROM owners WHERE id = ? AND NOT EXISTS (SELECT 1 FROM pets WHERE owner_id = ?)",
			pet.OwnerID, pet.OwnerID,
		).Error
	})
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
