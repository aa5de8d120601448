package report

import (
	"context"

	"github.com/lostpaws/petfinder-api/internal/models"
)

type Repository interface {
	// -------- Reads --------
	List(
		ctx context.Context,
		filters Filters,
	) ([]models.LostReport, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.LostReport, error)

	Summary(
		ctx context.Context,
	) (*Summary, error)

	IsOwnedByUser(
		ctx context.Context,
		reportID uint,
		userID uint,
	) (bool, error)

	// -------- Writes --------
	Create(
		ctx context.Context,
		in CreateInput,
	) (*models.LostReport, error)

	UpdateStatus(
		ctx context.Context,
		id uint,
		status Status,
	) (*models.LostReport, error)

	UpdateDetails(
		ctx context.Context,
		id uint,
		patch DetailsPatch,
	) (*models.LostReport, error)

	Remove(
		ctx context.Context,
		id uint,
	) error
}
