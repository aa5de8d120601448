package user

import (
	"context"

	"github.com/lostpaws/petfinder-api/internal/models"
)

type Repository interface {
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	Create(
		ctx context.Context,
		u *models.User,
	) error
}
