package report

import (
	"context"

	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/models"
)

type ListReports struct {
	repo domain.Repository
}

func NewListReports(repo domain.Repository) *ListReports {
	return &ListReports{repo: repo}
}

func (uc *ListReports) Execute(
	ctx context.Context,
	filters domain.Filters,
) ([]models.LostReport, error) {
	return uc.repo.List(ctx, filters)
}

// ListMine narrows the listing to the caller's own reports.
type ListMyReports struct {
	repo domain.Repository
}

func NewListMyReports(repo domain.Repository) *ListMyReports {
	return &ListMyReports{repo: repo}
}

func (uc *ListMyReports) Execute(
	ctx context.Context,
	caller domain.Caller,
	filters domain.Filters,
) ([]models.LostReport, error) {
	filters.UserID = &caller.ID
	return uc.repo.List(ctx, filters)
}
