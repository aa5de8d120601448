package report

import (
	"context"

	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/models"
)

type GetReport struct {
	repo domain.Repository
}

func NewGetReport(repo domain.Repository) *GetReport {
	return &GetReport{repo: repo}
}

func (uc *GetReport) Execute(
	ctx context.Context,
	id uint,
) (*models.LostReport, error) {
	return uc.repo.FindByID(ctx, id)
}

type GetSummary struct {
	repo domain.Repository
}

func NewGetSummary(repo domain.Repository) *GetSummary {
	return &GetSummary{repo: repo}
}

func (uc *GetSummary) Execute(ctx context.Context) (*domain.Summary, error) {
	return uc.repo.Summary(ctx)
}
