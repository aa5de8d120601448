package report

import (
	"context"

	"github.com/lostpaws/petfinder-api/internal/audit"
	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/models"
)

type UpdateReportDetails struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateReportDetails(
	repo domain.Repository,
	audit audit.Sink,
) *UpdateReportDetails {
	return &UpdateReportDetails{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReportDetails) Execute(
	ctx context.Context,
	caller domain.Caller,
	reportID uint,
	patch domain.DetailsPatch,
) (*models.LostReport, error) {

	if err := assertCanMutate(ctx, uc.repo, caller, reportID); err != nil {
		return nil, err
	}

	rep, err := uc.repo.UpdateDetails(ctx, reportID, patch)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "report_details_updated",
		Entity:   "lost_report",
		EntityID: &rep.ID,
	})

	return rep, nil
}
