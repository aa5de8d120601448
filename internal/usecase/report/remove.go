package report

import (
	"context"

	"github.com/lostpaws/petfinder-api/internal/audit"
	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/httperr"
)

type RemoveReport struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewRemoveReport(
	repo domain.Repository,
	audit audit.Sink,
) *RemoveReport {
	return &RemoveReport{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RemoveReport) Execute(
	ctx context.Context,
	caller domain.Caller,
	reportID uint,
) error {

	if !caller.IsAdmin() {
		return httperr.ErrForbidden("admin_only", "only an admin may delete reports")
	}

	if err := uc.repo.Remove(ctx, reportID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "report_deleted",
		Entity:   "lost_report",
		EntityID: &reportID,
	})

	return nil
}
