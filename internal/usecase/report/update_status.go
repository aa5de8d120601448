package report

import (
	"context"

	"github.com/lostpaws/petfinder-api/internal/audit"
	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/httperr"
	"github.com/lostpaws/petfinder-api/internal/models"
)

type UpdateReportStatus struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewUpdateReportStatus(
	repo domain.Repository,
	audit audit.Sink,
) *UpdateReportStatus {
	return &UpdateReportStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReportStatus) Execute(
	ctx context.Context,
	caller domain.Caller,
	reportID uint,
	status string,
) (*models.LostReport, error) {

	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	if err := assertCanMutate(ctx, uc.repo, caller, reportID); err != nil {
		return nil, err
	}

	rep, err := uc.repo.UpdateStatus(ctx, reportID, parsed)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "report_status_changed",
		Entity:   "lost_report",
		EntityID: &rep.ID,
		Metadata: map[string]string{"status": string(parsed)},
	})

	return rep, nil
}

// assertCanMutate lets the report's owning user or an admin through.
// The ownership check hits the repository so a missing report surfaces
// as not found before any forbidden decision.
func assertCanMutate(
	ctx context.Context,
	repo domain.Repository,
	caller domain.Caller,
	reportID uint,
) error {

	if caller.IsAdmin() {
		return nil
	}

	owned, err := repo.IsOwnedByUser(ctx, reportID, caller.ID)
	if err != nil {
		return err
	}
	if !owned {
		if _, err := repo.FindByID(ctx, reportID); err != nil {
			return err
		}
		return httperr.ErrForbidden("not_report_owner", "only the report owner or an admin may modify this report")
	}
	return nil
}
