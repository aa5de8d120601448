package report

import (
	"context"

	"github.com/lostpaws/petfinder-api/internal/audit"
	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	userdomain "github.com/lostpaws/petfinder-api/internal/domain/user"
	"github.com/lostpaws/petfinder-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

type CreateReport struct {
	repo  domain.Repository
	users userdomain.Repository
	audit audit.Sink
}

func NewCreateReport(
	repo domain.Repository,
	users userdomain.Repository,
	audit audit.Sink,
) *CreateReport {
	return &CreateReport{
		repo:  repo,
		users: users,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute stamps the caller onto the report and fills any owner contact
// field the caller left blank from their own profile, then delegates to
// the transactional create.
func (uc *CreateReport) Execute(
	ctx context.Context,
	caller domain.Caller,
	in domain.CreateInput,
) (*models.LostReport, error) {

	if caller.ID != 0 {
		in.UserID = &caller.ID

		profile, err := uc.users.FindByID(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		if in.OwnerName == "" {
			in.OwnerName = profile.FullName
		}
		if in.OwnerPhone == "" {
			in.OwnerPhone = profile.Phone
		}
		if in.OwnerEmail == "" {
			in.OwnerEmail = profile.Email
		}
		if in.OwnerLineID == "" {
			in.OwnerLineID = profile.LineID
		}
	}

	rep, err := uc.repo.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "report_created",
		Entity:   "lost_report",
		EntityID: &rep.ID,
	})

	return rep, nil
}
