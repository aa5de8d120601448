package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostpaws/petfinder-api/internal/audit"
	domain "github.com/lostpaws/petfinder-api/internal/domain/report"
	"github.com/lostpaws/petfinder-api/internal/httperr"
	"github.com/lostpaws/petfinder-api/internal/models"
)

// --------------------------------------------------
// Fakes
// --------------------------------------------------

type fakeRepo struct {
	reports map[uint]*models.LostReport

	lastCreate  domain.CreateInput
	lastPatch   domain.DetailsPatch
	lastStatus  domain.Status
	removedID   uint
	lastFilters domain.Filters
}

func newFakeRepo(reports ...*models.LostReport) *fakeRepo {
	m := map[uint]*models.LostReport{}
	for _, r := range reports {
		m[r.ID] = r
	}
	return &fakeRepo{reports: m}
}

func (f *fakeRepo) List(_ context.Context, filters domain.Filters) ([]models.LostReport, error) {
	f.lastFilters = filters
	var out []models.LostReport
	for _, r := range f.reports {
		if filters.UserID != nil && (r.UserID == nil || *r.UserID != *filters.UserID) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (*models.LostReport, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, httperr.ErrNotFound("report_not_found", "report not found")
	}
	return r, nil
}

func (f *fakeRepo) Summary(context.Context) (*domain.Summary, error) {
	return &domain.Summary{Total: int64(len(f.reports))}, nil
}

func (f *fakeRepo) IsOwnedByUser(_ context.Context, reportID, userID uint) (bool, error) {
	r, ok := f.reports[reportID]
	if !ok {
		return false, nil
	}
	return r.UserID != nil && *r.UserID == userID, nil
}

func (f *fakeRepo) Create(_ context.Context, in domain.CreateInput) (*models.LostReport, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	f.lastCreate = in
	rep := &models.LostReport{ID: uint(len(f.reports) + 1), UserID: in.UserID}
	f.reports[rep.ID] = rep
	return rep, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uint, status domain.Status) (*models.LostReport, error) {
	r, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.lastStatus = status
	r.Status = string(status)
	return r, nil
}

func (f *fakeRepo) UpdateDetails(ctx context.Context, id uint, patch domain.DetailsPatch) (*models.LostReport, error) {
	r, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.lastPatch = patch
	return r, nil
}

func (f *fakeRepo) Remove(ctx context.Context, id uint) error {
	if _, err := f.FindByID(ctx, id); err != nil {
		return err
	}
	f.removedID = id
	delete(f.reports, id)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeUsers struct {
	users map[uint]*models.User
}

func (f *fakeUsers) FindByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found", "user not found")
	}
	return u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, httperr.ErrNotFound("user_not_found", "user not found")
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	f.users[u.ID] = u
	return nil
}

type captureSink struct {
	events []audit.Event
}

func (s *captureSink) Dispatch(ev audit.Event) {
	s.events = append(s.events, ev)
}

var _ audit.Sink = (*captureSink)(nil)

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func userCaller(id uint) domain.Caller {
	return domain.Caller{ID: id, Role: models.RoleUser}
}

func adminCaller(id uint) domain.Caller {
	return domain.Caller{ID: id, Role: models.RoleAdmin}
}

func ownedReport(id, userID uint) *models.LostReport {
	return &models.LostReport{ID: id, UserID: &userID, Status: "lost"}
}

func createInput() domain.CreateInput {
	return domain.CreateInput{
		PetName:  "Rex",
		Species:  "dog",
		DateLost: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func TestCreateStampsCallerAndFillsContact(t *testing.T) {
	repo := newFakeRepo()
	users := &fakeUsers{users: map[uint]*models.User{
		7: {ID: 7, FullName: "Somchai J.", Email: "somchai@example.com", Phone: "0812345678", LineID: "somchai_line"},
	}}
	sink := &captureSink{}
	uc := NewCreateReport(repo, users, sink)

	rep, err := uc.Execute(context.Background(), userCaller(7), createInput())
	require.NoError(t, err)

	require.NotNil(t, repo.lastCreate.UserID)
	assert.EqualValues(t, 7, *repo.lastCreate.UserID)
	assert.Equal(t, "Somchai J.", repo.lastCreate.OwnerName)
	assert.Equal(t, "0812345678", repo.lastCreate.OwnerPhone)
	assert.Equal(t, "somchai@example.com", repo.lastCreate.OwnerEmail)
	assert.Equal(t, "somchai_line", repo.lastCreate.OwnerLineID)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "report_created", sink.events[0].Action)
	assert.Equal(t, "lost_report", sink.events[0].Entity)
	require.NotNil(t, sink.events[0].EntityID)
	assert.Equal(t, rep.ID, *sink.events[0].EntityID)
}

func TestCreateKeepsExplicitContact(t *testing.T) {
	repo := newFakeRepo()
	users := &fakeUsers{users: map[uint]*models.User{
		7: {ID: 7, FullName: "Somchai J.", Phone: "0812345678"},
	}}
	uc := NewCreateReport(repo, users, &captureSink{})

	in := createInput()
	in.OwnerName = "Neighbour"
	in.OwnerPhone = "0299999999"

	_, err := uc.Execute(context.Background(), userCaller(7), in)
	require.NoError(t, err)

	assert.Equal(t, "Neighbour", repo.lastCreate.OwnerName)
	assert.Equal(t, "0299999999", repo.lastCreate.OwnerPhone)
}

func TestCreateValidationFailureEmitsNoAudit(t *testing.T) {
	repo := newFakeRepo()
	users := &fakeUsers{users: map[uint]*models.User{7: {ID: 7, FullName: "Somchai"}}}
	sink := &captureSink{}
	uc := NewCreateReport(repo, users, sink)

	in := createInput()
	in.Species = ""

	_, err := uc.Execute(context.Background(), userCaller(7), in)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Empty(t, sink.events)
}

// --------------------------------------------------
// List
// --------------------------------------------------

func TestListMineForcesCallerFilter(t *testing.T) {
	repo := newFakeRepo(ownedReport(1, 7), ownedReport(2, 8))
	uc := NewListMyReports(repo)

	// A crafted userId filter must not leak someone else's reports.
	stranger := uint(8)
	got, err := uc.Execute(context.Background(), userCaller(7), domain.Filters{UserID: &stranger})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.EqualValues(t, 1, got[0].ID)
	require.NotNil(t, repo.lastFilters.UserID)
	assert.EqualValues(t, 7, *repo.lastFilters.UserID)
}

// --------------------------------------------------
// Status update
// --------------------------------------------------

func TestUpdateStatusByOwner(t *testing.T) {
	repo := newFakeRepo(ownedReport(1, 7))
	sink := &captureSink{}
	uc := NewUpdateReportStatus(repo, sink)

	rep, err := uc.Execute(context.Background(), userCaller(7), 1, "closed")
	require.NoError(t, err)
	assert.Equal(t, "closed", rep.Status)

	require.Len(t, sink.events, 1)
	assert.Equal(t, "report_status_changed", sink.events[0].Action)
	assert.Equal(t, map[string]string{"status": "closed"}, sink.events[0].Metadata)
}

func TestUpdateStatusByAdminOnForeignReport(t *testing.T) {
	repo := newFakeRepo(ownedReport(1, 7))
	uc := NewUpdateReportStatus(repo, &captureSink{})

	rep, err := uc.Execute(context.Background(), adminCaller(99), 1, "found")
	require.NoError(t, err)
	assert.Equal(t, "found", rep.Status)
}

func TestUpdateStatusByStrangerForbidden(t *testing.T) {
	repo := newFakeRepo(ownedReport(1, 7))
	sink := &captureSink{}
	uc := NewUpdateReportStatus(repo, sink)

	_, err := uc.Execute(context.Background(), userCaller(8), 1, "closed")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	assert.Empty(t, sink.events)
}

func TestUpdateStatusMissingReportIsNotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateReportStatus(repo, &captureSink{})

	// Not found wins over forbidden for a non-admin caller.
	_, err := uc.Execute(context.Background(), userCaller(8), 42, "closed")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	repo := newFakeRepo(ownedReport(1, 7))
	uc := NewUpdateReportStatus(repo, &captureSink{})

	_, err := uc.Execute(context.Background(), userCaller(7), 1, "vanished")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

// --------------------------------------------------
// Details update
// --------------------------------------------------

func TestUpdateDetailsByOwner(t *testing.T) {
	repo := newFakeRepo(ownedReport(1, 7))
	sink := &captureSink{}
	uc := NewUpdateReportDetails(repo, sink)

	breed := "Shiba"
	_, err := uc.Execute(context.Background(), userCaller(7), 1, domain.DetailsPatch{Breed: &breed})
	require.NoError(t, err)

	require.NotNil(t, repo.lastPatch.Breed)
	assert.Equal(t, "Shiba", *repo.lastPatch.Breed)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "report_details_updated", sink.events[0].Action)
}

func TestUpdateDetailsByStrangerForbidden(t *testing.T) {
	repo := newFakeRepo(ownedReport(1, 7))
	uc := NewUpdateReportDetails(repo, &captureSink{})

	breed := "Shiba"
	_, err := uc.Execute(context.Background(), userCaller(8), 1, domain.DetailsPatch{Breed: &breed})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

// --------------------------------------------------
// Remove
// --------------------------------------------------

func TestRemoveRequiresAdmin(t *testing.T) {
	repo := newFakeRepo(ownedReport(1, 7))
	sink := &captureSink{}
	uc := NewRemoveReport(repo, sink)

	// Even the report owner may not delete.
	err := uc.Execute(context.Background(), userCaller(7), 1)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	assert.Empty(t, sink.events)

	err = uc.Execute(context.Background(), adminCaller(99), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, repo.removedID)
	require.Len(t, sink.events, 1)
	assert.Equal(t, "report_deleted", sink.events[0].Action)
}

func TestRemoveMissingReport(t *testing.T) {
	repo := newFakeRepo()
	sink := &captureSink{}
	uc := NewRemoveReport(repo, sink)

	err := uc.Execute(context.Background(), adminCaller(99), 42)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.Empty(t, sink.events)
}
