package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lostpaws/petfinder-api/internal/httperr"
)

func validInput() CreateInput {
	return CreateInput{
		OwnerName:  "Somchai J.",
		OwnerPhone: "0812345678",
		PetName:    "Rex",
		Species:    "dog",
		DateLost:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNormalizeDefaults(t *testing.T) {
	in := validInput()
	in.Normalize()

	assert.Equal(t, "lost", in.Status)
	assert.Equal(t, "lost", in.ReportType)
	assert.Equal(t, "unknown", in.Sex)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	in := validInput()
	in.Status = "found"
	in.ReportType = "sighted"
	in.Sex = "female"
	in.Normalize()

	assert.Equal(t, "found", in.Status)
	assert.Equal(t, "sighted", in.ReportType)
	assert.Equal(t, "female", in.Sex)
}

func TestCreateInputValidate(t *testing.T) {
	negative := -1.0
	badLat := 90.5
	badLng := -180.5

	tests := []struct {
		name     string
		mutate   func(*CreateInput)
		wantCode string
	}{
		{"missing species", func(in *CreateInput) { in.Species = " " }, "species_required"},
		{"missing date", func(in *CreateInput) { in.DateLost = time.Time{} }, "date_lost_required"},
		{"lost without pet name", func(in *CreateInput) { in.PetName = "" }, "pet_name_required"},
		{"unknown report type", func(in *CreateInput) { in.ReportType = "stolen" }, "invalid_report_type"},
		{"unknown status", func(in *CreateInput) { in.Status = "gone" }, "invalid_status"},
		{"unknown sex", func(in *CreateInput) { in.Sex = "n/a" }, "invalid_sex"},
		{"negative age", func(in *CreateInput) { in.AgeYears = &negative }, "invalid_age"},
		{"negative reward", func(in *CreateInput) { in.RewardAmount = &negative }, "invalid_reward"},
		{"latitude out of range", func(in *CreateInput) { in.LastSeenLat = &badLat }, "invalid_latitude"},
		{"longitude out of range", func(in *CreateInput) { in.LastSeenLng = &badLng }, "invalid_longitude"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Normalize()
			tc.mutate(&in)

			err := in.Validate()
			require.Error(t, err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))

			var herr *httperr.Error
			require.ErrorAs(t, err, &herr)
			assert.Equal(t, tc.wantCode, herr.Code)
		})
	}
}

func TestValidateAllowsSightedWithoutPetName(t *testing.T) {
	in := validInput()
	in.PetName = ""
	in.ReportType = "sighted"
	in.Normalize()

	require.NoError(t, in.Validate())
}

func TestValidateAcceptsBoundaryCoordinates(t *testing.T) {
	lat, lng := 90.0, -180.0
	in := validInput()
	in.LastSeenLat = &lat
	in.LastSeenLng = &lng
	in.Normalize()

	require.NoError(t, in.Validate())
}

func TestDetailsPatchValidate(t *testing.T) {
	empty := "  "
	badStatus := "vanished"
	badReward := -5.0

	t.Run("empty patch is valid", func(t *testing.T) {
		p := DetailsPatch{}
		require.NoError(t, p.Validate())
	})

	t.Run("species cannot be blanked", func(t *testing.T) {
		p := DetailsPatch{Species: &empty}
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})

	t.Run("status must parse", func(t *testing.T) {
		p := DetailsPatch{Status: &badStatus}
		require.Error(t, p.Validate())
	})

	t.Run("ranges apply to patches too", func(t *testing.T) {
		p := DetailsPatch{RewardAmount: &badReward}
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	})
}
