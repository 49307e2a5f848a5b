package recruitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfficeIDAndRoles(t *testing.T) {
	assert.Equal(t, "1", OfficeID(3))
	assert.Equal(t, "2", OfficeID(1))
	assert.Equal(t, "3", OfficeID(5))

	assert.Equal(t, "super_admin", MapRole("superadmin"))
	assert.Equal(t, "admin", MapRole("admin"))
	assert.Equal(t, "employee", MapRole("consultant"))
	assert.Equal(t, "employee", MapRole("employer"))
	assert.Equal(t, "employee", MapRole("candidate"))
}

func TestUserViews(t *testing.T) {
	store := loadFixtures(t)

	views := store.UserViews()
	require.Len(t, views, 3)
	assert.Equal(t, UserView{
		ID:        "2",
		Name:      "Bo Ss",
		Email:     "boss@example.com",
		Role:      "super_admin",
		OfficeID:  "3",
		CreatedAt: "2024-01-02T10:00:00",
		UpdatedAt: "2024-01-03T10:00:00",
		LastLogin: "2024-02-01T08:00:00",
	}, views[1])
	assert.Equal(t, "super_admin", views[1].StringField(FieldRole))

	_, err := store.UserView("abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCandidateViews(t *testing.T) {
	store := loadFixtures(t)

	views := store.CandidateViews()
	require.Len(t, views, 1, "candidates without a user are skipped")

	got := views[0]
	assert.Equal(t, "10", got.ID)
	assert.Equal(t, "Backend Engineer", got.Position)
	assert.Equal(t, []string{"Go", "SQL", "Skill-99"}, got.Tags)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "2", got.OfficeID)
	assert.Equal(t, "user-2", got.AssignedTo)
	require.NotNil(t, got.CVURL)
	assert.Equal(t, "https://cv.test/ann.pdf", *got.CVURL)

	_, err := store.CandidateView("11")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobViews(t *testing.T) {
	store := loadFixtures(t)

	views := store.JobViews()
	require.Len(t, views, 2)

	goJob := views[0]
	assert.Equal(t, "Acme", goJob.CompanyName)
	require.NotNil(t, goJob.SalaryRange)
	assert.Equal(t, "80,000 - 120,000", *goJob.SalaryRange)
	assert.Equal(t, "Remote", goJob.Location)
	assert.Equal(t, "open", goJob.Status)
	assert.Equal(t, 4, goJob.Candidates)
	assert.Equal(t, "7", goJob.StringField(FieldCompany))

	analyst := views[1]
	assert.Equal(t, "Company 9", analyst.CompanyName, "unknown employers fall back to a generated name")
	assert.Equal(t, "closed", analyst.Status)
	assert.Nil(t, analyst.SalaryRange)
	assert.Nil(t, analyst.Deadline)
	assert.Equal(t, "2024-01-01", analyst.CreatedAt)
	assert.Equal(t, 6, analyst.Candidates)
	assert.Equal(t, []string{}, analyst.Requirements)
}

func TestCompanyViews(t *testing.T) {
	store := loadFixtures(t)

	views := store.CompanyViews()
	require.Len(t, views, 1)
	assert.Equal(t, "comp-7", views[0].ID)
	assert.Equal(t, 1, views[0].OpenPositions, "only jobs with status open count")

	for _, id := range []string{"comp-7", "7"} {
		v, err := store.CompanyView(id)
		require.NoError(t, err)
		assert.Equal(t, "Acme", v.Name)
	}

	_, err := store.CompanyView("comp-8")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSkillViews(t *testing.T) {
	store := loadFixtures(t)

	v, err := store.SkillView("1")
	require.NoError(t, err)
	assert.Equal(t, "Go", v.Name)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, v.Color)
	assert.Equal(t, SkillColor("Go"), v.Color)
	assert.Len(t, store.SkillViews(), 2)
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", groupThousands(0))
	assert.Equal(t, "999", groupThousands(999))
	assert.Equal(t, "1,000", groupThousands(1000))
	assert.Equal(t, "1,234,567", groupThousands(1234567))
	assert.Equal(t, "-12,000", groupThousands(-12000))
}
