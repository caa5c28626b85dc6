package policy_test

import (
	"testing"

	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/policy"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func citizen(uid string, spam ...string) *models.User {
	return &models.User{
		UID:            uid,
		Email:          uid + "@example.com",
		Phone:          "555-" + uid,
		Role:           models.RoleCitizen,
		Region:         "Kochi",
		SpamComplaints: pq.StringArray(spam),
	}
}

func authority(region string) *models.User {
	return &models.User{
		UID:    "auth-1",
		Role:   models.RoleAuthority,
		Region: region,
	}
}

// TestIsSpammer_ThresholdBoundary verifies the flag flips exactly at the
// three-complaint threshold and is derived from the set size alone.
func TestIsSpammer_ThresholdBoundary(t *testing.T) {
	assert.False(t, policy.IsSpammer(citizen("u1")))
	assert.False(t, policy.IsSpammer(citizen("u1", "c1", "c2")))
	assert.True(t, policy.IsSpammer(citizen("u1", "c1", "c2", "c3")))
	assert.True(t, policy.IsSpammer(citizen("u1", "c1", "c2", "c3", "c4")))
	assert.False(t, policy.IsSpammer(nil), "missing profile is never a spammer")
}

func TestCanEditStatus(t *testing.T) {
	c := &models.Complaint{ID: "c1", Region: "Kochi"}

	tests := []struct {
		name   string
		viewer *models.User
		want   bool
	}{
		{"authority in matching region", authority("Kochi"), true},
		{"authority in other region", authority("Chennai"), false},
		{"citizen in matching region", citizen("u1"), false},
		{"case differs", authority("kochi"), false},
		{"nil viewer", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.CanEditStatus(tt.viewer, c))
		})
	}
}

// TestContactDisclosure_SpammerBeatsPerComplaint pins the branch order: an
// authority viewing a three-strikes spammer gets the profile contact even
// when the complaint itself carries opt-in contact info.
func TestContactDisclosure_SpammerBeatsPerComplaint(t *testing.T) {
	author := citizen("u1", "c1", "c2", "c3")
	c := &models.Complaint{
		ID:               "c4",
		UserUID:          "u1",
		Region:           "Kochi",
		ComplainantEmail: "per-complaint@example.com",
		ComplainantPhone: "000",
	}

	d := policy.ContactDisclosure("auth-1", authority("Kochi"), c, author)

	assert.Equal(t, policy.DisclosureSpammerProfile, d.Kind)
	assert.Equal(t, author.Email, d.Email)
	assert.Equal(t, author.Phone, d.Phone)
}

func TestContactDisclosure_AuthorityPerComplaint(t *testing.T) {
	author := citizen("u1")
	c := &models.Complaint{
		ID:               "c1",
		UserUID:          "u1",
		Region:           "Kochi",
		ComplainantEmail: "opted-in@example.com",
	}

	d := policy.ContactDisclosure("auth-1", authority("Kochi"), c, author)

	assert.Equal(t, policy.DisclosurePerComplaint, d.Kind)
	assert.Equal(t, "opted-in@example.com", d.Email)
	assert.Empty(t, d.Phone)
}

func TestContactDisclosure_SelfViewAndStranger(t *testing.T) {
	author := citizen("u1")
	c := &models.Complaint{
		ID:               "c1",
		UserUID:          "u1",
		ComplainantEmail: "me@example.com",
		ComplainantPhone: "123",
	}

	// The author sees their own disclosed contact.
	self := policy.ContactDisclosure("u1", author, c, author)
	assert.Equal(t, policy.DisclosurePerComplaint, self.Kind)
	assert.Equal(t, "me@example.com", self.Email)

	// An unrelated citizen sees nothing.
	stranger := policy.ContactDisclosure("u2", citizen("u2"), c, author)
	assert.Equal(t, policy.DisclosureNone, stranger.Kind)
	assert.Empty(t, stranger.Email)
}

// TestContactDisclosure_AnonymousDefault: no opt-in, no spam history —
// nobody gets contact info, authorities included.
func TestContactDisclosure_AnonymousDefault(t *testing.T) {
	author := citizen("u1")
	c := &models.Complaint{ID: "c1", UserUID: "u1", Region: "Kochi"}

	assert.Equal(t, policy.DisclosureNone, policy.ContactDisclosure("auth-1", authority("Kochi"), c, author).Kind)
	assert.Equal(t, policy.DisclosureNone, policy.ContactDisclosure("u1", author, c, author).Kind)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, policy.ValidStatus(models.StatusYetToLook))
	assert.True(t, policy.ValidStatus(models.StatusInProgress))
	assert.True(t, policy.ValidStatus(models.StatusResolved))
	assert.True(t, policy.ValidStatus(models.StatusSpam))
	assert.False(t, policy.ValidStatus("Closed"))
	assert.False(t, policy.ValidStatus(""))
	assert.False(t, policy.ValidStatus("spam"), "statuses are case-sensitive")
}
