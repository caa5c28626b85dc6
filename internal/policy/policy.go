// Package policy provides the core logic deciding who may edit a complaint,
// whose contact information is revealed, and when a complainant counts as a
// spammer. All functions are pure: they only read the records they are given
// and depend on nothing but the models package, so views and the write path
// can evaluate them over freshly fetched data.
package policy

import "greensentinel/backend/internal/models"

// SpamThreshold is the number of Spam-marked complaints after which a
// citizen's profile contact is revealed to authorities regardless of
// per-complaint anonymity choices.
const SpamThreshold = 3

// Disclosure kinds, in order of precedence.
const (
	DisclosureNone           = "none"
	DisclosureSpammerProfile = "spammer_profile"
	DisclosurePerComplaint   = "per_complaint"
)

// Disclosure says whether and which complainant contact a viewer gets to
// see. Kind "spammer_profile" carries the profile-level contact, kind
// "per_complaint" the contact disclosed for this one complaint.
type Disclosure struct {
	Kind  string `json:"kind"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// IsSpammer reports whether the profile has accumulated SpamThreshold or
// more Spam-marked complaints. Recomputed from the set on every call; the
// result must never be cached across a status transition.
func IsSpammer(profile *models.User) bool {
	if profile == nil {
		return false
	}
	return len(profile.SpamComplaints) >= SpamThreshold
}

// CanEditStatus reports whether the viewer may change the complaint's
// status: authorities only, and only inside their own region. Region
// comparison is exact and case-sensitive. This check gates the mutation
// itself, not just the rendering, so callers must evaluate it over freshly
// read records.
func CanEditStatus(viewer *models.User, complaint *models.Complaint) bool {
	if viewer == nil || complaint == nil {
		return false
	}
	return viewer.Role == models.RoleAuthority && viewer.Region == complaint.Region
}

// ContactDisclosure decides which complainant contact, if any, the viewer is
// shown. First match wins:
//  1. authority viewing a spammer: profile-level contact, overriding any
//     per-complaint anonymity choice
//  2. authority viewing a complaint with opt-in contact: the per-complaint
//     copy
//  3. the complainant viewing their own opt-in complaint: the per-complaint
//     copy
//  4. otherwise nothing; anonymity is the default
func ContactDisclosure(viewerUID string, viewer *models.User, complaint *models.Complaint, complainant *models.User) Disclosure {
	if viewer == nil || complaint == nil {
		return Disclosure{Kind: DisclosureNone}
	}

	if viewer.Role == models.RoleAuthority && IsSpammer(complainant) {
		return Disclosure{
			Kind:  DisclosureSpammerProfile,
			Email: complainant.Email,
			Phone: complainant.Phone,
		}
	}

	optedIn := complaint.ComplainantEmail != "" || complaint.ComplainantPhone != ""

	if viewer.Role == models.RoleAuthority && optedIn {
		return Disclosure{
			Kind:  DisclosurePerComplaint,
			Email: complaint.ComplainantEmail,
			Phone: complaint.ComplainantPhone,
		}
	}

	if viewerUID == complaint.UserUID && optedIn {
		return Disclosure{
			Kind:  DisclosurePerComplaint,
			Email: complaint.ComplainantEmail,
			Phone: complaint.ComplainantPhone,
		}
	}

	return Disclosure{Kind: DisclosureNone}
}

// ValidStatus reports whether s is one of the four complaint statuses.
func ValidStatus(s string) bool {
	switch s {
	case models.StatusYetToLook, models.StatusInProgress, models.StatusResolved, models.StatusSpam:
		return true
	}
	return false
}
