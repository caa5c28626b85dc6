// Package complaint provides the business operations on complaints:
// assembling a submission, building a policy-checked detail view, and
// applying status transitions together with the author's spam-set upkeep.
package complaint

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"greensentinel/backend/internal/catalog"
	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/policy"
	"greensentinel/backend/internal/storage"
)

// ErrMissingType is returned when a submission has no or an unknown type.
var ErrMissingType = errors.New("complaint type is required")

// ErrMissingAddress is returned when a submission's address is empty after
// trimming.
var ErrMissingAddress = errors.New("incident address is required")

// ErrInvalidStatus is returned for a status outside the fixed set.
var ErrInvalidStatus = errors.New("invalid complaint status")

// ErrNotAllowed is returned when the viewer fails the edit gate at the
// write boundary.
var ErrNotAllowed = errors.New("not allowed to edit this complaint's status")

// ErrPartialTransition is returned when the status write landed but the
// spam-set write failed and the compensating rollback failed too, leaving
// the complaint and the author's spam set inconsistent.
var ErrPartialTransition = errors.New("partial status transition: spam set out of sync")

// View is everything the detail page needs: the record plus the policy
// outputs evaluated for the current viewer.
type View struct {
	Complaint       *models.Complaint `json:"complaint"`
	CanEditStatus   bool              `json:"canEditStatus"`
	Disclosure      policy.Disclosure `json:"disclosure"`
	AuthorIsSpammer bool              `json:"authorIsSpammer"`
}

// TransitionResult reports the outcome of a status change. Changed is false
// for a no-op (new status equal to the old one).
type TransitionResult struct {
	Changed         bool   `json:"changed"`
	Status          string `json:"status"`
	AuthorIsSpammer bool   `json:"authorIsSpammer"`
}

// Service handles the business logic for complaints.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new complaint service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// Submit assembles and persists a new complaint for the given author.
// The address must be non-empty after trimming and the type one of the
// fixed set; everything else is accepted as-is. Contact info is attached
// only when the author opted to reveal their identity for this complaint.
func (s *Service) Submit(author *models.User, req *models.SubmitComplaintRequest) (*models.Complaint, error) {
	if req.Type == "" || !catalog.ValidType(req.Type) {
		return nil, ErrMissingType
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, ErrMissingAddress
	}

	c := &models.Complaint{
		UserUID:           author.UID,
		Type:              req.Type,
		Status:            models.StatusYetToLook,
		Address:           address,
		Description:       strings.TrimSpace(req.Description),
		Region:            author.Region,
		SpecificQuestions: catalog.FilterAnswers(req.Type, req.SpecificAnswers),
	}
	if req.RevealIdentity {
		c.ComplainantEmail = author.Email
		c.ComplainantPhone = author.Phone
	}

	if err := s.Storage.CreateComplaint(c); err != nil {
		return nil, err
	}

	if err := s.Storage.PublishComplaintEvent(models.ComplaintEvent{
		Kind:        models.EventComplaintCreated,
		ComplaintID: c.ID,
		Type:        c.Type,
		Status:      c.Status,
		Region:      c.Region,
		Address:     c.Address,
	}); err != nil {
		// The complaint is stored; a lost feed event only delays the list
		// refresh until the next poll.
		log.Printf("WARNING: Failed to publish created event for complaint %s: %v", c.ID, err)
	}

	return c, nil
}

// BuildView fetches the complaint, its author and the viewer, and evaluates
// the visibility policy for that viewer.
func (s *Service) BuildView(viewerUID, complaintID string) (*View, error) {
	c, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	complainant, err := s.Storage.GetUserByUID(c.UserUID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	viewer, err := s.Storage.GetUserByUID(viewerUID)
	if err != nil {
		return nil, err
	}

	disclosure := policy.ContactDisclosure(viewerUID, viewer, c, complainant)
	view := &View{
		Complaint:       redacted(c, disclosure),
		CanEditStatus:   policy.CanEditStatus(viewer, c),
		Disclosure:      disclosure,
		AuthorIsSpammer: policy.IsSpammer(complainant),
	}
	return view, nil
}

// redacted strips the per-complaint contact fields unless the disclosure
// grants them to this viewer, so the raw record never leaks contact info
// around the policy.
func redacted(c *models.Complaint, d policy.Disclosure) *models.Complaint {
	if d.Kind == policy.DisclosurePerComplaint {
		return c
	}
	copied := *c
	copied.ComplainantEmail = ""
	copied.ComplainantPhone = ""
	return &copied
}

// UpdateStatus applies a status transition on behalf of viewerUID.
//
// The viewer's profile and the complaint are re-read here, never taken from
// client state, and the edit gate is re-checked at this write boundary. On
// entering Spam the complaint id is added to the author's spam set; on
// leaving Spam it is removed; both through the storage layer's atomic array
// operations. If the set write fails, the status write is rolled back so
// the linkage invariant holds; if the rollback fails too the error is
// surfaced as ErrPartialTransition.
func (s *Service) UpdateStatus(viewerUID, complaintID, newStatus string) (*TransitionResult, error) {
	if !policy.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	viewer, err := s.Storage.GetUserByUID(viewerUID)
	if err != nil {
		return nil, err
	}
	c, err := s.Storage.GetComplaintByID(complaintID)
	if err != nil {
		return nil, err
	}

	if !policy.CanEditStatus(viewer, c) {
		return nil, ErrNotAllowed
	}

	oldStatus := c.Status
	if newStatus == oldStatus {
		author, err := s.Storage.GetUserByUID(c.UserUID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return &TransitionResult{Changed: false, Status: oldStatus, AuthorIsSpammer: policy.IsSpammer(author)}, nil
	}

	if err := s.Storage.UpdateComplaintStatus(c.ID, newStatus); err != nil {
		return nil, fmt.Errorf("status write failed: %w", err)
	}

	var setErr error
	if newStatus == models.StatusSpam {
		setErr = s.Storage.AddSpamComplaint(c.UserUID, c.ID)
	} else if oldStatus == models.StatusSpam {
		setErr = s.Storage.RemoveSpamComplaint(c.UserUID, c.ID)
	}

	if setErr != nil {
		log.Printf("ERROR: Spam set update failed for complaint %s (author %s): %v", c.ID, c.UserUID, setErr)
		if rbErr := s.Storage.UpdateComplaintStatus(c.ID, oldStatus); rbErr != nil {
			log.Printf("ERROR: Rollback of complaint %s status failed: %v", c.ID, rbErr)
			return nil, fmt.Errorf("%w: %v", ErrPartialTransition, setErr)
		}
		return nil, fmt.Errorf("spam set write failed, transition rolled back: %w", setErr)
	}

	// Re-read the author so the spammer flag reflects this transition. The
	// transition is already committed at this point, so a failed read only
	// degrades the flag; it must not fail the request.
	author, err := s.Storage.GetUserByUID(c.UserUID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		log.Printf("WARNING: Failed to re-read author %s after transition on complaint %s: %v", c.UserUID, c.ID, err)
	}

	if err := s.Storage.PublishComplaintEvent(models.ComplaintEvent{
		Kind:        models.EventStatusChanged,
		ComplaintID: c.ID,
		Type:        c.Type,
		Status:      newStatus,
		Region:      c.Region,
		Address:     c.Address,
	}); err != nil {
		log.Printf("WARNING: Failed to publish status event for complaint %s: %v", c.ID, err)
	}

	return &TransitionResult{
		Changed:         true,
		Status:          newStatus,
		AuthorIsSpammer: policy.IsSpammer(author),
	}, nil
}
