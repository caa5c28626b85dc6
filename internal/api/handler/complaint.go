package handler

import (
	"errors"
	"net/http"

	"greensentinel/backend/internal/auth"
	"greensentinel/backend/internal/complaint"
	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// SubmitComplaint files a new complaint for the authenticated citizen.
func (h *Handler) SubmitComplaint(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	if !user.OnboardingComplete {
		c.JSON(http.StatusForbidden, gin.H{"error": "Complete onboarding before filing complaints"})
		return
	}
	if user.Role != models.RoleCitizen {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only citizens can file complaints"})
		return
	}

	var req models.SubmitComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := h.Complaints.Submit(user, &req)
	if err != nil {
		switch {
		case errors.Is(err, complaint.ErrMissingType), errors.Is(err, complaint.ErrMissingAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit complaint. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListComplaints returns complaints newest first. Supported query
// parameters: status, type, mine=true (own complaints only) and
// region=own (the caller's region). Contact fields are stripped from list
// entries except on the caller's own complaints; the detail endpoint is
// the policy-checked path.
func (h *Handler) ListComplaints(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	filter := storage.ComplaintFilter{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}
	if c.Query("mine") == "true" {
		filter.UserUID = user.UID
	}
	if c.Query("region") == "own" {
		filter.Region = user.Region
	}

	complaints, err := h.Storage.ListComplaints(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load complaints. Please try again."})
		return
	}

	for i := range complaints {
		if complaints[i].UserUID != user.UID {
			complaints[i].ComplainantEmail = ""
			complaints[i].ComplainantPhone = ""
		}
	}

	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// GetComplaint returns the detail view with the policy outputs evaluated
// for the caller.
func (h *Handler) GetComplaint(c *gin.Context) {
	uid := c.GetString(auth.ContextUIDKey)

	view, err := h.Complaints.BuildView(uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load complaint. Please try again."})
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateComplaintStatus applies a status transition. The edit gate runs
// inside the service over freshly read records.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	uid := c.GetString(auth.ContextUIDKey)

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.Complaints.UpdateStatus(uid, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, complaint.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, complaint.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": "You cannot edit complaints outside your region"})
		case errors.Is(err, storage.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		case errors.Is(err, complaint.ErrPartialTransition):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Status partially updated; please retry to restore consistency"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
