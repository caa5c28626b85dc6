package handler

import (
	"net/http"

	"greensentinel/backend/internal/catalog"
	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/policy"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

// GetProfile returns the caller's own profile including spam standing.
func (h *Handler) GetProfile(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":        user,
		"spamComplaints": []string(user.SpamComplaints),
		"isSpammer":      policy.IsSpammer(user),
	})
}

// CompleteOnboarding finishes a verified account's profile: name, phone,
// role, state and region. The role is set once; repeating onboarding with a
// different role is rejected.
func (h *Handler) CompleteOnboarding(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	if !user.EmailVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "Verify your email before onboarding"})
		return
	}
	if user.OnboardingComplete {
		c.JSON(http.StatusConflict, gin.H{"error": "Onboarding already completed"})
		return
	}

	var req models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Name == "" || req.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone number are required"})
		return
	}
	if req.Role != models.RoleCitizen && req.Role != models.RoleAuthority {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be citizen or authority"})
		return
	}
	if user.Role != "" && user.Role != req.Role {
		c.JSON(http.StatusConflict, gin.H{"error": "Role cannot be changed"})
		return
	}
	if !catalog.ValidRegion(req.State, req.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown state or region"})
		return
	}

	fields := map[string]interface{}{
		"name":                req.Name,
		"phone":               req.Phone,
		"role":                req.Role,
		"state":               req.State,
		"region":              req.Region,
		"onboarding_complete": true,
	}
	if req.Role == models.RoleCitizen && user.SpamComplaints == nil {
		fields["spam_complaints"] = pq.StringArray{}
	}

	if err := h.Storage.UpdateUserFields(user.UID, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}

	updated, err := h.Storage.GetUserByUID(user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": updated})
}

// GetRegionCatalog serves the fixed state/region catalog for the
// onboarding form.
func (h *Handler) GetRegionCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": catalog.States(), "regions": catalog.StateRegions})
}

// GetQuestionSets serves the per-type question sets for the submission form.
func (h *Handler) GetQuestionSets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questionSets": catalog.QuestionSets})
}
