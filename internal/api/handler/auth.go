package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"greensentinel/backend/internal/auth"
	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/storage"
	"greensentinel/backend/pkg/email"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates an unverified account, mails the verification link and
// returns a session token so the client can poll verification status.
func (h *Handler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	if _, err := h.Storage.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing accounts"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := h.Storage.CreateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	h.issueVerification(user)

	token, err := h.Auth.GenerateToken(user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"uid":   user.UID,
		"email": user.Email,
	})
}

// issueVerification stores a fresh token and mails the link. Mail failures
// are logged, not surfaced; the user can ask for a resend.
func (h *Handler) issueVerification(user *models.User) {
	token := uuid.New().String()
	if err := h.Storage.StoreVerificationToken(token, user.UID, verificationTokenTTL); err != nil {
		log.Printf("ERROR: Failed to store verification token for %s: %v", user.UID, err)
		return
	}

	link := h.BaseURL + "/auth/verify?token=" + token
	go func() {
		if err := email.SendVerificationEmail(user.Email, link); err != nil {
			log.Printf("WARNING: Failed to send verification email to %s: %v", user.Email, err)
		}
	}()
}

// Login checks the credentials and returns a session token.
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.Storage.GetUserByEmail(strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := h.Auth.GenerateToken(user.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":              token,
		"uid":                user.UID,
		"emailVerified":      user.EmailVerified,
		"onboardingComplete": user.OnboardingComplete,
	})
}

// VerifyEmail consumes a verification token from the mailed link.
func (h *Handler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification token missing"})
		return
	}

	uid, err := h.Storage.LookupVerificationToken(token)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification link is invalid or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		return
	}

	if err := h.Storage.UpdateUserFields(uid, map[string]interface{}{"email_verified": true}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		return
	}
	if err := h.Storage.DeleteVerificationToken(token); err != nil {
		log.Printf("WARNING: Failed to delete used verification token: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully"})
}

// ResendVerification mails a fresh verification link to the caller.
func (h *Handler) ResendVerification(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}
	if user.EmailVerified {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already verified"})
		return
	}

	h.issueVerification(user)
	c.JSON(http.StatusOK, gin.H{"message": "Verification email sent"})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// RequestPasswordReset mails a reset link for the account behind the email.
// The response is the same whether or not the email matches an account, so
// the endpoint cannot be used to probe for registered addresses.
func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	address := strings.TrimSpace(strings.ToLower(req.Email))
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	neutral := gin.H{"message": "If an account exists for this email, a reset link has been sent"}

	user, err := h.Storage.GetUserByEmail(address)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("ERROR: Failed to look up account for password reset: %v", err)
		}
		c.JSON(http.StatusOK, neutral)
		return
	}

	token := uuid.New().String()
	if err := h.Storage.StorePasswordResetToken(token, user.UID, passwordResetTokenTTL); err != nil {
		log.Printf("ERROR: Failed to store password reset token for %s: %v", user.UID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reset link"})
		return
	}

	link := h.BaseURL + "/auth/reset-password?token=" + token
	go func() {
		if err := email.SendPasswordResetEmail(user.Email, link); err != nil {
			log.Printf("WARNING: Failed to send password reset email to %s: %v", user.Email, err)
		}
	}()

	c.JSON(http.StatusOK, neutral)
}

// ResetPassword consumes a reset token and stores a new password hash.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reset token missing"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	uid, err := h.Storage.LookupPasswordResetToken(req.Token)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reset link is invalid or expired"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password"})
		return
	}
	if err := h.Storage.UpdateUserFields(uid, map[string]interface{}{"password_hash": string(hash)}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}
	if err := h.Storage.DeletePasswordResetToken(req.Token); err != nil {
		log.Printf("WARNING: Failed to delete used password reset token: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// currentUser loads the authenticated caller's profile or writes an error
// response and returns ok=false.
func (h *Handler) currentUser(c *gin.Context) (*models.User, bool) {
	uid := c.GetString(auth.ContextUIDKey)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return nil, false
	}

	user, err := h.Storage.GetUserByUID(uid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load account"})
		}
		return nil, false
	}
	return user, true
}
