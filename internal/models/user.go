package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Role values stored on a user profile. The role is picked once during
// onboarding and never changed by the application afterwards.
const (
	RoleCitizen   = "citizen"
	RoleAuthority = "authority"
)

// User is a registered account plus its onboarded profile.
// SpamComplaints holds the ids of this user's complaints that currently have
// status "Spam"; it is maintained only for citizens and only through the
// atomic storage operations, never by rewriting the whole row.
type User struct {
	UID                string         `gorm:"primaryKey" json:"uid"`
	Email              string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash       string         `json:"-"`
	EmailVerified      bool           `json:"emailVerified"`
	Name               string         `json:"name"`
	Phone              string         `json:"phone"`
	Role               string         `json:"role"`
	State              string         `json:"state"`
	Region             string         `json:"region"`
	OnboardingComplete bool           `json:"onboardingComplete"`
	SpamComplaints     pq.StringArray `gorm:"type:text[]" json:"-"`
	CreatedAt          time.Time      `json:"createdAt"`
}

// BeforeCreate generates a UID if one has not been assigned yet.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.UID == "" {
		u.UID = uuid.New().String()
	}
	return
}
