package storage

import (
	"context"
	"errors"
	"log"
	"time"

	"greensentinel/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced user or complaint is missing.
var ErrNotFound = errors.New("record not found")

// ComplaintFilter narrows a complaint listing. Zero values mean "no filter".
type ComplaintFilter struct {
	Region  string
	Status  string
	Type    string
	UserUID string
}

type Storage interface {
	CreateUser(user *models.User) error
	SaveUser(user *models.User) error
	GetUserByUID(uid string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	UpdateUserFields(uid string, fields map[string]interface{}) error

	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id string) (*models.Complaint, error)
	ListComplaints(filter ComplaintFilter) ([]models.Complaint, error)
	UpdateComplaintStatus(id string, status string) error

	AddSpamComplaint(userUID, complaintID string) error
	RemoveSpamComplaint(userUID, complaintID string) error

	PublishComplaintEvent(event models.ComplaintEvent) error

	StoreVerificationToken(token, uid string, ttl time.Duration) error
	LookupVerificationToken(token string) (string, error)
	DeleteVerificationToken(token string) error

	StorePasswordResetToken(token, uid string, ttl time.Duration) error
	LookupPasswordResetToken(token string) (string, error)
	DeletePasswordResetToken(token string) error
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService wires the PostgreSQL and Redis handles into one storage
// service. Redis may be nil for tooling that only touches the database.
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

func (s *Service) CreateUser(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *Service) GetUserByUID(uid string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("uid = ?", uid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get user %s: %v", uid, err)
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserFields applies a partial update to a user row.
func (s *Service) UpdateUserFields(uid string, fields map[string]interface{}) error {
	return s.DB.Model(&models.User{}).Where("uid = ?", uid).Updates(fields).Error
}

func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusYetToLook
	}

	result := s.DB.Create(complaint)
	if result.Error != nil {
		log.Printf("ERROR: Failed to save complaint for user %s: %v", complaint.UserUID, result.Error)
		return result.Error
	}
	return nil
}

func (s *Service) GetComplaintByID(id string) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.Where("id = ?", id).First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("ERROR: Failed to get complaint %s: %v", id, err)
		return nil, err
	}
	return &complaint, nil
}

// ListComplaints returns complaints newest first, optionally narrowed by
// region, status, type or author.
func (s *Service) ListComplaints(filter ComplaintFilter) ([]models.Complaint, error) {
	var complaints []models.Complaint

	q := s.DB.Order("created_at desc")
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.UserUID != "" {
		q = q.Where("user_uid = ?", filter.UserUID)
	}

	if err := q.Find(&complaints).Error; err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil, err
	}
	return complaints, nil
}

func (s *Service) UpdateComplaintStatus(id string, status string) error {
	return s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// AddSpamComplaint appends complaintID to the user's spam set in a single
// UPDATE statement. The ANY guard makes the append idempotent, so the
// operation stays correct under concurrent transitions on the same author.
func (s *Service) AddSpamComplaint(userUID, complaintID string) error {
	return s.DB.Exec(
		`UPDATE users SET spam_complaints = array_append(spam_complaints, ?)
		 WHERE uid = ? AND NOT (? = ANY(coalesce(spam_complaints, '{}')))`,
		complaintID, userUID, complaintID,
	).Error
}

// RemoveSpamComplaint drops complaintID from the user's spam set atomically.
// array_remove is a no-op for absent values, so this is idempotent too.
func (s *Service) RemoveSpamComplaint(userUID, complaintID string) error {
	return s.DB.Exec(
		`UPDATE users SET spam_complaints = array_remove(spam_complaints, ?) WHERE uid = ?`,
		complaintID, userUID,
	).Error
}
