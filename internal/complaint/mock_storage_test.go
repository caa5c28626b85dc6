package complaint_test

import (
	"time"

	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByUID(uid string) (*models.User, error) {
	args := m.Called(uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) UpdateUserFields(uid string, fields map[string]interface{}) error {
	args := m.Called(uid, fields)
	return args.Error(0)
}

func (m *MockStorage) CreateComplaint(complaint *models.Complaint) error {
	args := m.Called(complaint)
	return args.Error(0)
}

func (m *MockStorage) GetComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStorage) ListComplaints(filter storage.ComplaintFilter) ([]models.Complaint, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Complaint), args.Error(1)
}

func (m *MockStorage) UpdateComplaintStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStorage) AddSpamComplaint(userUID, complaintID string) error {
	args := m.Called(userUID, complaintID)
	return args.Error(0)
}

func (m *MockStorage) RemoveSpamComplaint(userUID, complaintID string) error {
	args := m.Called(userUID, complaintID)
	return args.Error(0)
}

func (m *MockStorage) PublishComplaintEvent(event models.ComplaintEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockStorage) StoreVerificationToken(token, uid string, ttl time.Duration) error {
	args := m.Called(token, uid, ttl)
	return args.Error(0)
}

func (m *MockStorage) LookupVerificationToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeleteVerificationToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockStorage) StorePasswordResetToken(token, uid string, ttl time.Duration) error {
	args := m.Called(token, uid, ttl)
	return args.Error(0)
}

func (m *MockStorage) LookupPasswordResetToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DeletePasswordResetToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}
