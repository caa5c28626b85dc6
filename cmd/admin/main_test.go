package main

import (
	"testing"

	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// stubStorage mocks only the methods the spam commands touch; anything else
// panics via the embedded nil interface.
type stubStorage struct {
	storage.Storage
	mock.Mock
}

func (m *stubStorage) GetComplaintByID(id string) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *stubStorage) UpdateComplaintStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *stubStorage) AddSpamComplaint(userUID, complaintID string) error {
	args := m.Called(userUID, complaintID)
	return args.Error(0)
}

func (m *stubStorage) RemoveSpamComplaint(userUID, complaintID string) error {
	args := m.Called(userUID, complaintID)
	return args.Error(0)
}

func TestSetSpam_Mark(t *testing.T) {
	storageMock := new(stubStorage)
	storageMock.On("GetComplaintByID", "c1").
		Return(&models.Complaint{ID: "c1", UserUID: "u1", Status: models.StatusYetToLook}, nil).Once()
	storageMock.On("UpdateComplaintStatus", "c1", models.StatusSpam).Return(nil).Once()
	storageMock.On("AddSpamComplaint", "u1", "c1").Return(nil).Once()

	err := setSpam(storageMock, "c1", true)

	assert.NoError(t, err)
	storageMock.AssertExpectations(t)
}

func TestSetSpam_Unmark(t *testing.T) {
	storageMock := new(stubStorage)
	storageMock.On("GetComplaintByID", "c1").
		Return(&models.Complaint{ID: "c1", UserUID: "u1", Status: models.StatusSpam}, nil).Once()
	storageMock.On("UpdateComplaintStatus", "c1", models.StatusYetToLook).Return(nil).Once()
	storageMock.On("RemoveSpamComplaint", "u1", "c1").Return(nil).Once()

	err := setSpam(storageMock, "c1", false)

	assert.NoError(t, err)
	storageMock.AssertExpectations(t)
}

// TestSetSpam_UnmarkRefusesNonSpam: unmarking must not touch a complaint
// that is not currently Spam (it would silently reopen a Resolved one).
func TestSetSpam_UnmarkRefusesNonSpam(t *testing.T) {
	storageMock := new(stubStorage)
	storageMock.On("GetComplaintByID", "c1").
		Return(&models.Complaint{ID: "c1", UserUID: "u1", Status: models.StatusResolved}, nil).Once()

	err := setSpam(storageMock, "c1", false)

	assert.Error(t, err)
	storageMock.AssertNotCalled(t, "UpdateComplaintStatus", mock.Anything, mock.Anything)
	storageMock.AssertNotCalled(t, "RemoveSpamComplaint", mock.Anything, mock.Anything)
}
