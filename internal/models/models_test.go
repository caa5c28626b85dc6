package models_test

import (
	"testing"

	"greensentinel/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserBeforeCreate_AssignsUID(t *testing.T) {
	u := &models.User{Email: "a@example.com"}

	err := u.BeforeCreate(nil)

	assert.NoError(t, err)
	_, parseErr := uuid.Parse(u.UID)
	assert.NoError(t, parseErr, "generated UID should be a valid uuid")
}

func TestUserBeforeCreate_KeepsExistingUID(t *testing.T) {
	u := &models.User{UID: "preset-uid"}

	err := u.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, "preset-uid", u.UID)
}

func TestComplaintBeforeCreate_AssignsID(t *testing.T) {
	c := &models.Complaint{}

	err := c.BeforeCreate(nil)

	assert.NoError(t, err)
	_, parseErr := uuid.Parse(c.ID)
	assert.NoError(t, parseErr)
}

func TestQuestionAnswers_ValueAndScan(t *testing.T) {
	original := models.QuestionAnswers{"fireSize": "two acres", "injuries": "No"}

	value, err := original.Value()
	assert.NoError(t, err)

	var restored models.QuestionAnswers
	assert.NoError(t, restored.Scan([]byte(value.(string))))
	assert.Equal(t, original, restored)
}

func TestQuestionAnswers_NilHandling(t *testing.T) {
	var answers models.QuestionAnswers

	value, err := answers.Value()
	assert.NoError(t, err)
	assert.Equal(t, "{}", value, "nil map stores as an empty jsonb object")

	var restored models.QuestionAnswers
	assert.NoError(t, restored.Scan(nil))
	assert.NotNil(t, restored)
	assert.Empty(t, restored)
}

func TestQuestionAnswers_ScanRejectsUnsupportedType(t *testing.T) {
	var answers models.QuestionAnswers
	assert.Error(t, answers.Scan(42))
}
