package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint statuses. A complaint starts as "Yet to Look" and only the
// status field is ever mutated afterwards, by an authority in the matching
// region.
const (
	StatusYetToLook  = "Yet to Look"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
	StatusSpam       = "Spam"
)

// Complaint types accepted at submission time.
const (
	TypeDeforestation = "Deforestation"
	TypePoaching      = "Poaching"
	TypeFire          = "Fire"
	TypeEncroachment  = "Illegal Land Encroachment"
	TypeLittering     = "Littering"
)

// QuestionAnswers maps a type-specific question key to the free-form answer
// given at submission. Stored as a jsonb column.
type QuestionAnswers map[string]string

func (a QuestionAnswers) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

func (a *QuestionAnswers) Scan(value interface{}) error {
	if value == nil {
		*a = QuestionAnswers{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	}
	return errors.New("unsupported type for QuestionAnswers")
}

// Complaint is one filed report. UserUID, Type, Region, the contact fields
// and the answers are immutable after creation.
type Complaint struct {
	ID                string          `gorm:"primaryKey" json:"id"`
	UserUID           string          `gorm:"index" json:"useruid"`
	Type              string          `json:"type"`
	Status            string          `gorm:"index" json:"status"`
	Address           string          `json:"address"`
	Description       string          `json:"description,omitempty"`
	Region            string          `gorm:"index" json:"region"`
	SpecificQuestions QuestionAnswers `gorm:"type:jsonb" json:"specificQuestions,omitempty"`
	ComplainantEmail  string          `json:"complainantEmail,omitempty"`
	ComplainantPhone  string          `json:"complainantPhone,omitempty"`
	CreatedAt         time.Time       `gorm:"index" json:"createdAt"`
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
