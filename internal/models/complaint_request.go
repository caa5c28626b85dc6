package models

// SubmitComplaintRequest is the JSON body of a complaint submission.
// SpecificAnswers keys outside the selected type's question set are dropped
// by the assembler rather than rejected.
type SubmitComplaintRequest struct {
	Type            string            `json:"type"`
	Address         string            `json:"address"`
	Description     string            `json:"description"`
	SpecificAnswers map[string]string `json:"specificAnswers"`
	RevealIdentity  bool              `json:"revealIdentity"`
}

// StatusUpdateRequest is the JSON body of an authority status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// OnboardingRequest completes a freshly verified account's profile.
type OnboardingRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	State  string `json:"state"`
	Region string `json:"region"`
}
