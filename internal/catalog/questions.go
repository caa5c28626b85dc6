package catalog

import "greensentinel/backend/internal/models"

// Input kinds for type-specific questions.
const (
	KindText     = "text"
	KindNumber   = "number"
	KindTextarea = "textarea"
	KindRadio    = "radio"
)

// Question is one additional prompt shown for a given complaint type.
// Answers are free-form and optional; Options is set only for radio kind.
type Question struct {
	Key     string   `json:"key"`
	Prompt  string   `json:"prompt"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
}

// QuestionSets maps each complaint type to its fixed question list.
var QuestionSets = map[string][]Question{
	models.TypeDeforestation: {
		{Key: "areaAffectedInSqMtrs", Prompt: "Estimated area affected (in sq. meters):", Kind: KindNumber},
		{Key: "treesCut", Prompt: "Approximate number of trees cut:", Kind: KindNumber},
		{Key: "suspects", Prompt: "Suspected party involved/Vehicle number(if known):", Kind: KindTextarea},
	},
	models.TypePoaching: {
		{Key: "animalType", Prompt: "Type of animal suspected to be poached:", Kind: KindText},
		{Key: "poachingMethod", Prompt: "Suspected poaching method:", Kind: KindTextarea},
		{Key: "peopleStrength", Prompt: "Approx number of people involved:", Kind: KindNumber},
	},
	models.TypeFire: {
		{Key: "fireSize", Prompt: "Estimated size of the fire:", Kind: KindText},
		{Key: "cause", Prompt: "Suspected cause of the fire:", Kind: KindTextarea},
		{Key: "injuries", Prompt: "Were there any injuries or fatalities?", Kind: KindRadio, Options: []string{"Yes", "No"}},
	},
	models.TypeEncroachment: {
		{Key: "landAreaInSq", Prompt: "Estimated land area encroached (in sq. meters):", Kind: KindNumber},
		{Key: "structures", Prompt: "Are there any illegal structures built?", Kind: KindRadio, Options: []string{"Yes", "No"}},
		{Key: "suspects", Prompt: "Suspected party involved (if known):", Kind: KindText},
	},
	models.TypeLittering: {
		{Key: "litterType", Prompt: "Main type of litter observed (e.g., plastic, construction waste):", Kind: KindText},
		{Key: "litterVolume", Prompt: "Estimated volume/amount of litter:", Kind: KindTextarea},
		{Key: "frequency", Prompt: "How often does this littering occur?", Kind: KindText},
	},
}

// ValidType reports whether t is one of the accepted complaint types.
func ValidType(t string) bool {
	_, ok := QuestionSets[t]
	return ok
}

// FilterAnswers keeps only the answers whose keys belong to the question set
// of the given complaint type. Unknown keys are silently dropped.
func FilterAnswers(complaintType string, answers map[string]string) models.QuestionAnswers {
	filtered := models.QuestionAnswers{}
	for _, q := range QuestionSets[complaintType] {
		if v, ok := answers[q.Key]; ok && v != "" {
			filtered[q.Key] = v
		}
	}
	return filtered
}
