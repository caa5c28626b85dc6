package models

// Feed event kinds published on the complaint feed channel.
const (
	EventComplaintCreated = "complaint_created"
	EventStatusChanged    = "status_changed"
)

// ComplaintEvent is the payload broadcast to live feed subscribers whenever
// a complaint is created or its status changes. It carries only what the
// list view needs; detail views re-fetch through the policy-checked path.
type ComplaintEvent struct {
	Kind        string `json:"kind"`
	ComplaintID string `json:"complaint_id"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Region      string `json:"region"`
	Address     string `json:"address"`
}
