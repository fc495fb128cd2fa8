package entity

// LeadStatus is the workflow state of a lead. The labels are the exact
// strings used in spreadsheets and snapshots, so renaming one is a data
// migration, not a refactor.
type LeadStatus string

const (
	StatusNew        LeadStatus = "New"
	StatusInProgress LeadStatus = "In Progress"
	StatusFollowUp   LeadStatus = "Follow Up"
	StatusClosed     LeadStatus = "Closed"
	StatusLost       LeadStatus = "Lost"
)

// Valid reports whether s is one of the known workflow states.
func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusFollowUp, StatusClosed, StatusLost:
		return true
	}
	return false
}

// Sentinels used when a spreadsheet row cannot resolve a field. A row that
// resolves to BOTH sentinels carries no identity and is rejected outright.
const (
	UnknownFirstName = "Unknown"
	UnknownCompany   = "Unknown School"
)

// Display-only defaults stamped on every imported lead.
const (
	DefaultTimezone    = "PST"
	DefaultOfficeHours = "8:00 AM - 4:00 PM"
)

// DefaultAgents is the roster used when the AGENTS env var is not set.
var DefaultAgents = []string{"Ziggy", "Nathan", "Veda", "Emily", "Zoe"}

type Lead struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`

	// Phone and Email are kept exactly as imported; normalization happens
	// only transiently when computing dedup keys.
	Phone string `json:"phone"`
	Email string `json:"email"`

	Status LeadStatus `json:"status"`
	Notes  string     `json:"notes"`

	// LastContact is a YYYY-MM-DD day, nil until the first recorded outcome.
	LastContact *string `json:"last_contact,omitempty"`

	Timezone    string `json:"timezone"`
	OfficeHours string `json:"office_hours"`

	// AssignedAgent is set round-robin at import time and never reassigned.
	AssignedAgent string `json:"assigned_agent"`
}

func (l Lead) FullName() string {
	if l.LastName == "" {
		return l.FirstName
	}
	return l.FirstName + " " + l.LastName
}
