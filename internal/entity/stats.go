package entity

// Stats is the per-agent dashboard aggregate. It is derived from the lead
// collection on every read and never persisted on its own.
type Stats struct {
	Total          int `json:"total"`
	CalledToday    int `json:"called_today"`
	WeeklyProgress int `json:"weekly_progress"`
	WeeklyGoal     int `json:"weekly_goal"`
	New            int `json:"new"`
	Closed         int `json:"closed"`
	FollowUp       int `json:"follow_up"`
}
