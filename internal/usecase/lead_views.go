package usecase

import (
	"sort"
	"time"

	"github.com/languagepeople/outreach-backend/internal/entity"
)

// WeeklyGoal is the fixed calls-per-week target shown on the dashboard.
const WeeklyGoal = 100

// WeekStart anchors the "this week" aggregation. The dashboard has always
// counted from calendar Sunday; changing this shifts everyone's weekly
// progress, so it is a deliberate constant, never inferred.
const WeekStart = time.Sunday

type SortKey string

const (
	SortDefault     SortKey = "default"
	SortName        SortKey = "name"
	SortCompany     SortKey = "company"
	SortStatus      SortKey = "status"
	SortLastContact SortKey = "lastContact"
)

// StatusFilterAll disables status filtering.
const StatusFilterAll = "All"

// VisibleLeads derives the filtered, sorted subset for one agent. With
// SortDefault the insertion order is preserved; other keys sort stably.
func VisibleLeads(allLeads []entity.Lead, agent, statusFilter string, key SortKey) []entity.Lead {
	var visible []entity.Lead
	for _, l := range allLeads {
		if l.AssignedAgent != agent {
			continue
		}
		if statusFilter != "" && statusFilter != StatusFilterAll && string(l.Status) != statusFilter {
			continue
		}
		visible = append(visible, l)
	}

	switch key {
	case SortName:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].FirstName+" "+visible[i].LastName < visible[j].FirstName+" "+visible[j].LastName
		})
	case SortCompany:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Company < visible[j].Company
		})
	case SortStatus:
		// Literal string order on the label, not workflow severity:
		// Closed < Follow Up < In Progress < Lost < New. A quirk, but one
		// the dashboard has always shown.
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].Status < visible[j].Status
		})
	case SortLastContact:
		// Never-contacted leads sort after all contacted ones; among
		// contacted, most recent first.
		sort.SliceStable(visible, func(i, j int) bool {
			a, b := visible[i].LastContact, visible[j].LastContact
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return *a > *b
			}
		})
	}
	return visible
}

// ComputeStats aggregates the dashboard numbers for one agent as of now.
// Date comparisons are done on YYYY-MM-DD strings, which order the same as
// the days they name.
func ComputeStats(allLeads []entity.Lead, agent string, now time.Time) entity.Stats {
	today := now.Format(dateLayout)
	weekStart := startOfWeek(now).Format(dateLayout)

	stats := entity.Stats{WeeklyGoal: WeeklyGoal}
	for _, l := range allLeads {
		if l.AssignedAgent != agent {
			continue
		}
		stats.Total++
		if l.LastContact != nil {
			if *l.LastContact == today {
				stats.CalledToday++
			}
			if *l.LastContact >= weekStart {
				stats.WeeklyProgress++
			}
		}
		switch l.Status {
		case entity.StatusNew:
			stats.New++
		case entity.StatusClosed:
			stats.Closed++
		case entity.StatusFollowUp:
			stats.FollowUp++
		}
	}
	return stats
}

func startOfWeek(now time.Time) time.Time {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	offset := int(now.Weekday() - WeekStart)
	if offset < 0 {
		offset += 7
	}
	return midnight.AddDate(0, 0, -offset)
}
