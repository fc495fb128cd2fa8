package leadcsv

import (
	"strings"

	"github.com/languagepeople/outreach-backend/internal/entity"
)

// NormalizeRow turns one tokenized data row into a canonical Lead.
//
// ordinal is the 0-based position among accepted rows in the current batch
// and drives round-robin agent assignment; id is pre-computed by the caller
// so that ids stay monotonic even when earlier rows were rejected.
//
// ok is false when the row is skipped: fewer than two fields (ragged
// input), or an identity that resolved to both sentinels. Skipping is
// silent by design; noisy spreadsheets are expected.
func NormalizeRow(fields []string, idx FieldIndexes, ordinal, id int, agents []string) (entity.Lead, bool) {
	if len(fields) < 2 {
		return entity.Lead{}, false
	}

	at := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return fields[i]
	}

	// Name resolution: without a dedicated last-name column the name field
	// is split on whitespace, first token is the first name and the rest
	// joins into the last name.
	firstName := entity.UnknownFirstName
	lastName := ""
	rawName := at(idx.FirstName)
	if idx.LastName == -1 && rawName != "" {
		parts := strings.Fields(rawName)
		if len(parts) > 1 {
			firstName = parts[0]
			lastName = strings.Join(parts[1:], " ")
		} else {
			firstName = rawName
		}
	} else {
		if rawName != "" {
			firstName = rawName
		}
		lastName = at(idx.LastName)
	}

	// Company falls back to the sentinel only when the column itself is
	// absent; an empty cell in a present column stays empty.
	company := at(idx.Company)
	if idx.Company == -1 {
		company = entity.UnknownCompany
	}

	if firstName == entity.UnknownFirstName && company == entity.UnknownCompany {
		return entity.Lead{}, false
	}

	status := entity.StatusNew
	rawStatus := strings.ToLower(at(idx.Status))
	if strings.Contains(rawStatus, "yes called") {
		status = entity.StatusInProgress
	} else if strings.Contains(rawStatus, "no answer") {
		status = entity.StatusFollowUp
	}

	return entity.Lead{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Company:   company,
		Phone:     at(idx.Phone),
		Email:     at(idx.Email),
		Status:    status,
		Notes:     at(idx.Notes),
		// A freshly imported lead has no contact history, even when its
		// status was inferred from a "yes called" note.
		LastContact:   nil,
		Timezone:      entity.DefaultTimezone,
		OfficeHours:   entity.DefaultOfficeHours,
		AssignedAgent: agents[ordinal%len(agents)],
	}, true
}
