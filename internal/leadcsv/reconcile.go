package leadcsv

import (
	"regexp"
	"strings"

	"github.com/languagepeople/outreach-backend/internal/entity"
)

// ImportMode selects how an imported document relates to the existing
// collection.
type ImportMode int

const (
	// ModeReplace discards the existing collection; used only for the
	// first-run bootstrap document.
	ModeReplace ImportMode = iota
	// ModeMerge appends to the existing collection, discarding rows that
	// duplicate an existing lead by phone digits or lowercased email.
	ModeMerge
)

var nonDigits = regexp.MustCompile(`\D`)

// PhoneKey reduces a phone number to its digits for dedup comparison.
// Leads keep their raw phone; this key is transient.
func PhoneKey(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// EmailKey lowercases an email for dedup comparison.
func EmailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ImportDocument runs the full pipeline over a CSV document: line
// splitting (LF or CRLF), blank-line skipping, header mapping against the
// first non-blank line, and per-row normalization. A document without at
// least a header plus one data line yields an empty result, not an error.
//
// In Merge mode, rows whose phone or email key matches an existing lead
// are discarded silently, and the survivors get a second, independent
// round-robin pass starting at zero so agent distribution stays fair among
// the rows actually admitted.
//
// The function has no side effects; the caller owns merging the result
// into the store.
func ImportDocument(text string, mode ImportMode, existing []entity.Lead, agents []string) []entity.Lead {
	if len(agents) == 0 {
		agents = entity.DefaultAgents
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return nil
	}

	idx := MapHeaders(Tokenize(lines[0]))

	maxID := 0
	for _, l := range existing {
		if l.ID > maxID {
			maxID = l.ID
		}
	}

	var accepted []entity.Lead
	for _, line := range lines[1:] {
		lead, ok := NormalizeRow(Tokenize(line), idx, len(accepted), maxID+1+len(accepted), agents)
		if !ok {
			continue
		}
		accepted = append(accepted, lead)
	}

	if mode != ModeMerge {
		return accepted
	}

	phones := make(map[string]bool, len(existing))
	emails := make(map[string]bool, len(existing))
	for _, l := range existing {
		if k := PhoneKey(l.Phone); k != "" {
			phones[k] = true
		}
		if k := EmailKey(l.Email); k != "" {
			emails[k] = true
		}
	}

	// Dedup losses leave id gaps. Ids are never reused or renumbered, so a
	// gap is the correct outcome.
	var survivors []entity.Lead
	for _, lead := range accepted {
		if k := PhoneKey(lead.Phone); k != "" && phones[k] {
			continue
		}
		if k := EmailKey(lead.Email); k != "" && emails[k] {
			continue
		}
		lead.AssignedAgent = agents[len(survivors)%len(agents)]
		survivors = append(survivors, lead)
	}
	return survivors
}
