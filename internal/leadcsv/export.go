package leadcsv

import (
	"strings"

	"github.com/languagepeople/outreach-backend/internal/entity"
)

// exportColumns keeps the historical export vocabulary. It differs from the
// import header expectations ("Telephone Number" vs "telephone"), but the
// substring-based header mapper resolves these anyway, so an export stays
// re-importable with field-content equivalence. Status and Notes columns do
// not round-trip: import infers status from "Called Y/N" text only.
var exportColumns = []string{
	"First Name",
	"Last Name",
	"School Name",
	"Telephone Number",
	"Email",
	"Status",
	"Notes",
	"Last Contact",
	"Assigned Agent",
}

// Serialize renders the lead collection back into the CSV dialect, one line
// per lead with every field individually quoted.
func Serialize(leads []entity.Lead) string {
	var b strings.Builder
	writeRow(&b, exportColumns)
	for _, l := range leads {
		lastContact := ""
		if l.LastContact != nil {
			lastContact = *l.LastContact
		}
		writeRow(&b, []string{
			l.FirstName,
			l.LastName,
			l.Company,
			l.Phone,
			l.Email,
			string(l.Status),
			l.Notes,
			lastContact,
			l.AssignedAgent,
		})
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
