package leadcsv

import "strings"

// Tokenize splits one line of the outreach spreadsheet dialect into fields.
// Commas inside a double-quoted span do not delimit, and a doubled quote
// inside a quoted span is a literal quote. An unterminated quote is closed
// implicitly at end of line rather than raised as an error. Every field is
// trimmed of surrounding whitespace.
//
// An empty line yields a single empty field, never an empty slice, so
// callers must filter blank lines themselves.
func Tokenize(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
