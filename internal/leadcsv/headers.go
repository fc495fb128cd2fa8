package leadcsv

import "strings"

// FieldIndexes maps each semantic field to its column position in the
// header row. -1 means the column is absent, which is a normal outcome
// the normalizer has to live with, not an error.
type FieldIndexes struct {
	Company   int
	FirstName int
	LastName  int
	Phone     int
	Email     int
	Status    int
	Notes     int
}

// MapHeaders resolves column positions by substring containment against the
// normalized header fields. Candidates are tried in priority order and the
// first header containing the candidate wins. The priorities encode the
// vocabulary actually seen in the field: district spreadsheets say
// "School Name" and "Telephone", generic CRM exports say "Company" and
// "Phone".
func MapHeaders(headerFields []string) FieldIndexes {
	normalized := make([]string, len(headerFields))
	for i, h := range headerFields {
		h = strings.ToLower(strings.TrimSpace(h))
		h = strings.TrimPrefix(h, `"`)
		h = strings.TrimSuffix(h, `"`)
		normalized[i] = h
	}

	resolve := func(candidates ...string) int {
		for _, key := range candidates {
			for i, h := range normalized {
				if strings.Contains(h, key) {
					return i
				}
			}
		}
		return -1
	}

	return FieldIndexes{
		Company:   resolve("school name", "company"),
		FirstName: resolve("admin first name", "first"),
		LastName:  resolve("last"),
		Phone:     resolve("telephone", "phone"),
		Email:     resolve("email"),
		Status:    resolve("called y/n"),
		Notes:     resolve("response notes"),
	}
}
