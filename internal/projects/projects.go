// Package projects decodes the repository listing and splits it into the
// sets shown on the page.
package projects

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNotList is returned by Decode when the payload is not a JSON array.
var ErrNotList = errors.New("listing payload is not an array")

// Record is one repository entry from the listing API. Nullable fields
// decode to the empty string.
type Record struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Homepage    string `json:"homepage"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// DefaultLanguage labels records without a primary language.
const DefaultLanguage = "CODE"

// Live reports whether the record points at a deployed instance.
func (r Record) Live() bool {
	return r.Homepage != ""
}

// HomepageHost is the homepage without its http(s) scheme.
func (r Record) HomepageHost() string {
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(r.Homepage, scheme) {
			return strings.TrimPrefix(r.Homepage, scheme)
		}
	}
	return r.Homepage
}

func (r Record) LanguageLabel() string {
	if r.Language == "" {
		return DefaultLanguage
	}
	return r.Language
}

// Summary returns the description, or fallback when there is none.
func (r Record) Summary(fallback string) string {
	if r.Description == "" {
		return fallback
	}
	return r.Description
}

// Sets holds every record and the live subset, both in source order.
type Sets struct {
	All  []Record
	Live []Record
}

// Decode parses a listing payload. The returned slice is never nil: a payload
// that is not a JSON array yields an empty slice and ErrNotList, and array
// elements that are not objects are skipped.
func Decode(body []byte) ([]Record, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return []Record{}, ErrNotList
	}

	records := make([]Record, 0, len(raw))
	for _, item := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			continue
		}
		records = append(records, Record{
			ID:          int64Field(fields["id"]),
			Name:        stringField(fields["name"]),
			HTMLURL:     stringField(fields["html_url"]),
			Homepage:    stringField(fields["homepage"]),
			Language:    stringField(fields["language"]),
			Description: stringField(fields["description"]),
		})
	}
	return records, nil
}

// Classify derives the display sets. The input slice is not modified.
func Classify(records []Record) Sets {
	all := make([]Record, len(records))
	copy(all, records)

	live := make([]Record, 0, len(records))
	for _, r := range all {
		if r.Live() {
			live = append(live, r)
		}
	}
	return Sets{All: all, Live: live}
}

// stringField tolerates null and non-string values.
func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func int64Field(raw json.RawMessage) int64 {
	var n int64
	if len(raw) == 0 || json.Unmarshal(raw, &n) != nil {
		return 0
	}
	return n
}
