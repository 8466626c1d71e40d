package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ProjectID identifies a Diffy project. The API returns it either as a JSON
// string or as a JSON number; both decode to the same textual form.
type ProjectID string

// UnmarshalJSON accepts a string, a number or null.
func (id *ProjectID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProjectID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProjectID(n.String())
	return nil
}

// String returns the id as text.
func (id ProjectID) String() string {
	return string(id)
}

// Project is a Diffy project as listed by the API.
type Project struct {
	ID   ProjectID `json:"id"`
	Name string    `json:"name"`
}

// ParseProjectID reports whether input is a project id (an optionally signed
// run of decimal digits once surrounding whitespace is removed) and returns
// it. The value is not bounded to any integer size.
func ParseProjectID(input string) (ProjectID, bool) {
	trimmed := strings.TrimSpace(input)
	digits := strings.TrimLeft(trimmed, "+-")
	if digits == "" || len(trimmed)-len(digits) > 1 {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return ProjectID(trimmed), true
}

// Page is a zero-based index into the paginated project list.
type Page int

// Next returns the following page. There is no upper bound: a page past the
// end simply lists no projects.
func (p Page) Next() Page {
	return p + 1
}

// Prev returns the preceding page, never going below the first one.
func (p Page) Prev() Page {
	if p <= 0 {
		return 0
	}
	return p - 1
}
