// Package tournament defines the tournament record served by the API and the
// shape-level decoding of model output into records.
package tournament

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// Level is the competitive tier a tournament belongs to.
type Level string

const (
	LevelCorporate     Level = "Corporate"
	LevelSchool        Level = "School"
	LevelCollege       Level = "College/University"
	LevelClub          Level = "Club/Academy"
	LevelDistrict      Level = "District"
	LevelState         Level = "State"
	LevelZonal         Level = "Zonal/Regional"
	LevelNational      Level = "National"
	LevelInternational Level = "International"
)

// Levels lists every level in ascending order of scope.
var Levels = []Level{
	LevelCorporate, LevelSchool, LevelCollege, LevelClub, LevelDistrict,
	LevelState, LevelZonal, LevelNational, LevelInternational,
}

// Tournament is a single upcoming tournament. Nullable fields are pointers so
// absent values serialize as null instead of being omitted.
type Tournament struct {
	Name              string   `json:"tournament_name"`
	Level             Level    `json:"level"`
	StartDate         *string  `json:"start_date"`
	EndDate           *string  `json:"end_date"`
	OfficialURL       *string  `json:"official_url"`
	StreamingPartners []string `json:"streaming_partners"`
	Image             *string  `json:"tournament_image"`
	Summary           string   `json:"summary"`

	// verbatim holds an extracted item that is not a JSON object. It is
	// served unchanged.
	verbatim json.RawMessage
}

type record Tournament

// MarshalJSON writes the record, or the original item for non-objects.
func (t Tournament) MarshalJSON() ([]byte, error) {
	if t.verbatim != nil {
		return t.verbatim, nil
	}
	if t.StreamingPartners == nil {
		t.StreamingPartners = []string{}
	}
	return json.Marshal(record(t))
}

// UnmarshalJSON decodes an object field by field. A field holding the wrong
// JSON type becomes null (or empty) without affecting the others.
func (t *Tournament) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	*t = Tournament{
		Name:              text(fields["tournament_name"]),
		Level:             Level(text(fields["level"])),
		StartDate:         optional(fields["start_date"]),
		EndDate:           optional(fields["end_date"]),
		OfficialURL:       optional(fields["official_url"]),
		StreamingPartners: list(fields["streaming_partners"]),
		Image:             optional(fields["tournament_image"]),
		Summary:           text(fields["summary"]),
	}
	return nil
}

// Verbatim returns the original item when it was not a JSON object.
func (t Tournament) Verbatim() json.RawMessage { return t.verbatim }

// scalar reads a JSON string or number as text.
func scalar(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch c := raw[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case c == '-' || (c >= '0' && c <= '9'):
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return "", false
		}
		return n.String(), true
	}
	return "", false
}

func text(raw json.RawMessage) string {
	s, _ := scalar(raw)
	return s
}

func optional(raw json.RawMessage) *string {
	if s, ok := scalar(raw); ok {
		return &s
	}
	return nil
}

// list accepts an array of scalars or a single scalar.
func list(raw json.RawMessage) []string {
	out := []string{}
	if s, ok := scalar(raw); ok {
		return append(out, s)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		if s, ok := scalar(item); ok {
			out = append(out, s)
		}
	}
	return out
}

// Decode turns extracted JSON items into records, one per item. Objects are
// read field by field; unknown keys are ignored and missing or mistyped keys
// become null. Any other item is kept verbatim.
func Decode(items []json.RawMessage) []Tournament {
	out := make([]Tournament, 0, len(items))
	for _, raw := range items {
		trimmed := bytes.TrimSpace(raw)
		var t Tournament
		if len(trimmed) > 0 && trimmed[0] == '{' && json.Unmarshal(trimmed, &t) == nil {
			out = append(out, t)
			continue
		}
		if len(trimmed) == 0 {
			trimmed = []byte("null")
		}
		out = append(out, Tournament{verbatim: append(json.RawMessage(nil), trimmed...)})
	}
	return out
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// SportTitle upper-cases the first rune of sport and lower-cases the rest,
// matching how sport names appear in prompts and record titles.
func SportTitle(sport string) string {
	r := []rune(strings.ToLower(sport))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
