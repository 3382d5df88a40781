// Package extract locates a JSON array inside free-form model output.
//
// Model answers are not guaranteed to be bare JSON: they may wrap the array in
// a fenced code block or surround it with prose. Extraction runs an ordered
// list of strategies; each yields candidate substrings in order of
// appearance and the first candidate that decodes as a JSON list wins.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// SnippetLimit bounds the diagnostic text carried by NoJSONFoundError.
const SnippetLimit = 500

// ErrNoJSONFound is matched by errors.Is for every NoJSONFoundError.
var ErrNoJSONFound = errors.New("no valid JSON found in response")

// NoJSONFoundError reports that no strategy produced a decodable list.
type NoJSONFoundError struct {
	Snippet string // first SnippetLimit characters of the input
}

func (e *NoJSONFoundError) Error() string {
	return ErrNoJSONFound.Error()
}

func (e *NoJSONFoundError) Is(target error) bool { return target == ErrNoJSONFound }

// Match is a successful extraction.
type Match struct {
	Items    []json.RawMessage
	Strategy string // name of the strategy that produced Items
}

type strategy struct {
	name string
	find func(text string) []string
}

var (
	taggedFence   = regexp.MustCompile("(?i)```json\\s*(\\[[\\s\\S]*?\\])\\s*```")
	untaggedFence = regexp.MustCompile("```\\s*(\\[[\\s\\S]*?\\])\\s*```")
	bareArray     = regexp.MustCompile(`\[[\s\S]*\]`)
)

// strategies run in priority order.
var strategies = []strategy{
	{name: "fenced_json", find: submatches(taggedFence)},
	{name: "fenced", find: submatches(untaggedFence)},
	{name: "bare", find: func(text string) []string { return bareArray.FindAllString(text, -1) }},
}

// Tournaments returns the items of the first JSON list found in raw.
func Tournaments(raw string) ([]json.RawMessage, error) {
	m, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	return m.Items, nil
}

// Extract runs every strategy against the trimmed text and returns the first
// candidate that decodes as a JSON list. Candidates that fail to decode are
// skipped.
func Extract(raw string) (Match, error) {
	text := strings.TrimSpace(raw)
	for _, s := range strategies {
		for _, candidate := range s.find(text) {
			if items, ok := decodeList(candidate); ok {
				return Match{Items: items, Strategy: s.name}, nil
			}
		}
	}
	return Match{}, &NoJSONFoundError{Snippet: truncateRunes(raw, SnippetLimit)}
}

func submatches(re *regexp.Regexp) func(string) []string {
	return func(text string) []string {
		all := re.FindAllStringSubmatch(text, -1)
		out := make([]string, 0, len(all))
		for _, m := range all {
			out = append(out, m[1])
		}
		return out
	}
}

func decodeList(candidate string) ([]json.RawMessage, bool) {
	b := bytes.TrimSpace([]byte(candidate))
	if len(b) == 0 || b[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, false
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, true
}

func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

// String renders the match for logs.
func (m Match) String() string {
	return fmt.Sprintf("%d items via %s", len(m.Items), m.Strategy)
}
