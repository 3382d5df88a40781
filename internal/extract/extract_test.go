package extract

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asJSON(t *testing.T, items []json.RawMessage) string {
	t.Helper()
	b, err := json.Marshal(items)
	require.NoError(t, err)
	return string(b)
}

func TestTournaments_TaggedFence(t *testing.T) {
	items, err := Tournaments("```json\n[{\"a\":1}]\n```")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"a":1}]`, asJSON(t, items))
}

func TestTournaments_BareArray(t *testing.T) {
	items, err := Tournaments(`[{"x":true}]`)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"x":true}]`, asJSON(t, items))
}

func TestExtract_StrategyPriority(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		want     string
		strategy string
	}{
		{
			name:     "tagged fence beats untagged fence",
			text:     "```\n[{\"from\":\"plain\"}]\n```\n```json\n[{\"from\":\"tagged\"}]\n```",
			want:     `[{"from":"tagged"}]`,
			strategy: "fenced_json",
		},
		{
			name:     "untagged fence",
			text:     "Here you go:\n```\n[{\"n\":2}]\n```\nEnjoy!",
			want:     `[{"n":2}]`,
			strategy: "fenced",
		},
		{
			name:     "uppercase tag",
			text:     "```JSON\n[{\"n\":3}]\n```",
			want:     `[{"n":3}]`,
			strategy: "fenced_json",
		},
		{
			name:     "bare array inside prose",
			text:     "Sure! [{\"name\":\"Open\",\"streaming_partners\":[\"A\",\"B\"]}] Hope that helps.",
			want:     `[{"name":"Open","streaming_partners":["A","B"]}]`,
			strategy: "bare",
		},
		{
			name:     "nested arrays inside fence",
			text:     "```json\n[{\"p\":[\"x\",\"y\"]},{\"p\":[]}]\n```",
			want:     `[{"p":["x","y"]},{"p":[]}]`,
			strategy: "fenced_json",
		},
		{
			name:     "invalid tagged fence falls through to next candidate",
			text:     "```json\n[{broken}]\n```\n```json\n[{\"good\":true}]\n```",
			want:     `[{"good":true}]`,
			strategy: "fenced_json",
		},
		{
			name:     "empty array",
			text:     "```json\n[]\n```",
			want:     `[]`,
			strategy: "fenced_json",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Extract(tc.text)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, asJSON(t, m.Items))
			assert.Equal(t, tc.strategy, m.Strategy)
		})
	}
}

func TestExtract_TrimsWhitespace(t *testing.T) {
	m, err := Extract("\n\n   [{\"a\":1}]   \n\t")
	require.NoError(t, err)
	assert.Len(t, m.Items, 1)
}

func TestExtract_NoJSONFound(t *testing.T) {
	text := strings.Repeat("no arrays here, just prose. ", 60)

	_, err := Tournaments(text)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoJSONFound))

	var nf *NoJSONFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, SnippetLimit, utf8.RuneCountInString(nf.Snippet))
	assert.True(t, strings.HasPrefix(text, nf.Snippet))
}

func TestExtract_NoJSONFound_ShortTextKeptWhole(t *testing.T) {
	_, err := Tournaments("I could not find any tournaments.")

	var nf *NoJSONFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "I could not find any tournaments.", nf.Snippet)
}

func TestExtract_SnippetCountsCharactersNotBytes(t *testing.T) {
	text := strings.Repeat("टूर्नामेंट ", 100)

	_, err := Tournaments(text)
	var nf *NoJSONFoundError
	require.True(t, errors.As(err, &nf))
	assert.LessOrEqual(t, utf8.RuneCountInString(nf.Snippet), SnippetLimit)
	assert.True(t, utf8.ValidString(nf.Snippet))
}

func TestExtract_ObjectIsNotAList(t *testing.T) {
	_, err := Tournaments(`{"tournaments": "none"}`)
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtract_UndecodableBrackets(t *testing.T) {
	_, err := Tournaments("choose [a] or [b]")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtract_StrayBracketsBeforeArray(t *testing.T) {
	// The greedy bare match spans "[see below] ... [end]" and does not decode.
	_, err := Tournaments("Note [see below]: [{\"ok\":1}] and that is all [end]")
	assert.ErrorIs(t, err, ErrNoJSONFound)

	_, err = Tournaments("Note [see below]: [{\"ok\":1}]")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestExtract_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n[{\"a\":1}]\n```",
		"prose only",
		"x [1,2,3] y",
	}
	for _, in := range inputs {
		m1, err1 := Extract(in)
		m2, err2 := Extract(in)
		assert.Equal(t, m1, m2)
		assert.Equal(t, err1, err2)
	}
}
