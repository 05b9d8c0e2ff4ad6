package langid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want Result
	}{
		{"empty", "", Result{English, Low}},
		{"whitespace only", " \t\n  ", Result{English, Low}},
		{"qashqai marker letter", "بۆ کتاب منیمدیر", Result{Qashqai, High}},
		{"qashqai marker beats function words", "سن کیم ۋار", Result{Qashqai, High}},
		{"two function words", "سن هارا گدیرسن", Result{Qashqai, Medium}},
		{"repeated function word counts once", "سن سن سن", Result{Qashqai, Low}},
		{"one function word", "سلام، سن نئجه‌سین؟", Result{Qashqai, Low}},
		{"shared pronoun is not a hit", "من سن", Result{Qashqai, Low}},
		{"persian", "سلام من امروز به مدرسه رفتم", Result{Persian, Medium}},
		{"persian presentation forms", "ﺳﻼﻡ", Result{Persian, Medium}},
		{"mixed script leaning arabic", "hello سلام", Result{Persian, Low}},
		{"turkish", "Bugün çok güzel bir gün", Result{Turkish, High}},
		{"turkish dotted capital", "İstanbul", Result{Turkish, High}},
		{"english", "Hello world", Result{English, Medium}},
		{"ascii capital I counts as turkish", "I am here", Result{Turkish, High}},
		{"upper case turkish", "ISTANBUL", Result{Turkish, High}},
		{"english lower case", "hello there", Result{English, Medium}},
		{"mixed script leaning latin", "hello world سلا", Result{English, Medium}},
		{"digits only", "12345 !!", Result{English, Low}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Detect(tt.in))
		})
	}
}

func TestDetectIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{"", "من سن", "Bugün çok güzel bir gün", "Hello world", "سلام من امروز به مدرسه رفتم"}
	for _, in := range inputs {
		assert.Equal(t, Detect(in), Detect(in), "input %q", in)
	}
}

func TestDetectMarkersAlwaysHigh(t *testing.T) {
	t.Parallel()
	for _, m := range qashqaiMarkers {
		in := "کتاب " + string(m) + " مدرسه"
		got := Detect(in)
		assert.Equal(t, Qashqai, got.Language, "marker %q", m)
		assert.Equal(t, High, got.Confidence, "marker %q", m)
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()
	for _, l := range Languages {
		got, err := ParseLanguage(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseLanguage("de")
	assert.Error(t, err)
	_, err = ParseLanguage("")
	assert.Error(t, err)
}

func TestConfidenceOrdering(t *testing.T) {
	t.Parallel()
	assert.Less(t, Low, Medium)
	assert.Less(t, Medium, High)
	assert.Equal(t, "Confidence(7)", Confidence(7).String())
}

func TestResultJSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(Result{Language: Turkish, Confidence: High})
	require.NoError(t, err)
	assert.JSONEq(t, `{"language":"tr","confidence":"high"}`, string(b))

	var c Confidence
	require.NoError(t, json.Unmarshal([]byte(`"medium"`), &c))
	assert.Equal(t, Medium, c)
	assert.Error(t, json.Unmarshal([]byte(`"certain"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`2`), &c))
}
