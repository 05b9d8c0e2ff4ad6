// Package langid guesses which of the supported languages a short message is
// written in.
//
// Detection is a deterministic script-and-lexeme heuristic: the share of
// Arabic-script runes picks the Arabic or Latin branch, Qashqai marker letters
// and closed-class function words separate Qashqai from Persian, and Turkish
// letters separate Turkish from English.
//
// All functions are safe for concurrent use by multiple goroutines.
package langid

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Language is a supported language tag.
type Language string

const (
	Qashqai Language = "qashqai"
	Persian Language = "fa"
	Turkish Language = "tr"
	English Language = "en"
)

// Languages lists every supported tag.
var Languages = []Language{Qashqai, Persian, Turkish, English}

// Valid reports whether l is one of the supported tags.
func (l Language) Valid() bool {
	switch l {
	case Qashqai, Persian, Turkish, English:
		return true
	}
	return false
}

func (l Language) String() string { return string(l) }

// ParseLanguage returns the Language for tag s.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", fmt.Errorf("langid: unsupported language %q", s)
	}
	return l, nil
}

// Confidence is a coarse ordinal certainty label. It is not a probability.
type Confidence int

const (
	Low Confidence = iota
	Medium
	High
)

var confidenceNames = [...]string{
	Low:    "low",
	Medium: "medium",
	High:   "high",
}

var confidenceFromName = map[string]Confidence{
	"low":    Low,
	"medium": Medium,
	"high":   High,
}

func (c Confidence) String() string {
	if int(c) >= 0 && int(c) < len(confidenceNames) {
		return confidenceNames[c]
	}
	return fmt.Sprintf("Confidence(%d)", int(c))
}

// MarshalJSON encodes the confidence as its name (e.g. "medium").
func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a confidence name.
func (c *Confidence) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := confidenceFromName[s]
	if !ok {
		return fmt.Errorf("langid: unknown confidence: %q", s)
	}
	*c = v
	return nil
}

// Result is the outcome of a single detection.
type Result struct {
	Language   Language   `json:"language"`
	Confidence Confidence `json:"confidence"`
}

// Branch thresholds on the share of script runes among counted runes.
const (
	arabicBranchRatio = 0.4
	dominantRatio     = 0.6
)

// Detect identifies the most likely language of text. It never fails: empty
// or whitespace-only input yields (en, low).
func Detect(text string) Result {
	s := strings.TrimSpace(text)
	if s == "" {
		return Result{Language: English, Confidence: Low}
	}

	var arabicCount, latinCount int
	for _, r := range s {
		switch {
		case isArabicScript(r):
			arabicCount++
		case isASCIILetter(r):
			latinCount++
		}
	}
	total := max(arabicCount+latinCount, 1)
	arabicRatio := float64(arabicCount) / float64(total)

	if arabicRatio >= arabicBranchRatio {
		if strings.ContainsAny(s, qashqaiMarkers) {
			return Result{Language: Qashqai, Confidence: High}
		}
		switch hits := functionWordHits(s); {
		case hits >= 2:
			return Result{Language: Qashqai, Confidence: Medium}
		case hits == 1:
			return Result{Language: Qashqai, Confidence: Low}
		}
		if arabicRatio >= dominantRatio {
			return Result{Language: Persian, Confidence: Medium}
		}
		return Result{Language: Persian, Confidence: Low}
	}

	if strings.ContainsAny(s, turkishLetters) {
		return Result{Language: Turkish, Confidence: High}
	}
	if float64(latinCount)/float64(total) >= dominantRatio {
		return Result{Language: English, Confidence: Medium}
	}
	return Result{Language: English, Confidence: Low}
}

// functionWordHits counts the distinct whitespace-delimited tokens of s that
// are Qashqai function words.
func functionWordHits(s string) int {
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		if _, ok := qashqaiFunctionWords[tok]; ok {
			seen[tok] = struct{}{}
		}
	}
	return len(seen)
}
