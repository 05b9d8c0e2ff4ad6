package agents

import (
	"fmt"
	"strings"

	"github.com/Vovarama1992/qashqai-voice/internal/langid"
)

// EmptyMessageVerdict is returned for empty or whitespace-only text.
const EmptyMessageVerdict = "Message is empty; please write something."

// CulturalGuardian only rejects empty input; taboo rules can be added later.
type CulturalGuardian struct{}

func (CulturalGuardian) Check(text string, lang langid.Language) string {
	if strings.TrimSpace(text) == "" {
		return EmptyMessageVerdict
	}
	return fmt.Sprintf("Cultural check passed for language='%s'. Content looks respectful.", lang)
}
