package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/qashqai-voice/internal/langid"
)

var replyTemplates = map[langid.Language]string{
	langid.Qashqai: "Qashqai reasoning: «%s».",
	langid.Persian: "استدلال قشقایی: «%s».",
	langid.Turkish: "Türkçe akıl yürütme: «%s».",
	langid.English: `English reasoning: "%s".`,
}

// TemplateReasoner wraps the trimmed input in a fixed per-language phrase.
// Unknown tags get the English phrase.
type TemplateReasoner struct{}

func (TemplateReasoner) Reason(_ context.Context, text string, lang langid.Language) string {
	return templateReply(text, lang)
}

func templateReply(text string, lang langid.Language) string {
	tmpl, ok := replyTemplates[lang]
	if !ok {
		tmpl = replyTemplates[langid.English]
	}
	return fmt.Sprintf(tmpl, strings.TrimSpace(text))
}
