package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/qashqai-voice/internal/ai"
	"github.com/Vovarama1992/qashqai-voice/internal/langid"
)

// LLMReasoner asks an AI backend for the reply and falls back to the
// template reply when the backend fails or answers with nothing.
type LLMReasoner struct {
	ai  ai.AI
	log logrus.FieldLogger
}

func NewLLMReasoner(aiClient ai.AI, log logrus.FieldLogger) *LLMReasoner {
	return &LLMReasoner{
		ai:  aiClient,
		log: log.WithField("agent", "reasoner"),
	}
}

// Reason blocks on the backend and is not deterministic; only
// TemplateReasoner gives the same reply for the same input.
func (r *LLMReasoner) Reason(ctx context.Context, text string, lang langid.Language) string {
	input := strings.TrimSpace(text)
	if input == "" {
		return templateReply(input, lang)
	}

	prompt := fmt.Sprintf(ReasonerPrompt, languageName(lang))

	raw, err := r.ai.GetReply(ctx, prompt, input)
	if err != nil {
		r.log.WithError(err).WithField("language", lang).Warn("llm reply failed, using template")
		return templateReply(input, lang)
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		r.log.WithField("language", lang).Warn("llm reply empty, using template")
		return templateReply(input, lang)
	}

	return reply
}
