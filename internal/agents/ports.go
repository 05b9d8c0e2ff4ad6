// Package agents holds the pipeline stages that run after language
// resolution. Every agent is stateless and safe for concurrent use.
package agents

import (
	"context"

	"github.com/Vovarama1992/qashqai-voice/internal/langid"
)

// Guardian screens a message and returns an advisory verdict. The verdict
// never stops the pipeline.
type Guardian interface {
	Check(text string, lang langid.Language) string
}

// Reasoner produces the final user-facing reply. It never fails.
// TemplateReasoner is deterministic and does no I/O; LLMReasoner calls a
// remote backend, so its replies can block and vary between calls.
type Reasoner interface {
	Reason(ctx context.Context, text string, lang langid.Language) string
}
