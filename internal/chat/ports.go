package chat

import (
	"context"

	"github.com/Vovarama1992/qashqai-voice/internal/langid"
)

// Agent names recorded on pipeline steps.
const (
	AgentLanguageDetector = "language_detector"
	AgentCulturalGuardian = "cultural_guardian"
	AgentReasoner         = "reasoner"
)

// Message is one incoming user message. A nil Language asks the pipeline to
// detect it.
type Message struct {
	Language *langid.Language `json:"language,omitempty"`
	Text     string           `json:"text"`
}

// PipelineStep is the output of one stage, in execution order.
type PipelineStep struct {
	Agent string `json:"agent"`
	Text  string `json:"text"`
}

type ChatResult struct {
	DetectedLanguage langid.Language `json:"detected_language"`
	Steps            []PipelineStep  `json:"steps"`
	Final            PipelineStep    `json:"final"`
}

// Service — orchestration; neither operation can fail
type Service interface {
	Detect(text string) langid.Result
	Run(ctx context.Context, msg Message) ChatResult
}
