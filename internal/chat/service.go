package chat

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Vovarama1992/qashqai-voice/internal/agents"
	"github.com/Vovarama1992/qashqai-voice/internal/langid"
)

type service struct {
	guardian agents.Guardian
	reasoner agents.Reasoner
	log      logrus.FieldLogger
}

// NewService wires the pipeline. Nil agents default to CulturalGuardian and
// TemplateReasoner. The returned value holds no per-request state.
func NewService(guardian agents.Guardian, reasoner agents.Reasoner, log logrus.FieldLogger) Service {
	if guardian == nil {
		guardian = agents.CulturalGuardian{}
	}
	if reasoner == nil {
		reasoner = agents.TemplateReasoner{}
	}
	return &service{
		guardian: guardian,
		reasoner: reasoner,
		log:      log.WithField("component", "orchestrator"),
	}
}

func (s *service) Detect(text string) langid.Result {
	return langid.Detect(text)
}

func (s *service) Run(ctx context.Context, msg Message) ChatResult {
	steps := make([]PipelineStep, 0, 3)

	// --------------------------------------------------
	// STEP 1 — LANGUAGE DETECTOR (only when not supplied)
	// --------------------------------------------------

	var lang langid.Language
	if msg.Language != nil {
		lang = *msg.Language
	} else {
		det := langid.Detect(msg.Text)
		lang = det.Language
		steps = append(steps, PipelineStep{
			Agent: AgentLanguageDetector,
			Text:  fmt.Sprintf("Detected language='%s' (confidence: %s).", det.Language, det.Confidence),
		})
		s.log.WithFields(logrus.Fields{
			"language":   det.Language,
			"confidence": det.Confidence,
		}).Debug("language detected")
	}

	// --------------------------------------------------
	// STEP 2 — CULTURAL GUARDIAN (advisory, never halts)
	// --------------------------------------------------

	verdict := s.guardian.Check(msg.Text, lang)
	steps = append(steps, PipelineStep{Agent: AgentCulturalGuardian, Text: verdict})
	s.log.WithFields(logrus.Fields{
		"agent":    AgentCulturalGuardian,
		"language": lang,
	}).Debug(verdict)

	// --------------------------------------------------
	// STEP 3 — REASONER
	// --------------------------------------------------

	final := PipelineStep{Agent: AgentReasoner, Text: s.reasoner.Reason(ctx, msg.Text, lang)}
	steps = append(steps, final)

	return ChatResult{
		DetectedLanguage: lang,
		Steps:            steps,
		Final:            final,
	}
}
