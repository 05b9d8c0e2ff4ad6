package agents

import "github.com/Vovarama1992/qashqai-voice/internal/langid"

const ReasonerPrompt = `
You are the REASONER stage of a small multilingual assistant.

The user message below has already passed a cultural check.
Reply briefly and respectfully, in %s only.
Do not translate the message, do not explain what language it is in.
Plain text only, no markdown, no more than three sentences.
`

var languageNames = map[langid.Language]string{
	langid.Qashqai: "Qashqai Turkic written in Perso-Arabic script",
	langid.Persian: "Persian (Farsi)",
	langid.Turkish: "Turkish",
	langid.English: "English",
}

func languageName(lang langid.Language) string {
	if name, ok := languageNames[lang]; ok {
		return name
	}
	return languageNames[langid.English]
}
