package ai

import "context"

// AI — external reasoning backend; knows nothing about the pipeline or languages
type AI interface {
	GetReply(
		ctx context.Context,
		systemPrompt string,
		input string,
	) (string, error)
}
