package ai

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// ErrEmptyReply is returned when the backend answers with no choices.
var ErrEmptyReply = errors.New("ai: empty reply")

type OpenAIClient struct {
	client *openai.Client
	model  string
	log    logrus.FieldLogger
}

// NewOpenAIClient builds a chat-completions client. An empty model selects
// gpt-4o-mini; a non-empty baseURL points the client at a compatible gateway.
func NewOpenAIClient(apiKey, model, baseURL string, log logrus.FieldLogger) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    log.WithField("component", "openai"),
	}
}

func (c *OpenAIClient) GetReply(
	ctx context.Context,
	systemPrompt string,
	input string,
) (string, error) {

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
	})
	if err != nil {
		c.log.WithError(err).Warn("chat completion failed")
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.log.Warn("empty choices")
		return "", ErrEmptyReply
	}

	raw := resp.Choices[0].Message.Content
	c.log.WithFields(logrus.Fields{
		"model": c.model,
		"reply": short(raw),
	}).Debug("chat completion")

	return raw, nil
}

func short(s string) string {
	r := []rune(s)
	if len(r) > 180 {
		return string(r[:180]) + "..."
	}
	return s
}
