package chat

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI is the Backend implementation over an OpenAI-compatible endpoint,
// selected with CHAT_BACKEND=openai. The top_k parameter has no wire
// equivalent and is ignored.
type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI builds an OpenAI-compatible Backend. An empty baseURL targets the
// default endpoint.
func NewOpenAI(apiKey, baseURL, model string) *OpenAI {
	opts := []option.RequestOption{}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &OpenAI{client: openai.NewClient(opts...), model: model}
}

// Generate sends the history as chat-completion messages and returns the
// assistant's reply text.
func (o *OpenAI) Generate(ctx context.Context, history []Turn, params GenParams) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history))
	for _, turn := range history {
		if turn.Role == RoleModel {
			messages = append(messages, openai.AssistantMessage(turn.Text))
			continue
		}
		messages = append(messages, openai.UserMessage(turn.Text))
	}

	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    messages,
		Temperature: openai.Float(params.Temperature),
		TopP:        openai.Float(params.TopP),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("empty completion choices")
	}
	return completion.Choices[0].Message.Content, nil
}
