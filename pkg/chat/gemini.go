package chat

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Gemini is the Backend implementation over the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGeminiClient builds a Gemini API client configured with the credential.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return client, nil
}

// NewGemini wraps a client as a Backend for the given model.
func NewGemini(client *genai.Client, model string) *Gemini {
	return &Gemini{client: client, model: model}
}

// Generate sends the full history and sampling parameters and returns the
// model's reply text.
func (g *Gemini) Generate(ctx context.Context, history []Turn, params GenParams) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(params.Temperature)),
		TopK:        genai.Ptr(float32(params.TopK)),
		TopP:        genai.Ptr(float32(params.TopP)),
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}
