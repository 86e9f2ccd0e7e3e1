package generator

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiClient wraps one genai client shared by all Gemini models in the
// priority list.
type GeminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize genai client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// Model returns a priority-list entry for a named Gemini model.
func (c *GeminiClient) Model(name string) Model {
	return &geminiModel{client: c.client, name: name}
}

type geminiModel struct {
	client *genai.Client
	name   string
}

func (m *geminiModel) Name() string { return m.name }

func (m *geminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	resp, err := m.client.Models.GenerateContent(ctx, m.name, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	var text strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				break
			}
		}
	}

	if text.Len() == 0 {
		return "", fmt.Errorf("no response generated by %s", m.name)
	}

	return text.String(), nil
}
