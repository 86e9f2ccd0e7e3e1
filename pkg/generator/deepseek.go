package generator

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/deepseek"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const deepSeekModelName = "deepseek-chat"

// DeepSeekModel is the optional last entry of the priority list, used when a
// DeepSeek key is configured and every Gemini model has failed.
type DeepSeekModel struct {
	chat einomodel.BaseChatModel
}

func NewDeepSeekModel(ctx context.Context, apiKey string) (*DeepSeekModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("deepseek API key is empty")
	}

	chatModel, err := deepseek.NewChatModel(ctx, &deepseek.ChatModelConfig{
		APIKey:    apiKey,
		Model:     deepSeekModelName,
		MaxTokens: 4000,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create DeepSeek model: %w", err)
	}

	return &DeepSeekModel{chat: chatModel}, nil
}

func (m *DeepSeekModel) Name() string { return deepSeekModelName }

func (m *DeepSeekModel) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := m.chat.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return "", fmt.Errorf("deepseek generation failed: %w", err)
	}
	if msg == nil || msg.Content == "" {
		return "", fmt.Errorf("no response generated by %s", deepSeekModelName)
	}
	return msg.Content, nil
}
