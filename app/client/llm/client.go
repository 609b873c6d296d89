package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	_ "embed"

	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
	"github.com/sejalchopra/dental-ai-chatbot/app/config"
)

//go:embed system_prompt.txt
var systemPrompt string

//go:embed extract_prompt.txt
var extractPromptTemplate string

const (
	extractTemperature = 0.2
	maxExtractDuration = 30 * time.Second
)

type Client struct {
	client *openai.Client
	model  string
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	clientConfig := openai.DefaultConfig(cfg.OpenAI.Token)
	clientConfig.BaseURL = cfg.OpenAI.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: maxExtractDuration,
	}

	return &Client{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.OpenAI.Model,
	}, nil
}

// Extract asks the model for a short reply and an appointment candidate for
// the user's message. Output is forced to a JSON object; anything that does
// not unmarshal into the two expected keys is an error for the caller to
// swallow. A single attempt is made, no retries.
func (c *Client) Extract(ctx context.Context, userText string) (*Extraction, error) {
	prompt := strings.ReplaceAll(extractPromptTemplate, "{message}", userText)

	ctx, cancel := context.WithTimeout(ctx, maxExtractDuration)
	defer cancel()

	aiResponse, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: extractTemperature,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return nil, fmt.Errorf("no chat completion found")
	}

	return parseExtraction(aiResponse.Choices[0].Message.Content)
}

// Some models wrap their JSON in markdown fences even in JSON mode.
func parseExtraction(content string) (*Extraction, error) {
	content = strings.Trim(content, "`")
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "json")
	content = strings.TrimSpace(content)

	var result Extraction
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}
