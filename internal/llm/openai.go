package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"textcheck/internal/review"
)

// OpenAIClient calls the OpenAI Chat Completions API with a strict
// JSON-schema response format.
type OpenAIClient struct {
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAIClient builds a client with defaults against api.openai.com.
func NewOpenAIClient(apiKey string, model openai.ChatModel) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	cli := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		model:  model,
		client: &cli,
	}, nil
}

func (c *OpenAIClient) Classify(ctx context.Context, req review.Request) (review.Classification, error) {
	if c == nil || c.client == nil {
		return review.Classification{}, fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(review.SystemPrompt(req.Language), review.UserPrompt(req)),
		Temperature: openai.Float(chatTemperature),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        review.SchemaName,
					Description: openai.String("Grammar, sentiment and aggressiveness verdict for a short text."),
					Schema:      openaiSchema(),
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return review.Classification{}, wrapOpenAIError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return review.Classification{}, &ValidationError{
			Provider: ProviderOpenAI,
			Err:      errors.New("no choices returned"),
		}
	}
	return decodeClassification(ProviderOpenAI, []byte(resp.Choices[0].Message.Content))
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}

// openaiSchema renders the field table as a JSON schema object. Strict
// structured outputs reject numeric bound keywords, so integer ranges
// ride in the description and are enforced again by Validate.
func openaiSchema() map[string]any {
	properties := map[string]any{}
	for _, f := range review.Fields() {
		prop := map[string]any{
			"description": f.Guidance,
		}
		switch f.Type {
		case "array":
			prop["type"] = "array"
			prop["items"] = map[string]any{"type": "string"}
		default:
			prop["type"] = f.Type
		}
		if len(f.Enum) > 0 {
			prop["enum"] = f.Enum
		}
		properties[f.Name] = prop
	}
	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             review.FieldNames(),
		"additionalProperties": false,
	}
}

func wrapOpenAIError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return statusError(ProviderOpenAI, apierr.StatusCode, err)
	}
	// No HTTP status at all: DNS, TLS or timeout failures.
	return &TransportError{Provider: ProviderOpenAI, Err: err}
}
