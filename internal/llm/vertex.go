package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"textcheck/internal/review"
)

// VertexClient calls a Gemini model through the Vertex AI backend.
// Credentials are resolved by the SDK from GOOGLE_APPLICATION_CREDENTIALS.
type VertexClient struct {
	model  string
	client *genai.Client
}

// NewVertexClient builds a client against the given project and region.
func NewVertexClient(ctx context.Context, project, region, model string) (*VertexClient, error) {
	if project == "" {
		return nil, fmt.Errorf("project required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  project,
		Location: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex client: %w", err)
	}
	return &VertexClient{
		model:  model,
		client: cli,
	}, nil
}

func (c *VertexClient) Classify(ctx context.Context, req review.Request) (review.Classification, error) {
	if c == nil || c.client == nil {
		return review.Classification{}, fmt.Errorf("nil vertex client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(reqCtx, c.model,
		genai.Text(review.UserPrompt(req)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(review.SystemPrompt(req.Language), genai.RoleUser),
			Temperature:       genai.Ptr[float32](chatTemperature),
			ResponseMIMEType:  "application/json",
			ResponseSchema:    vertexSchema(),
		})
	if err != nil {
		return review.Classification{}, wrapVertexError(err)
	}
	text := resp.Text()
	if text == "" {
		return review.Classification{}, &ValidationError{
			Provider: ProviderVertex,
			Err:      errors.New("no candidates returned"),
		}
	}
	return decodeClassification(ProviderVertex, []byte(text))
}

// vertexSchema renders the field table as a genai schema descriptor.
func vertexSchema() *genai.Schema {
	properties := map[string]*genai.Schema{}
	for _, f := range review.Fields() {
		prop := &genai.Schema{Description: f.Guidance}
		switch f.Type {
		case "string":
			prop.Type = genai.TypeString
		case "integer":
			prop.Type = genai.TypeInteger
			prop.Minimum = genai.Ptr(float64(f.Min))
			prop.Maximum = genai.Ptr(float64(f.Max))
		case "array":
			prop.Type = genai.TypeArray
			prop.Items = &genai.Schema{Type: genai.TypeString}
		}
		if len(f.Enum) > 0 {
			prop.Enum = f.Enum
		}
		properties[f.Name] = prop
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   review.FieldNames(),
	}
}

func wrapVertexError(err error) error {
	var apierr genai.APIError
	if errors.As(err, &apierr) {
		return statusError(ProviderVertex, apierr.Code, err)
	}
	return &TransportError{Provider: ProviderVertex, Err: err}
}
