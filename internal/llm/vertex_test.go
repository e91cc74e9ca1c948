package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestVertexSchema(t *testing.T) {
	schema := vertexSchema()

	assert.Equal(t, genai.TypeObject, schema.Type)
	assert.ElementsMatch(t,
		[]string{"sentiment", "aggressiveness", "correctness", "errors", "solution", "language"},
		schema.Required)

	sentiment := schema.Properties["sentiment"]
	require.NotNil(t, sentiment)
	assert.Equal(t, genai.TypeString, sentiment.Type)
	assert.ElementsMatch(t,
		[]string{"happy", "neutral", "sad", "angry", "frustrated"},
		sentiment.Enum)

	aggressiveness := schema.Properties["aggressiveness"]
	require.NotNil(t, aggressiveness)
	assert.Equal(t, genai.TypeInteger, aggressiveness.Type)
	require.NotNil(t, aggressiveness.Minimum)
	require.NotNil(t, aggressiveness.Maximum)
	assert.Equal(t, float64(1), *aggressiveness.Minimum)
	assert.Equal(t, float64(10), *aggressiveness.Maximum)

	errsField := schema.Properties["errors"]
	require.NotNil(t, errsField)
	assert.Equal(t, genai.TypeArray, errsField.Type)
	require.NotNil(t, errsField.Items)
	assert.Equal(t, genai.TypeString, errsField.Items.Type)
}

func TestWrapVertexError(t *testing.T) {
	var ae *AuthError
	assert.ErrorAs(t, wrapVertexError(genai.APIError{Code: 401, Message: "bad credential"}), &ae)

	var te *TransportError
	assert.ErrorAs(t, wrapVertexError(genai.APIError{Code: 503, Message: "unavailable"}), &te)
	assert.ErrorAs(t, wrapVertexError(errors.New("context deadline exceeded")), &te)
}
