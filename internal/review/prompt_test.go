package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPrompt(t *testing.T) {
	got := SystemPrompt("Spanish")
	assert.True(t, strings.HasPrefix(got, "You are a Spanish teacher."))
	assert.NotContains(t, got, "{language}", "all placeholders must be substituted")
	assert.Equal(t, 2, strings.Count(got, "Spanish"), "language appears in both placeholder positions")
}

func TestUserPromptIsLiteralText(t *testing.T) {
	req := Request{Language: "Spanish", Text: "Yo soy enfadado"}
	assert.Equal(t, "Yo soy enfadado", UserPrompt(req))
}
