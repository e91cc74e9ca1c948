package review

import (
	"github.com/go-playground/validator/v10"
)

// Sentiment values the model is allowed to return.
const (
	SentimentHappy      = "happy"
	SentimentNeutral    = "neutral"
	SentimentSad        = "sad"
	SentimentAngry      = "angry"
	SentimentFrustrated = "frustrated"
)

// Request is one text to review in a given language.
type Request struct {
	Language string `json:"language" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

// Classification is the structured verdict produced per invocation.
// Field constraints mirror the schema sent to the provider; a response
// that violates them is rejected at the boundary, never emitted.
type Classification struct {
	Sentiment      string   `json:"sentiment" validate:"required,oneof=happy neutral sad angry frustrated"`
	Aggressiveness int      `json:"aggressiveness" validate:"min=1,max=10"`
	Correctness    int      `json:"correctness" validate:"min=1,max=10"`
	Errors         []string `json:"errors"`
	Solution       string   `json:"solution" validate:"required"`
	Language       string   `json:"language" validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the classification against its declared constraints.
func (c Classification) Validate() error {
	return validate.Struct(c)
}

// Validate checks that a request carries both language and text.
func (r Request) Validate() error {
	return validate.Struct(r)
}
