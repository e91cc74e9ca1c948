package review

// Field describes one property of the Classification schema in a
// provider-agnostic form. Each provider translates this table into its
// own schema descriptor, so the declarative shape lives in one place.
type Field struct {
	Name     string
	Type     string // "string", "integer" or "array" of strings
	Guidance string // natural-language description sent to the model
	Enum     []string
	Min, Max int // inclusive bounds, integers only
}

// SchemaName identifies the structured response shape on the wire.
const SchemaName = "text_classification"

// Fields returns the Classification schema fields in declaration order.
// Every field is required.
func Fields() []Field {
	return []Field{
		{
			Name:     "sentiment",
			Type:     "string",
			Guidance: "The overall sentiment of the text.",
			Enum: []string{
				SentimentHappy,
				SentimentNeutral,
				SentimentSad,
				SentimentAngry,
				SentimentFrustrated,
			},
		},
		{
			Name:     "aggressiveness",
			Type:     "integer",
			Guidance: "How aggressive the text is, from 1 (not at all) to 10 (extremely).",
			Min:      1,
			Max:      10,
		},
		{
			Name:     "correctness",
			Type:     "integer",
			Guidance: "How grammatically correct the text is, from 1 (riddled with mistakes) to 10 (flawless).",
			Min:      1,
			Max:      10,
		},
		{
			Name:     "errors",
			Type:     "array",
			Guidance: "Every grammatical mistake found in the text, in order of appearance. Empty if there are none.",
		},
		{
			Name:     "solution",
			Type:     "string",
			Guidance: "The corrected text, written in the target language.",
		},
		{
			Name:     "language",
			Type:     "string",
			Guidance: "The language the text is written in.",
		},
	}
}

// FieldNames returns the names of all schema fields, in order.
func FieldNames() []string {
	fields := Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}
