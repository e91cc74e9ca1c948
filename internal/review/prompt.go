package review

import "strings"

// systemTemplate is the fixed system message. The only placeholder is
// {language}; the user message is always the literal input text.
const systemTemplate = "You are a {language} teacher. Evaluate the student's text: " +
	"judge its grammatical correctness, its sentiment and how aggressive it is, " +
	"list every mistake you find, and propose a corrected version written in {language}."

// SystemPrompt renders the system message for the given language.
func SystemPrompt(language string) string {
	return strings.ReplaceAll(systemTemplate, "{language}", language)
}

// UserPrompt returns the user message for a request. It is the input
// text verbatim, with no decoration.
func UserPrompt(req Request) string {
	return req.Text
}
