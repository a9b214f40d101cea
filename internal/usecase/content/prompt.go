package content

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the user-facing instruction sent to the generation API.
// Rendering is deterministic: the same input always produces the same prompt.
//
// The language directive here is repeated in the system instruction. The
// duplication is intentional: the model was observed to ignore the target
// language when it was stated only once.
func BuildPrompt(in GenerateInput) string {
	return fmt.Sprintf(
		"Generate a %s in a %s tone about %q using the keywords: %s. "+
			"Keep it SEO-friendly and under 500 words. "+
			"You MUST respond ONLY in %s language. This is very important.",
		in.ContentType, in.Tone, in.Topic,
		strings.Join(in.Keywords, ", "),
		in.Language,
	)
}

// BuildSystemInstruction renders the system-level message reinforcing the
// language directive.
func BuildSystemInstruction(language string) string {
	return fmt.Sprintf(
		"You are a content generation assistant that ONLY responds in %s language. "+
			"Never use English unless specifically requested.",
		language,
	)
}
