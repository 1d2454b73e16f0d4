package prompt

// ModelStyle describes how the generated prompt should address one of the
// supported models: the system directive it responds best to, plus short
// formatting notes appended to it.
type ModelStyle struct {
	SystemDirective string `json:"system_directive"`
	Notes           string `json:"notes"`
}

// modelOrder fixes the presentation order of the supported identifiers for
// listings; the style table itself is a map and has no order.
var modelOrder = []string{
	"gpt-4o",
	"gpt-4.1",
	"claude-3.5",
	"gemini-1.5",
	"llama-3.1",
	"mistral-large",
}

// modelStyles is the static style table. Initialized once here, read-only
// afterwards; nothing in the package mutates it. The keys must match the
// oneof set on types.PromptRequest.LLM; Compose still checks membership in
// case the two drift.
var modelStyles = map[string]ModelStyle{
	"gpt-4o": {
		SystemDirective: "You are a senior product, UX and frontend architect. Produce precise, concise, implementation-ready instructions.",
		Notes:           "Prefer objective lists and code-ready sections.",
	},
	"gpt-4.1": {
		SystemDirective: "You are a meticulous technical writer and UI engineer.",
		Notes:           "Prefer structured lists and explicit acceptance criteria.",
	},
	"claude-3.5": {
		SystemDirective: "You are reflective and deliberate. Explain trade-offs and propose alternatives.",
		Notes:           "Include checklists and reasoning sections.",
	},
	"gemini-1.5": {
		SystemDirective: "You are a multimodal product designer and engineer.",
		Notes:           "If images are involved, describe them. Keep steps explicit.",
	},
	"llama-3.1": {
		SystemDirective: "You are an open-source web architect. Be explicit and deterministic.",
		Notes:           "Avoid ambiguity; include a clear file and component breakdown.",
	},
	"mistral-large": {
		SystemDirective: "You are a pragmatic frontend tech lead.",
		Notes:           "Use concise instructions with numbered steps.",
	},
}

// SupportedModels returns the model identifiers the composer knows about, in
// presentation order. Fresh copy per call.
func SupportedModels() []string {
	return append([]string(nil), modelOrder...)
}

// StyleFor looks up the style entry for llm, reporting whether it exists.
func StyleFor(llm string) (ModelStyle, bool) {
	style, ok := modelStyles[llm]
	return style, ok
}
