package prompt

import (
	"errors"
	"fmt"
	"strings"

	"webprompt_server/internal/types"
)

// ErrUnsupportedModel is returned when the requested model has no entry in
// the style table. The binding layer already restricts llm to the supported
// set, so this only fires if the table and the binding tag drift apart.
var ErrUnsupportedModel = errors.New("unsupported model")

// Composer renders prompt documents from validated requests. It only reads
// the static style table; Compose has no side effects, so any number of
// calls may run concurrently without coordination.
type Composer struct {
	styles map[string]ModelStyle
}

// NewComposer returns a Composer backed by the built-in style table.
func NewComposer() *Composer {
	return &Composer{styles: modelStyles}
}

// bodyTemplate is the fixed shape of the generated instruction document.
// Placeholders are filled in Compose, in section order.
const bodyTemplate = `[SYSTEM]
%s
Additional notes: %s

[OBJECTIVE]
Design and describe a complete website for "%s".

[CONTEXT]
Target audience: %s
Brand colors/theme: %s
Constraints: %s
Preferred stack:
%s

[WEBSITE TYPE]
%s

[FEATURES]
%s

[PAGES]
%s

[SEO]
Primary keywords:
%s

[DELIVERABLES]
Produce the following, optimizing for the selected model:
%s

[STYLE GUIDE]
- Voice and tone: %s
- Accessibility: WCAG 2.2 AA; include landmarks, color contrast and keyboard navigation.
- Performance: lazy-load media, compress assets, minimal JavaScript where possible.

[OUTPUT]
Preferred output format: %s
Provide sections with clear headings. Include copy examples, component names and acceptance criteria for each page. Where relevant, include Tailwind utility examples.`

// Compose resolves the model style and renders the full prompt text for req.
// The request is assumed to have passed binding validation and ApplyDefaults;
// Compose itself is a pure function of the request and the style table, and
// returns byte-identical output for identical input.
func (c *Composer) Compose(req types.PromptRequest) (types.PromptResponse, error) {
	style, ok := c.styles[req.LLM]
	if !ok {
		return types.PromptResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedModel, req.LLM)
	}

	header := fmt.Sprintf("Model: %s\nProject: %s\nType: %s\nTone: %s",
		req.LLM, req.ProjectName, req.SiteType, req.Tone)

	body := fmt.Sprintf(bodyTemplate,
		style.SystemDirective,
		style.Notes,
		req.ProjectName,
		orDefault(req.TargetAudience, "General web audience"),
		orDefault(req.BrandColors, "To be defined"),
		orDefault(req.Constraints, "None specified"),
		bulletList(req.PreferredStack),
		req.SiteType,
		bulletList(req.Features),
		bulletList(req.Pages),
		bulletList(req.SEOKeywords),
		bulletList(req.Deliverables),
		req.Tone,
		req.OutputFormat,
	)

	return types.PromptResponse{
		Prompt: strings.TrimSpace(header + "\n\n" + body),
		LLM:    req.LLM,
	}, nil
}

// bulletList renders one "- item" line per element, preserving input order
// with no deduplication. An empty or nil list renders the placeholder line.
func bulletList(items []string) string {
	if len(items) == 0 {
		return "- (none)"
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

// orDefault substitutes fallback for the empty string. Whitespace-only
// values count as provided, matching how the optional context fields have
// always behaved.
func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
