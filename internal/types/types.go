package types

// PromptRequest is the structured description of the website the user wants a
// prompt for. Field constraints live in the binding tags so Gin rejects bad
// input before any business logic runs; the closed sets in the tags must stay
// in sync with the accessor functions at the bottom of this file.
type PromptRequest struct {
	LLM            string   `json:"llm" binding:"required,oneof=gpt-4o gpt-4.1 claude-3.5 gemini-1.5 llama-3.1 mistral-large"`
	ProjectName    string   `json:"project_name" binding:"required"`
	SiteType       string   `json:"site_type" binding:"required,oneof=landing marketing portfolio blog docs saas ecommerce"`
	Tone           string   `json:"tone" binding:"omitempty,oneof=professional friendly playful minimal luxury technical"`
	TargetAudience string   `json:"target_audience"`
	BrandColors    string   `json:"brand_colors"`
	Features       []string `json:"features"`
	Pages          []string `json:"pages"`
	SEOKeywords    []string `json:"seo_keywords"`
	Constraints    string   `json:"constraints"`
	PreferredStack []string `json:"preferred_stack"` // e.g. ["React", "Tailwind", "Next.js"]
	Deliverables   []string `json:"deliverables"`
	OutputFormat   string   `json:"output_format" binding:"omitempty,oneof=markdown plain json"`
}

// PromptResponse carries the rendered prompt plus the model it targets.
type PromptResponse struct {
	Prompt string `json:"prompt"`
	LLM    string `json:"llm"`
}

const (
	DefaultTone         = "professional"
	DefaultOutputFormat = "markdown"
)

// ApplyDefaults fills in the optional fields the client left out. A
// deliverables list that was sent explicitly empty stays empty; only a
// missing field (nil slice) gets the standard seven items.
func (r *PromptRequest) ApplyDefaults() {
	if r.Tone == "" {
		r.Tone = DefaultTone
	}
	if r.OutputFormat == "" {
		r.OutputFormat = DefaultOutputFormat
	}
	if r.Deliverables == nil {
		r.Deliverables = DefaultDeliverables()
	}
}

// DefaultDeliverables returns the standard deliverable list used when the
// client does not ask for anything specific. Always a fresh copy so callers
// cannot mutate the defaults of later requests.
func DefaultDeliverables() []string {
	return []string{
		"site map",
		"content outline",
		"wireframe description",
		"component list",
		"responsive behavior",
		"SEO goals",
		"accessibility checklist",
	}
}

// SiteTypes lists the supported website categories, in the order the
// frontend should present them.
func SiteTypes() []string {
	return []string{"landing", "marketing", "portfolio", "blog", "docs", "saas", "ecommerce"}
}

// Tones lists the supported voice/tone categories.
func Tones() []string {
	return []string{"professional", "friendly", "playful", "minimal", "luxury", "technical"}
}

// OutputFormats lists the formats the generated prompt can ask the model for.
func OutputFormats() []string {
	return []string{"markdown", "plain", "json"}
}
