package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"webprompt_server/internal/db"
	"webprompt_server/internal/logger"
	"webprompt_server/internal/prompt"
	"webprompt_server/internal/types"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	composer *prompt.Composer
	dbSvc    *db.PostgresService
	log      *logger.Logger
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(composer *prompt.Composer, dbSvc *db.PostgresService, log *logger.Logger) *APIHandler {
	return &APIHandler{
		composer: composer,
		dbSvc:    dbSvc,
		log:      log.With("component", "api"),
	}
}

// --- Structs for API Responses ---

// ModelInfo pairs a model identifier with its prompting style.
type ModelInfo struct {
	ID    string            `json:"id"`
	Style prompt.ModelStyle `json:"style"`
}

// ModelsResponse mirrors the closed sets the request schema validates against,
// so a frontend can build all of its selects from one call.
type ModelsResponse struct {
	Models              []ModelInfo `json:"models"`
	SiteTypes           []string    `json:"site_types"`
	Tones               []string    `json:"tones"`
	OutputFormats       []string    `json:"output_formats"`
	DefaultDeliverables []string    `json:"default_deliverables"`
}

// --- API Handlers ---

// GET /
func (h *APIHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "AI Prompt Assistant backend"})
}

// GET /api/hello
func (h *APIHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// GET /health
func (h *APIHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// POST /api/generate-prompt
func (h *APIHandler) GeneratePrompt(c *gin.Context) {
	var req types.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	req.ApplyDefaults()

	h.log.Info("Received prompt generation request",
		"llm", req.LLM, "project", req.ProjectName, "site_type", req.SiteType)

	resp, err := h.composer.Compose(req)
	if err != nil {
		if errors.Is(err, prompt.ErrUnsupportedModel) {
			h.log.Warn("Rejected unsupported model", "llm", req.LLM)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported model"})
			return
		}
		h.log.Error("Prompt composition failed", "llm", req.LLM, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose prompt"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/models
func (h *APIHandler) ListModels(c *gin.Context) {
	ids := prompt.SupportedModels()
	models := make([]ModelInfo, 0, len(ids))
	for _, id := range ids {
		style, ok := prompt.StyleFor(id)
		if !ok {
			continue
		}
		models = append(models, ModelInfo{ID: id, Style: style})
	}

	c.JSON(http.StatusOK, ModelsResponse{
		Models:              models,
		SiteTypes:           types.SiteTypes(),
		Tones:               types.Tones(),
		OutputFormats:       types.OutputFormats(),
		DefaultDeliverables: types.DefaultDeliverables(),
	})
}
