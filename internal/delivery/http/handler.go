package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shoplens/backend/internal/domain"
)

// AnalysisUsecase runs a single product analysis
type AnalysisUsecase interface {
	Analyze(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error)
}

// PanelUsecase drives the per-session results panel
type PanelUsecase interface {
	Snapshot(ctx context.Context, sessionID string) domain.PanelSnapshot
	Start(ctx context.Context, sessionID, productName string, language domain.Language) (domain.PanelSnapshot, error)
	Reset(ctx context.Context, sessionID string) error
}

// HandlerOptions tunes response details
type HandlerOptions struct {
	// ExposeErrorDetail adds the underlying error to failed API responses
	ExposeErrorDetail bool
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analysis AnalysisUsecase
	panels   PanelUsecase
	options  HandlerOptions
}

// NewHandler creates a new HTTP handler
func NewHandler(analysis AnalysisUsecase, panels PanelUsecase, options HandlerOptions) *Handler {
	return &Handler{
		analysis: analysis,
		panels:   panels,
		options:  options,
	}
}

// analysisRequest is the JSON body of POST /api/v1/analysis
type analysisRequest struct {
	ProductName string `json:"productName"`
	Language    string `json:"language"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shoplens-backend",
		"version": "1.0.0",
	})
}

// Index renders the form and the results panel of the caller's session
func (h *Handler) Index(c *gin.Context) {
	snap := domain.NewPanel().Snapshot()
	if h.panels != nil {
		snap = h.panels.Snapshot(c.Request.Context(), sessionID(c))
	}

	c.HTML(http.StatusOK, "index.tmpl", newPageView(snap))
}

// SubmitForm starts an analysis from the HTML form and redirects back to the
// panel, which shows the loading state until the analysis settles
func (h *Handler) SubmitForm(c *gin.Context) {
	if h.panels == nil {
		c.String(http.StatusServiceUnavailable, "Analysis service not configured")
		return
	}

	productName := c.PostForm("productName")
	language := domain.ParseLanguage(c.PostForm("language"))

	_, err := h.panels.Start(c.Request.Context(), sessionID(c), productName, language)
	switch {
	case err == nil, errors.Is(err, domain.ErrEmptyProductName):
		// The panel carries the outcome
	case errors.Is(err, domain.ErrAnalysisInProgress):
		log.Debug().Str("session", sessionID(c)).Msg("submit ignored while loading")
	default:
		log.Warn().Err(err).Msg("form submit failed")
	}

	c.Redirect(http.StatusSeeOther, "/")
}

// Analyze handles JSON analysis requests
func (h *Handler) Analyze(c *gin.Context) {
	if h.analysis == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Analysis service not configured",
		})
		return
	}

	var req analysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	result, err := h.analysis.Analyze(c.Request.Context(), &domain.AnalysisRequest{
		ProductName: req.ProductName,
		Language:    domain.ParseLanguage(req.Language),
	})
	if err != nil {
		h.writeAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) writeAnalysisError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrEmptyProductName) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.EmptyProductNameMessage,
		})
		return
	}

	var analysisErr *domain.AnalysisError
	if !errors.As(err, &analysisErr) {
		analysisErr = &domain.AnalysisError{Cause: err}
	}

	body := gin.H{"error": analysisErr.UserMessage()}
	if h.options.ExposeErrorDetail {
		body["detail"] = analysisErr.Detail()
	}
	c.JSON(http.StatusBadGateway, body)
}

// Languages returns the supported output languages in display order
func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, domain.SupportedLanguages())
}

// Panel returns the panel snapshot of the caller's session
func (h *Handler) Panel(c *gin.Context) {
	if h.panels == nil {
		c.JSON(http.StatusOK, domain.NewPanel().Snapshot())
		return
	}
	c.JSON(http.StatusOK, h.panels.Snapshot(c.Request.Context(), sessionID(c)))
}

// ResetPanel discards the caller's panel
func (h *Handler) ResetPanel(c *gin.Context) {
	if h.panels != nil {
		if err := h.panels.Reset(c.Request.Context(), sessionID(c)); err != nil {
			log.Warn().Err(err).Msg("failed to reset panel")
		}
	}
	c.Status(http.StatusNoContent)
}
